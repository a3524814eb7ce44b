package engine

import (
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/stageloop/engine/geom"
)

// windowEntry pairs a window with the synchronization state its thread
// shares with the driver. The driver appends events and bumps seq under
// mu; the window thread sleeps on cond until seq moves past seen.
type windowEntry struct {
	win   *Window
	title string
	rate  float64

	mu      sync.Mutex
	cond    *sync.Cond
	pending []Event

	// seq counts signals issued by the driver, seen counts signals the
	// window thread has consumed. The wait predicate seen == seq makes
	// spurious wakeups and signals sent before the wait harmless.
	seq  uint64
	seen uint64

	lastSignal time.Time
	complete   bool
}

// WindowScheduler runs one OS thread per window and relays driver
// signals and events to each. All methods are safe for concurrent use,
// though in practice only the driver goroutine calls them.
type WindowScheduler struct {
	log *zap.Logger

	mu      sync.Mutex
	entries []*windowEntry
}

// NewWindowScheduler returns an empty scheduler logging through log.
func NewWindowScheduler(log *zap.Logger) *WindowScheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &WindowScheduler{log: log}
}

// Len returns the number of windows whose threads have been spawned and
// not yet reaped.
func (s *WindowScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Spawn starts the window's frame loop on a dedicated OS thread. The
// window must not be stepped or routed by any other goroutine afterward.
func (s *WindowScheduler) Spawn(w *Window) {
	e := &windowEntry{
		win:   w,
		title: w.Title(),
		rate:  w.FrameRate(),
	}
	e.cond = sync.NewCond(&e.mu)
	s.mu.Lock()
	s.entries = append(s.entries, e)
	s.mu.Unlock()
	go e.run(s.log)
}

// Dispatch delivers one polled batch. Every live window receives the
// events addressed to it (target zero broadcasts); a window is then
// woken if it received events or its frame-rate gate has elapsed. A
// zero rate gates nothing: the window wakes on every dispatch.
func (s *WindowScheduler) Dispatch(now time.Time, batch []Event) {
	s.mu.Lock()
	entries := make([]*windowEntry, len(s.entries))
	copy(entries, s.entries)
	s.mu.Unlock()

	for _, e := range entries {
		e.mu.Lock()
		if e.complete {
			e.mu.Unlock()
			continue
		}
		delivered := false
		for _, ev := range batch {
			if t := ev.TargetWindow(); t == 0 || t == e.win.NativeID() {
				e.pending = append(e.pending, ev)
				delivered = true
			}
		}
		fire := delivered
		if e.rate <= 0 {
			fire = true
		} else if now.Sub(e.lastSignal) >= time.Duration(float64(time.Second)/e.rate) {
			fire = true
		}
		if fire {
			e.lastSignal = now
			e.seq++
			e.cond.Signal()
		}
		e.mu.Unlock()
	}
}

// Reap removes every window whose thread has finished and hands it to
// fn. fn runs outside the scheduler lock.
func (s *WindowScheduler) Reap(fn func(*Window)) {
	var done []*windowEntry
	s.mu.Lock()
	kept := s.entries[:0]
	for _, e := range s.entries {
		e.mu.Lock()
		finished := e.complete
		e.mu.Unlock()
		if finished {
			done = append(done, e)
		} else {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	s.mu.Unlock()

	for _, e := range done {
		if fn != nil {
			fn(e.win)
		}
	}
}

// run is the window's thread loop: claim the OS thread and rendering
// context, then render, step, and route until something signals Stop.
func (e *windowEntry) run(log *zap.Logger) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	defer func() {
		e.mu.Lock()
		e.complete = true
		e.mu.Unlock()
		log.Debug("window thread finished", zap.String("title", e.title))
	}()

	if err := e.win.bindContext(); err != nil {
		log.Error("bind rendering context",
			zap.String("title", e.title), zap.Error(err))
		return
	}
	log.Debug("window thread started",
		zap.String("title", e.title), zap.Float64("rate", e.rate))

loop:
	for {
		e.win.Render(nil, geom.Vec3{})
		if e.win.Update(0) == Stop {
			break
		}
		for _, ev := range e.waitEvents() {
			if e.win.Route(ev) == Stop {
				break loop
			}
		}
	}

	// GL teardown belongs to the thread holding the context; the driver
	// only destroys the native window after complete is observed.
	e.win.shutdownGraphics()
}

// waitEvents blocks until the driver signals, then drains and returns
// the pending events. The returned slice may be empty when the wakeup
// was purely frame-rate driven.
func (e *windowEntry) waitEvents() []Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	for e.seen == e.seq {
		e.cond.Wait()
	}
	e.seen = e.seq
	evs := e.pending
	e.pending = nil
	return evs
}
