package engine

import (
	"time"

	"go.uber.org/zap"
)

// Driver owns the platform event queue and the lifecycle of every
// window. One goroutine — usually the main one, locked to its OS
// thread — constructs a Driver, creates the initial windows, and calls
// Run, which polls the platform and feeds the window threads until the
// last one finishes.
type Driver struct {
	platform Platform
	log      *zap.Logger
	sched    *WindowScheduler
	root     *Container

	now          func() time.Time
	sleep        func(time.Duration)
	pollInterval time.Duration
}

// NewDriver builds a driver on the given platform.
func NewDriver(p Platform, opts ...DriverOption) *Driver {
	d := &Driver{
		platform:     p,
		log:          zap.NewNop(),
		now:          time.Now,
		sleep:        time.Sleep,
		pollInterval: time.Millisecond,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.sched = NewWindowScheduler(d.log)
	d.root = NewContainer(Handlers{})
	return d
}

// Root returns the container holding every live window, keyed by window
// title.
func (d *Driver) Root() *Container { return d.root }

// CreateWindow opens a window, registers it under its title, and starts
// its thread. Call from the driver goroutine only.
func (d *Driver) CreateWindow(cfg WindowConfig, h Handlers, opts ...WindowOption) (*Window, error) {
	w, err := NewWindow(d.platform, cfg, h, opts...)
	if err != nil {
		return nil, err
	}
	alias, err := d.root.Add(w, cfg.Title)
	if err != nil {
		w.Destroy()
		return nil, err
	}
	d.sched.Spawn(w)
	d.log.Info("window created",
		zap.String("alias", alias),
		zap.Uint32("window", uint32(w.NativeID())),
		zap.Float64("rate", cfg.FrameRate))
	return w, nil
}

// Run polls the platform queue and dispatches to the window threads
// until every window has finished. Windows that finish are destroyed
// and removed from the root container here, on the driver goroutine,
// after their thread has already stopped touching them.
//
// UserEvents carrying CodeCreateWindow are consumed: the driver opens
// the requested window instead of forwarding the event. A creation
// failure is logged and does not stop the loop.
func (d *Driver) Run() error {
	for d.sched.Len() > 0 {
		batch := d.platform.Poll()
		forward := batch[:0]
		for _, ev := range batch {
			if ue, ok := ev.(UserEvent); ok && ue.Code == CodeCreateWindow {
				d.createFromEvent(ue)
				continue
			}
			forward = append(forward, ev)
		}

		d.sched.Dispatch(d.now(), forward)

		d.sched.Reap(func(w *Window) {
			title := w.Title()
			w.Destroy()
			d.root.RemoveNode(w)
			d.log.Info("window closed", zap.String("title", title))
		})

		d.sleep(d.pollInterval)
	}
	d.log.Info("all windows closed")
	return nil
}

func (d *Driver) createFromEvent(ev UserEvent) {
	cfg, ok := ev.Data1.(*WindowConfig)
	if !ok || cfg == nil {
		d.log.Warn("create-window event without config")
		return
	}
	var h Handlers
	if hp, ok := ev.Data2.(*Handlers); ok && hp != nil {
		h = *hp
	}
	if _, err := d.CreateWindow(*cfg, h); err != nil {
		d.log.Error("create window from event",
			zap.String("title", cfg.Title), zap.Error(err))
	}
}
