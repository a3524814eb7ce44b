package engine

import (
	"errors"
	"image"
	"sync"

	"github.com/stageloop/engine/geom"
)

// stubPlatform is a test platform with a scriptable event queue. Poll
// returns one queued batch per call; an empty queue polls empty.
type stubPlatform struct {
	mu      sync.Mutex
	batches [][]Event
	nextID  WindowID
	opened  []*stubWindow
	openErr error
}

func newStubPlatform() *stubPlatform {
	return &stubPlatform{}
}

func (p *stubPlatform) Open(cfg WindowConfig) (NativeWindow, Renderer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.openErr != nil {
		return nil, nil, p.openErr
	}
	p.nextID++
	w := &stubWindow{
		id:    p.nextID,
		title: cfg.Title,
		x:     cfg.X, y: cfg.Y,
		w: cfg.W, h: cfg.H,
		opacity: 1,
		ren:     &stubRenderer{},
	}
	p.opened = append(p.opened, w)
	return w, w.ren, nil
}

func (p *stubPlatform) Poll() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.batches) == 0 {
		return nil
	}
	batch := p.batches[0]
	p.batches = p.batches[1:]
	return batch
}

func (p *stubPlatform) push(batch ...Event) {
	p.mu.Lock()
	p.batches = append(p.batches, batch)
	p.mu.Unlock()
}

func (p *stubPlatform) openCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.opened)
}

type stubWindow struct {
	mu         sync.Mutex
	id         WindowID
	title      string
	x, y, w, h int
	fullscreen bool
	opacity    float64
	current    int
	destroyed  int
	detached   int
	ren        *stubRenderer

	destroyedBeforeRelease bool
	detachedBeforeRelease  bool
}

func (w *stubWindow) ID() WindowID { return w.id }

func (w *stubWindow) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

func (w *stubWindow) SetTitle(title string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.title = title
}

func (w *stubWindow) Position() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.x, w.y
}

func (w *stubWindow) SetPosition(x, y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.x, w.y = x, y
}

func (w *stubWindow) Size() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w, w.h
}

func (w *stubWindow) Resize(wd, h int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.w, w.h = wd, h
}

func (w *stubWindow) SetFullscreen(f bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.fullscreen = f
	return nil
}

func (w *stubWindow) Opacity() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.opacity
}

func (w *stubWindow) SetOpacity(o float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.opacity = o
	return nil
}

func (w *stubWindow) MakeCurrent() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.current++
	return nil
}

func (w *stubWindow) DetachCurrent() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.detached++
	// teardown order check: detaching with the renderer still live
	// means GL objects would outlive the thread's context binding
	if w.ren != nil && !w.ren.released() {
		w.detachedBeforeRelease = true
	}
}

func (w *stubWindow) detachCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.detached
}

func (w *stubWindow) Destroy() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.destroyed++
	// teardown order check: the renderer must already be released
	if w.ren != nil && !w.ren.released() {
		w.destroyedBeforeRelease = true
	}
}

func (w *stubWindow) destroyCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.destroyed
}

type stubRenderer struct {
	mu       sync.Mutex
	clears   []Color
	presents int
	lines    [][]geom.Vec2
	release  int
}

func (r *stubRenderer) Clear(c Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears = append(r.clears, c)
}

func (r *stubRenderer) Present() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.presents++
}

func (r *stubRenderer) DrawLines(pts []geom.Vec2, c Color, width float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, pts)
}

func (r *stubRenderer) NewImage(src image.Image) (Image, error) {
	if src == nil {
		return nil, errors.New("nil image")
	}
	b := src.Bounds()
	return &stubImage{w: b.Dx(), h: b.Dy()}, nil
}

func (r *stubRenderer) DrawImage(img Image, x, y float64, opts DrawOptions) error {
	return nil
}

func (r *stubRenderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.release++
}

func (r *stubRenderer) released() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.release > 0
}

func (r *stubRenderer) releaseCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.release
}

type stubImage struct {
	w, h int
}

func (i *stubImage) Size() (int, int) { return i.w, i.h }

func (i *stubImage) Release() {}
