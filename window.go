package engine

import (
	"fmt"
	"time"

	"github.com/stageloop/engine/geom"
)

// defaultClearColor is the frame background when none is configured.
var defaultClearColor = Color{R: 128, G: 128, B: 128, A: 255}

// Window is a Container bound to one native window and renderer. Each
// window runs its frame loop on a dedicated OS thread managed by the
// Scheduler; its scene graph is confined to that thread once the loop
// starts.
type Window struct {
	Container

	platform Platform
	native   NativeWindow
	ren      Renderer
	cfg      WindowConfig

	// set by whichever side releases the renderer first: the window
	// thread on loop exit, or Destroy for windows never spawned
	renReleased bool

	clearColor Color

	now   func() time.Time
	tPrev time.Time
}

var _ Node = (*Window)(nil)

// NewWindow opens a native window and renderer on the given platform and
// wraps them in a Window with the given handler table. Native resources
// are acquired before the scene-side construction runs, so an Init
// handler always observes a fully bound window. On failure nothing is
// left allocated.
func NewWindow(p Platform, cfg WindowConfig, h Handlers, opts ...WindowOption) (*Window, error) {
	native, ren, err := p.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("engine: open window %q: %w", cfg.Title, err)
	}
	w := &Window{
		platform:   p,
		native:     native,
		ren:        ren,
		cfg:        cfg,
		clearColor: defaultClearColor,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.Container.initContainer(h)
	return w, nil
}

// NativeID returns the platform identity of the underlying native
// window. Distinct from ID, the scene-graph identity.
func (w *Window) NativeID() WindowID { return w.native.ID() }

// Config returns the configuration the window was created with.
func (w *Window) Config() WindowConfig { return w.cfg }

// FrameRate returns the target update rate. Zero means uncapped.
func (w *Window) FrameRate() float64 { return w.cfg.FrameRate }

// Native returns the underlying native window handle.
func (w *Window) Native() NativeWindow { return w.native }

// Renderer returns the window's renderer.
func (w *Window) Renderer() Renderer { return w.ren }

// ClearColor returns the frame background color.
func (w *Window) ClearColor() Color { return w.clearColor }

// SetClearColor replaces the frame background color.
func (w *Window) SetClearColor(c Color) { w.clearColor = c }

func (w *Window) Title() string     { return w.native.Title() }
func (w *Window) SetTitle(t string) { w.native.SetTitle(t) }

// Pos returns the native window's screen position. Named Pos rather
// than Position so the spatial Position field stays addressable.
func (w *Window) Pos() (int, int)  { return w.native.Position() }
func (w *Window) SetPos(x, y int)  { w.native.SetPosition(x, y) }
func (w *Window) Size() (int, int) { return w.native.Size() }
func (w *Window) Resize(x, y int)  { w.native.Resize(x, y) }

func (w *Window) SetFullscreen(fullscreen bool) error {
	return w.native.SetFullscreen(fullscreen)
}

func (w *Window) Opacity() float64 { return w.native.Opacity() }

func (w *Window) SetOpacity(o float64) error {
	return w.native.SetOpacity(o)
}

// bindContext claims the window's rendering context for the calling OS
// thread. The scheduler calls it once at the top of the window's thread
// loop.
func (w *Window) bindContext() error {
	return w.native.MakeCurrent()
}

// Render clears the frame, renders the scene graph into the window's own
// renderer, and presents. The passed target is ignored; a window always
// draws to its bound renderer.
func (w *Window) Render(_ Renderer, offset geom.Vec3) {
	w.ren.Clear(w.clearColor)
	w.Container.Render(w.ren, offset)
	w.ren.Present()
}

// Update ignores the caller-supplied elapsed value: a window clocks
// itself, measuring the seconds since its previous update on its own
// monotonic clock. The first update reports zero elapsed, which skips
// motion integration.
func (w *Window) Update(_ float64) Signal {
	t := w.now()
	var elapsed float64
	if !w.tPrev.IsZero() {
		elapsed = t.Sub(w.tPrev).Seconds()
	}
	w.tPrev = t
	return w.Container.Update(elapsed)
}

// WindowEvent terminates the window on WindowClosed regardless of what
// any handler in the tree would answer; every other kind broadcasts
// normally.
func (w *Window) WindowEvent(ev WindowEvent) Signal {
	if ev.Kind == WindowClosed {
		return Stop
	}
	return w.Container.WindowEvent(ev)
}

// Route maps an event to the matching dispatch entry point. Quit always
// stops the window; events of unknown type are ignored.
func (w *Window) Route(ev Event) Signal {
	switch e := ev.(type) {
	case QuitEvent:
		return Stop
	case TargetResetEvent:
		return w.TargetReset()
	case WindowEvent:
		return w.WindowEvent(e)
	case KeyEvent:
		if e.Down {
			return w.KeyDown(e)
		}
		return w.KeyUp(e)
	case TextEditEvent:
		return w.TextEditing(e)
	case TextInputEvent:
		return w.TextInput(e)
	case MouseButtonEvent:
		if e.Down {
			return w.MouseDown(e)
		}
		return w.MouseUp(e)
	case MouseMotionEvent:
		return w.MouseMotion(e)
	case MouseWheelEvent:
		return w.MouseWheel(e)
	case ClipboardEvent:
		return w.ClipboardUpdate(e)
	case DropEvent:
		switch e.Kind {
		case DropFile:
			return w.FileDrop(e)
		case DropText:
			return w.TextDrop(e)
		case DropBegin:
			return w.DropBegin(e)
		case DropComplete:
			return w.DropComplete(e)
		}
		return Continue
	case JoyAxisEvent:
		return w.JoyAxis(e)
	case JoyBallEvent:
		return w.JoyBall(e)
	case JoyHatEvent:
		return w.JoyHat(e)
	case JoyButtonEvent:
		if e.Down {
			return w.JoyButtonDown(e)
		}
		return w.JoyButtonUp(e)
	case ControllerAxisEvent:
		return w.ControllerAxis(e)
	case ControllerButtonEvent:
		if e.Down {
			return w.ControllerButtonDown(e)
		}
		return w.ControllerButtonUp(e)
	case TouchEvent:
		switch e.Phase {
		case TouchDown:
			return w.FingerDown(e)
		case TouchUp:
			return w.FingerUp(e)
		case TouchMotion:
			return w.FingerMotion(e)
		}
		return Continue
	case GestureEvent:
		if e.Recording {
			return w.GestureRecord(e)
		}
		return w.GesturePerform(e)
	case MultiGestureEvent:
		return w.MultiGesture(e)
	case UserEvent:
		return w.User(e)
	}
	return Continue
}

// shutdownGraphics releases the renderer and detaches the rendering
// context. It must run on the window's thread while the context is
// still current; GL resources cannot be released from any other
// thread. The scheduler calls it when the window's loop ends.
func (w *Window) shutdownGraphics() {
	if !w.renReleased {
		w.renReleased = true
		w.ren.Release()
	}
	w.native.DetachCurrent()
}

// Destroy tears the window down in reverse construction order: the
// renderer releases before the native window, then the scene graph
// destroys. Idempotent. For scheduled windows the renderer was already
// released by the window's own thread, which is the only thread with
// the context current; Destroy then only reclaims the native window.
func (w *Window) Destroy() {
	if w.dead {
		return
	}
	if !w.renReleased {
		w.renReleased = true
		w.ren.Release()
	}
	w.native.Destroy()
	w.Container.Destroy()
}
