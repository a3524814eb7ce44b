// Package glfw implements the engine platform on GLFW windows with an
// OpenGL 4.1 renderer.
package glfw

import (
	"fmt"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	glfw3 "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/stageloop/engine"
)

// Platform drives GLFW. Construct it on the main goroutine after
// locking the OS thread; Open and Poll must stay on that thread, which
// is also where every GLFW input callback fires.
type Platform struct {
	mu     sync.Mutex
	events []engine.Event

	windows map[engine.WindowID]*nativeWindow
	nextID  engine.WindowID

	joysticks map[glfw3.Joystick]*joystickState
}

var _ engine.Platform = (*Platform)(nil)

// New initializes GLFW.
func New() (*Platform, error) {
	if err := glfw3.Init(); err != nil {
		return nil, fmt.Errorf("glfw: init: %w", err)
	}
	return &Platform{
		windows:   make(map[engine.WindowID]*nativeWindow),
		joysticks: make(map[glfw3.Joystick]*joystickState),
	}, nil
}

// Terminate shuts GLFW down. All windows must already be destroyed.
func (p *Platform) Terminate() {
	glfw3.Terminate()
}

// Open creates a GLFW window with an OpenGL 4.1 core context and a
// renderer bound to it. The context is detached before returning so the
// window's thread can claim it with MakeCurrent.
func (p *Platform) Open(cfg engine.WindowConfig) (engine.NativeWindow, engine.Renderer, error) {
	glfw3.DefaultWindowHints()
	glfw3.WindowHint(glfw3.ContextVersionMajor, 4)
	glfw3.WindowHint(glfw3.ContextVersionMinor, 1)
	glfw3.WindowHint(glfw3.OpenGLProfile, glfw3.OpenGLCoreProfile)
	glfw3.WindowHint(glfw3.OpenGLForwardCompatible, glfw3.True)
	hintBool(glfw3.Resizable, cfg.Flags&engine.WindowResizable != 0)
	hintBool(glfw3.Decorated, cfg.Flags&engine.WindowBorderless == 0)
	hintBool(glfw3.Visible, cfg.Flags&engine.WindowHidden == 0)

	var monitor *glfw3.Monitor
	if cfg.Flags&engine.WindowFullscreen != 0 {
		monitor = glfw3.GetPrimaryMonitor()
	}

	win, err := glfw3.CreateWindow(cfg.W, cfg.H, cfg.Title, monitor, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("glfw: create window %q: %w", cfg.Title, err)
	}
	if monitor == nil && (cfg.X != 0 || cfg.Y != 0) {
		win.SetPos(cfg.X, cfg.Y)
	}

	p.nextID++
	nw := &nativeWindow{
		id:    p.nextID,
		win:   win,
		plat:  p,
		title: cfg.Title,
	}
	nw.installCallbacks()
	p.windows[nw.id] = nw

	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		delete(p.windows, nw.id)
		return nil, nil, fmt.Errorf("glfw: load GL for %q: %w", cfg.Title, err)
	}
	if cfg.RendererFlags&engine.RendererVSync != 0 {
		glfw3.SwapInterval(1)
	} else {
		glfw3.SwapInterval(0)
	}

	fbw, fbh := win.GetFramebufferSize()
	ren, err := newRenderer(win, fbw, fbh)
	if err != nil {
		glfw3.DetachCurrentContext()
		win.Destroy()
		delete(p.windows, nw.id)
		return nil, nil, fmt.Errorf("glfw: renderer for %q: %w", cfg.Title, err)
	}
	nw.ren = ren
	glfw3.DetachCurrentContext()
	return nw, ren, nil
}

// Poll pumps GLFW, converts window and joystick state into events, and
// returns everything queued since the previous call.
func (p *Platform) Poll() []engine.Event {
	glfw3.PollEvents()
	p.pollJoysticks()

	p.mu.Lock()
	evs := p.events
	p.events = nil
	p.mu.Unlock()
	return evs
}

// Push enqueues an event to be returned by the next Poll. Safe from any
// goroutine; this is how application code raises UserEvents.
func (p *Platform) Push(ev engine.Event) {
	p.mu.Lock()
	p.events = append(p.events, ev)
	p.mu.Unlock()
}

func (p *Platform) emit(ev engine.Event) {
	p.mu.Lock()
	p.events = append(p.events, ev)
	p.mu.Unlock()
}

func (p *Platform) forget(id engine.WindowID) {
	delete(p.windows, id)
}

func hintBool(h glfw3.Hint, v bool) {
	if v {
		glfw3.WindowHint(h, glfw3.True)
	} else {
		glfw3.WindowHint(h, glfw3.False)
	}
}

// joystickState is the last observed joystick reading, diffed against
// the current one to synthesize events. GLFW has no joystick callbacks
// beyond connect/disconnect, so polling is the only source.
type joystickState struct {
	axes    []float32
	buttons []glfw3.Action
}

func (p *Platform) pollJoysticks() {
	for jid := glfw3.Joystick1; jid <= glfw3.JoystickLast; jid++ {
		if !jid.Present() {
			delete(p.joysticks, jid)
			continue
		}
		prev := p.joysticks[jid]
		if prev == nil {
			prev = &joystickState{}
			p.joysticks[jid] = prev
		}

		axes := jid.GetAxes()
		for i, v := range axes {
			if i < len(prev.axes) && prev.axes[i] == v {
				continue
			}
			p.emit(engine.JoyAxisEvent{
				Joystick: engine.JoystickID(jid),
				Axis:     uint8(i),
				Value:    int16(v * 32767),
			})
		}
		prev.axes = append(prev.axes[:0], axes...)

		buttons := jid.GetButtons()
		for i, a := range buttons {
			var was glfw3.Action
			if i < len(prev.buttons) {
				was = prev.buttons[i]
			}
			if a == was {
				continue
			}
			p.emit(engine.JoyButtonEvent{
				Joystick: engine.JoystickID(jid),
				Button:   uint8(i),
				Down:     a == glfw3.Press,
			})
		}
		prev.buttons = append(prev.buttons[:0], buttons...)
	}
}
