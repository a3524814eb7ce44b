package glfw

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	glfw3 "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/stageloop/engine"
)

// nativeWindow wraps one GLFW window. Its callbacks translate GLFW
// input into engine events and run on the platform's polling thread.
type nativeWindow struct {
	id    engine.WindowID
	win   *glfw3.Window
	plat  *Platform
	ren   *renderer
	title string

	// windowed-mode geometry saved across SetFullscreen
	savedX, savedY, savedW, savedH int

	lastX, lastY float64
	buttons      [5]bool
}

var _ engine.NativeWindow = (*nativeWindow)(nil)

func (w *nativeWindow) ID() engine.WindowID { return w.id }

func (w *nativeWindow) Title() string { return w.title }

func (w *nativeWindow) SetTitle(title string) {
	w.title = title
	w.win.SetTitle(title)
}

func (w *nativeWindow) Position() (int, int) { return w.win.GetPos() }

func (w *nativeWindow) SetPosition(x, y int) { w.win.SetPos(x, y) }

func (w *nativeWindow) Size() (int, int) { return w.win.GetSize() }

func (w *nativeWindow) Resize(wd, h int) { w.win.SetSize(wd, h) }

func (w *nativeWindow) SetFullscreen(fullscreen bool) error {
	if fullscreen {
		w.savedX, w.savedY = w.win.GetPos()
		w.savedW, w.savedH = w.win.GetSize()
		mon := glfw3.GetPrimaryMonitor()
		mode := mon.GetVideoMode()
		w.win.SetMonitor(mon, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
		return nil
	}
	wd, h := w.savedW, w.savedH
	if wd == 0 || h == 0 {
		wd, h = w.win.GetSize()
	}
	w.win.SetMonitor(nil, w.savedX, w.savedY, wd, h, glfw3.DontCare)
	return nil
}

func (w *nativeWindow) Opacity() float64 { return float64(w.win.GetOpacity()) }

func (w *nativeWindow) SetOpacity(o float64) error {
	w.win.SetOpacity(float32(o))
	return nil
}

func (w *nativeWindow) MakeCurrent() error {
	w.win.MakeContextCurrent()
	// reload GL entry points for the thread claiming the context
	return gl.Init()
}

func (w *nativeWindow) DetachCurrent() {
	glfw3.DetachCurrentContext()
}

func (w *nativeWindow) Destroy() {
	w.plat.forget(w.id)
	w.win.Destroy()
}

func (w *nativeWindow) installCallbacks() {
	w.win.SetCloseCallback(func(*glfw3.Window) {
		w.plat.emit(engine.WindowEvent{
			Windowed: engine.Windowed{Window: w.id},
			Kind:     engine.WindowClosed,
		})
	})
	w.win.SetPosCallback(func(_ *glfw3.Window, x, y int) {
		w.plat.emit(engine.WindowEvent{
			Windowed: engine.Windowed{Window: w.id},
			Kind:     engine.WindowMoved,
			Data1:    int32(x), Data2: int32(y),
		})
	})
	w.win.SetSizeCallback(func(_ *glfw3.Window, wd, h int) {
		w.plat.emit(engine.WindowEvent{
			Windowed: engine.Windowed{Window: w.id},
			Kind:     engine.WindowResized,
			Data1:    int32(wd), Data2: int32(h),
		})
	})
	w.win.SetFramebufferSizeCallback(func(_ *glfw3.Window, wd, h int) {
		if w.ren != nil {
			w.ren.resize(wd, h)
		}
	})
	w.win.SetFocusCallback(func(_ *glfw3.Window, focused bool) {
		kind := engine.WindowFocusLost
		if focused {
			kind = engine.WindowFocusGained
		}
		w.plat.emit(engine.WindowEvent{
			Windowed: engine.Windowed{Window: w.id},
			Kind:     kind,
		})
	})
	w.win.SetIconifyCallback(func(_ *glfw3.Window, iconified bool) {
		kind := engine.WindowRestored
		if iconified {
			kind = engine.WindowMinimized
		}
		w.plat.emit(engine.WindowEvent{
			Windowed: engine.Windowed{Window: w.id},
			Kind:     kind,
		})
	})
	w.win.SetMaximizeCallback(func(_ *glfw3.Window, maximized bool) {
		kind := engine.WindowRestored
		if maximized {
			kind = engine.WindowMaximized
		}
		w.plat.emit(engine.WindowEvent{
			Windowed: engine.Windowed{Window: w.id},
			Kind:     kind,
		})
	})
	w.win.SetCursorEnterCallback(func(_ *glfw3.Window, entered bool) {
		kind := engine.WindowLeave
		if entered {
			kind = engine.WindowEnter
		}
		w.plat.emit(engine.WindowEvent{
			Windowed: engine.Windowed{Window: w.id},
			Kind:     kind,
		})
	})

	w.win.SetKeyCallback(func(_ *glfw3.Window, key glfw3.Key, scancode int, action glfw3.Action, mods glfw3.ModifierKey) {
		ev := engine.KeyEvent{
			Windowed: engine.Windowed{Window: w.id},
			Key:      engine.Keycode(key),
			Scancode: engine.Scancode(scancode),
			Mod:      convertMods(mods),
			Down:     action == glfw3.Press || action == glfw3.Repeat,
		}
		if action == glfw3.Repeat {
			ev.Repeat = 1
		}
		w.plat.emit(ev)
	})
	w.win.SetCharCallback(func(_ *glfw3.Window, r rune) {
		w.plat.emit(engine.TextInputEvent{
			Windowed: engine.Windowed{Window: w.id},
			Text:     string(r),
		})
	})
	w.win.SetMouseButtonCallback(func(_ *glfw3.Window, button glfw3.MouseButton, action glfw3.Action, _ glfw3.ModifierKey) {
		x, y := w.win.GetCursorPos()
		down := action == glfw3.Press
		if b := int(button); b >= 0 && b < len(w.buttons) {
			w.buttons[b] = down
		}
		w.plat.emit(engine.MouseButtonEvent{
			Windowed: engine.Windowed{Window: w.id},
			X:        int32(x), Y: int32(y),
			Button: uint8(button),
			Clicks: 1,
			Down:   down,
		})
	})
	w.win.SetCursorPosCallback(func(_ *glfw3.Window, x, y float64) {
		ev := engine.MouseMotionEvent{
			Windowed: engine.Windowed{Window: w.id},
			X:        int32(x), Y: int32(y),
			RelX:    int32(x - w.lastX),
			RelY:    int32(y - w.lastY),
			Buttons: w.buttons,
		}
		w.lastX, w.lastY = x, y
		w.plat.emit(ev)
	})
	w.win.SetScrollCallback(func(_ *glfw3.Window, xoff, yoff float64) {
		w.plat.emit(engine.MouseWheelEvent{
			Windowed: engine.Windowed{Window: w.id},
			X:        int32(xoff), Y: int32(yoff),
		})
	})
	w.win.SetDropCallback(func(_ *glfw3.Window, names []string) {
		w.plat.emit(engine.DropEvent{
			Windowed: engine.Windowed{Window: w.id},
			Kind:     engine.DropBegin,
		})
		for _, name := range names {
			w.plat.emit(engine.DropEvent{
				Windowed: engine.Windowed{Window: w.id},
				Kind:     engine.DropFile,
				Payload:  name,
			})
		}
		w.plat.emit(engine.DropEvent{
			Windowed: engine.Windowed{Window: w.id},
			Kind:     engine.DropComplete,
		})
	})
}

func convertMods(mods glfw3.ModifierKey) engine.KeyMod {
	var m engine.KeyMod
	if mods&glfw3.ModShift != 0 {
		m |= engine.ModShift
	}
	if mods&glfw3.ModControl != 0 {
		m |= engine.ModCtrl
	}
	if mods&glfw3.ModAlt != 0 {
		m |= engine.ModAlt
	}
	if mods&glfw3.ModSuper != 0 {
		m |= engine.ModSuper
	}
	return m
}
