package engine

import "fmt"

// Debug string forms for every raw event kind. These feed logging only;
// nothing parses them.

func (e QuitEvent) String() string { return "quit" }

func (e TargetResetEvent) String() string {
	return fmt.Sprintf("targetreset win=%d", e.Window)
}

func (k WindowEventKind) String() string {
	switch k {
	case WindowShown:
		return "shown"
	case WindowExposed:
		return "exposed"
	case WindowMoved:
		return "moved"
	case WindowResized:
		return "resized"
	case WindowSizeChanged:
		return "sizechanged"
	case WindowMinimized:
		return "minimized"
	case WindowMaximized:
		return "maximized"
	case WindowRestored:
		return "restored"
	case WindowEnter:
		return "enter"
	case WindowLeave:
		return "leave"
	case WindowFocusGained:
		return "focusgained"
	case WindowFocusLost:
		return "focuslost"
	case WindowClosed:
		return "closed"
	default:
		return fmt.Sprintf("windowevent(%d)", uint8(k))
	}
}

func (e WindowEvent) String() string {
	return fmt.Sprintf("window %s win=%d data=(%d,%d)", e.Kind, e.Window, e.Data1, e.Data2)
}

func (e KeyEvent) String() string {
	dir := "up"
	if e.Down {
		dir = "down"
	}
	return fmt.Sprintf("key%s key=%d scan=%d mod=%#x repeat=%d win=%d",
		dir, e.Key, e.Scancode, uint16(e.Mod), e.Repeat, e.Window)
}

func (e TextEditEvent) String() string {
	return fmt.Sprintf("textediting %q start=%d len=%d win=%d", e.Text, e.Start, e.Length, e.Window)
}

func (e TextInputEvent) String() string {
	return fmt.Sprintf("textinput %q win=%d", e.Text, e.Window)
}

func (e MouseButtonEvent) String() string {
	dir := "up"
	if e.Down {
		dir = "down"
	}
	return fmt.Sprintf("mouse%s btn=%d clicks=%d at=(%d,%d) which=%d win=%d",
		dir, e.Button, e.Clicks, e.X, e.Y, e.Which, e.Window)
}

func (e MouseMotionEvent) String() string {
	return fmt.Sprintf("mousemotion at=(%d,%d) rel=(%d,%d) which=%d win=%d",
		e.X, e.Y, e.RelX, e.RelY, e.Which, e.Window)
}

func (e MouseWheelEvent) String() string {
	return fmt.Sprintf("mousewheel delta=(%d,%d) flipped=%t which=%d win=%d",
		e.X, e.Y, e.Flipped, e.Which, e.Window)
}

func (e ClipboardEvent) String() string {
	return fmt.Sprintf("clipboardupdate %q", e.Text)
}

func (e DropEvent) String() string {
	switch e.Kind {
	case DropFile:
		return fmt.Sprintf("filedrop %q win=%d", e.Payload, e.Window)
	case DropText:
		return fmt.Sprintf("textdrop %q win=%d", e.Payload, e.Window)
	case DropBegin:
		return fmt.Sprintf("dropbegin win=%d", e.Window)
	case DropComplete:
		return fmt.Sprintf("dropcomplete win=%d", e.Window)
	default:
		return fmt.Sprintf("drop(%d) win=%d", e.Kind, e.Window)
	}
}

func (e JoyAxisEvent) String() string {
	return fmt.Sprintf("jaxis joy=%d axis=%d value=%d", e.Joystick, e.Axis, e.Value)
}

func (e JoyBallEvent) String() string {
	return fmt.Sprintf("jball joy=%d ball=%d rel=(%d,%d)", e.Joystick, e.Ball, e.RelX, e.RelY)
}

func (e JoyHatEvent) String() string {
	return fmt.Sprintf("jhat joy=%d hat=%d value=%d", e.Joystick, e.Hat, e.Value)
}

func (e JoyButtonEvent) String() string {
	dir := "up"
	if e.Down {
		dir = "down"
	}
	return fmt.Sprintf("jbtn%s joy=%d btn=%d", dir, e.Joystick, e.Button)
}

func (e ControllerAxisEvent) String() string {
	return fmt.Sprintf("caxis ctrl=%d axis=%d value=%d", e.Controller, e.Axis, e.Value)
}

func (e ControllerButtonEvent) String() string {
	dir := "up"
	if e.Down {
		dir = "down"
	}
	return fmt.Sprintf("cbtn%s ctrl=%d btn=%d", dir, e.Controller, e.Button)
}

func (e TouchEvent) String() string {
	var phase string
	switch e.Phase {
	case TouchDown:
		phase = "fingerdown"
	case TouchUp:
		phase = "fingerup"
	default:
		phase = "fingermotion"
	}
	return fmt.Sprintf("%s touch=%d finger=%d at=(%.3f,%.3f) d=(%.3f,%.3f) p=%.2f",
		phase, e.Touch, e.Finger, e.X, e.Y, e.DX, e.DY, e.Pressure)
}

func (e GestureEvent) String() string {
	if e.Recording {
		return fmt.Sprintf("gesturerecord touch=%d gesture=%d fingers=%d at=(%.3f,%.3f)",
			e.Touch, e.Gesture, e.NumFingers, e.X, e.Y)
	}
	return fmt.Sprintf("gestureperform touch=%d gesture=%d fingers=%d at=(%.3f,%.3f) err=%.3f",
		e.Touch, e.Gesture, e.NumFingers, e.X, e.Y, e.Error)
}

func (e MultiGestureEvent) String() string {
	return fmt.Sprintf("multigesture touch=%d fingers=%d at=(%.3f,%.3f) dtheta=%.3f ddist=%.3f",
		e.Touch, e.NumFingers, e.X, e.Y, e.DTheta, e.DDist)
}

func (e UserEvent) String() string {
	if e.Code == CodeCreateWindow {
		return "userevent createwindow"
	}
	return fmt.Sprintf("userevent code=%d win=%d", e.Code, e.Window)
}
