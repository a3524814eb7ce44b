package engine

import "github.com/stageloop/engine/geom"

// Handlers is the fixed-shape table of per-event-kind callbacks bound to
// an Entity. A table is total: every slot is non-nil once the entity is
// constructed (missing slots are filled with the defaults below), so
// dispatch never checks for absence. Slots may be replaced at any time by
// plain assignment; assigning nil afterward is a programmer error, not a
// reported failure.
//
// Each callback receives the entity it is bound to plus the event
// payload, and returns a Signal deciding whether the surrounding loop
// keeps running. Init, Destroy, and Render return nothing.
type Handlers struct {
	Init    func(*Entity)
	Destroy func(*Entity)
	Render  func(e *Entity, target Renderer, offset geom.Vec3)
	Update  func(e *Entity, elapsed float64) Signal

	TargetReset func(*Entity) Signal
	WindowEvent func(*Entity, WindowEvent) Signal

	KeyDown     func(*Entity, KeyEvent) Signal
	KeyUp       func(*Entity, KeyEvent) Signal
	TextEditing func(*Entity, TextEditEvent) Signal
	TextInput   func(*Entity, TextInputEvent) Signal

	MouseDown   func(*Entity, MouseButtonEvent) Signal
	MouseUp     func(*Entity, MouseButtonEvent) Signal
	MouseMotion func(*Entity, MouseMotionEvent) Signal
	MouseWheel  func(*Entity, MouseWheelEvent) Signal

	ClipboardUpdate func(*Entity, ClipboardEvent) Signal

	FileDrop     func(*Entity, DropEvent) Signal
	TextDrop     func(*Entity, DropEvent) Signal
	DropBegin    func(*Entity, DropEvent) Signal
	DropComplete func(*Entity, DropEvent) Signal

	JoyAxis       func(*Entity, JoyAxisEvent) Signal
	JoyBall       func(*Entity, JoyBallEvent) Signal
	JoyHat        func(*Entity, JoyHatEvent) Signal
	JoyButtonDown func(*Entity, JoyButtonEvent) Signal
	JoyButtonUp   func(*Entity, JoyButtonEvent) Signal

	ControllerAxis       func(*Entity, ControllerAxisEvent) Signal
	ControllerButtonDown func(*Entity, ControllerButtonEvent) Signal
	ControllerButtonUp   func(*Entity, ControllerButtonEvent) Signal

	FingerDown   func(*Entity, TouchEvent) Signal
	FingerUp     func(*Entity, TouchEvent) Signal
	FingerMotion func(*Entity, TouchEvent) Signal

	GestureRecord  func(*Entity, GestureEvent) Signal
	GesturePerform func(*Entity, GestureEvent) Signal
	MultiGesture   func(*Entity, MultiGestureEvent) Signal

	User func(*Entity, UserEvent) Signal
}

// DefaultHandlers returns a table whose every slot performs no side
// effect and signals Continue.
func DefaultHandlers() Handlers {
	var h Handlers
	h.complete()
	return h
}

// complete fills nil slots with the default stubs, keeping the table
// total.
func (h *Handlers) complete() {
	if h.Init == nil {
		h.Init = func(*Entity) {}
	}
	if h.Destroy == nil {
		h.Destroy = func(*Entity) {}
	}
	if h.Render == nil {
		h.Render = func(*Entity, Renderer, geom.Vec3) {}
	}
	if h.Update == nil {
		h.Update = func(*Entity, float64) Signal { return Continue }
	}
	if h.TargetReset == nil {
		h.TargetReset = func(*Entity) Signal { return Continue }
	}
	if h.WindowEvent == nil {
		h.WindowEvent = func(*Entity, WindowEvent) Signal { return Continue }
	}
	if h.KeyDown == nil {
		h.KeyDown = func(*Entity, KeyEvent) Signal { return Continue }
	}
	if h.KeyUp == nil {
		h.KeyUp = func(*Entity, KeyEvent) Signal { return Continue }
	}
	if h.TextEditing == nil {
		h.TextEditing = func(*Entity, TextEditEvent) Signal { return Continue }
	}
	if h.TextInput == nil {
		h.TextInput = func(*Entity, TextInputEvent) Signal { return Continue }
	}
	if h.MouseDown == nil {
		h.MouseDown = func(*Entity, MouseButtonEvent) Signal { return Continue }
	}
	if h.MouseUp == nil {
		h.MouseUp = func(*Entity, MouseButtonEvent) Signal { return Continue }
	}
	if h.MouseMotion == nil {
		h.MouseMotion = func(*Entity, MouseMotionEvent) Signal { return Continue }
	}
	if h.MouseWheel == nil {
		h.MouseWheel = func(*Entity, MouseWheelEvent) Signal { return Continue }
	}
	if h.ClipboardUpdate == nil {
		h.ClipboardUpdate = func(*Entity, ClipboardEvent) Signal { return Continue }
	}
	if h.FileDrop == nil {
		h.FileDrop = func(*Entity, DropEvent) Signal { return Continue }
	}
	if h.TextDrop == nil {
		h.TextDrop = func(*Entity, DropEvent) Signal { return Continue }
	}
	if h.DropBegin == nil {
		h.DropBegin = func(*Entity, DropEvent) Signal { return Continue }
	}
	if h.DropComplete == nil {
		h.DropComplete = func(*Entity, DropEvent) Signal { return Continue }
	}
	if h.JoyAxis == nil {
		h.JoyAxis = func(*Entity, JoyAxisEvent) Signal { return Continue }
	}
	if h.JoyBall == nil {
		h.JoyBall = func(*Entity, JoyBallEvent) Signal { return Continue }
	}
	if h.JoyHat == nil {
		h.JoyHat = func(*Entity, JoyHatEvent) Signal { return Continue }
	}
	if h.JoyButtonDown == nil {
		h.JoyButtonDown = func(*Entity, JoyButtonEvent) Signal { return Continue }
	}
	if h.JoyButtonUp == nil {
		h.JoyButtonUp = func(*Entity, JoyButtonEvent) Signal { return Continue }
	}
	if h.ControllerAxis == nil {
		h.ControllerAxis = func(*Entity, ControllerAxisEvent) Signal { return Continue }
	}
	if h.ControllerButtonDown == nil {
		h.ControllerButtonDown = func(*Entity, ControllerButtonEvent) Signal { return Continue }
	}
	if h.ControllerButtonUp == nil {
		h.ControllerButtonUp = func(*Entity, ControllerButtonEvent) Signal { return Continue }
	}
	if h.FingerDown == nil {
		h.FingerDown = func(*Entity, TouchEvent) Signal { return Continue }
	}
	if h.FingerUp == nil {
		h.FingerUp = func(*Entity, TouchEvent) Signal { return Continue }
	}
	if h.FingerMotion == nil {
		h.FingerMotion = func(*Entity, TouchEvent) Signal { return Continue }
	}
	if h.GestureRecord == nil {
		h.GestureRecord = func(*Entity, GestureEvent) Signal { return Continue }
	}
	if h.GesturePerform == nil {
		h.GesturePerform = func(*Entity, GestureEvent) Signal { return Continue }
	}
	if h.MultiGesture == nil {
		h.MultiGesture = func(*Entity, MultiGestureEvent) Signal { return Continue }
	}
	if h.User == nil {
		h.User = func(*Entity, UserEvent) Signal { return Continue }
	}
}
