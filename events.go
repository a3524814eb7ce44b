package engine

// Event is one raw record from the platform event queue: a concrete
// payload struct plus the window it is addressed to. Events whose target
// window is zero are broadcast to every live window.
type Event interface {
	TargetWindow() WindowID
}

// Windowed is embedded by every event payload and names the window the
// event is addressed to. Input kinds without window affinity (joystick,
// controller, clipboard) leave it zero.
type Windowed struct {
	Window WindowID
}

// TargetWindow returns the addressed window, zero for broadcast.
func (w Windowed) TargetWindow() WindowID { return w.Window }

// QuitEvent terminates the application. It is always broadcast.
type QuitEvent struct {
	Windowed
}

// TargetResetEvent reports that render targets were lost and must be
// rebuilt.
type TargetResetEvent struct {
	Windowed
}

// WindowEventKind distinguishes window-management sub-events.
type WindowEventKind uint8

const (
	WindowShown WindowEventKind = iota + 1
	WindowExposed
	WindowMoved
	WindowResized
	WindowSizeChanged
	WindowMinimized
	WindowMaximized
	WindowRestored
	WindowEnter
	WindowLeave
	WindowFocusGained
	WindowFocusLost
	WindowClosed
)

// WindowEvent is a window-management event. Data1 and Data2 carry
// kind-specific values (e.g. the new size for WindowResized).
type WindowEvent struct {
	Windowed
	Kind  WindowEventKind
	Data1 int32
	Data2 int32
}

// Keycode is a layout-dependent key identifier.
type Keycode int32

// Scancode is a physical key location on the keyboard.
type Scancode int32

// KeyMod is a bitmask of held modifier keys.
type KeyMod uint16

const (
	ModShift KeyMod = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// KeyEvent is a key press or release.
type KeyEvent struct {
	Windowed
	Key      Keycode
	Scancode Scancode
	Mod      KeyMod
	Repeat   uint8
	Down     bool
}

// TextEditEvent reports in-progress IME composition.
type TextEditEvent struct {
	Windowed
	Text   string
	Start  int32
	Length int32
}

// TextInputEvent carries committed text input.
type TextInputEvent struct {
	Windowed
	Text string
}

// MouseButtonEvent is a mouse button press or release.
type MouseButtonEvent struct {
	Windowed
	X, Y   int32
	Button uint8
	Clicks uint8
	Which  uint32 // mouse instance id
	Down   bool
}

// MouseMotionEvent reports cursor movement. Buttons holds the held state
// of left, middle, right, X1 and X2 in that order.
type MouseMotionEvent struct {
	Windowed
	X, Y       int32
	RelX, RelY int32
	Buttons    [5]bool
	Which      uint32
}

// MouseWheelEvent reports scroll wheel movement. Flipped means the
// platform delivered the axes with inverted sign.
type MouseWheelEvent struct {
	Windowed
	Flipped bool
	X, Y    int32
	Which   uint32
}

// ClipboardEvent reports new clipboard contents.
type ClipboardEvent struct {
	Windowed
	Text string
}

// DropKind distinguishes the phases and payloads of a drag-and-drop
// sequence.
type DropKind uint8

const (
	DropFile DropKind = iota + 1
	DropText
	DropBegin
	DropComplete
)

// DropEvent is one step of a drag-and-drop sequence. Payload is the file
// path for DropFile, the dropped text for DropText, and empty otherwise.
type DropEvent struct {
	Windowed
	Kind    DropKind
	Payload string
}

// JoystickID identifies an attached joystick or controller.
type JoystickID int32

// JoyAxisEvent reports joystick axis movement.
type JoyAxisEvent struct {
	Windowed
	Joystick JoystickID
	Axis     uint8
	Value    int16
}

// JoyBallEvent reports relative trackball movement.
type JoyBallEvent struct {
	Windowed
	Joystick   JoystickID
	Ball       uint8
	RelX, RelY int16
}

// JoyHatEvent reports a hat switch position change.
type JoyHatEvent struct {
	Windowed
	Joystick JoystickID
	Hat      uint8
	Value    uint8
}

// JoyButtonEvent is a joystick button press or release.
type JoyButtonEvent struct {
	Windowed
	Joystick JoystickID
	Button   uint8
	Down     bool
}

// ControllerAxisEvent reports game controller axis movement.
type ControllerAxisEvent struct {
	Windowed
	Controller JoystickID
	Axis       uint8
	Value      int16
}

// ControllerButtonEvent is a game controller button press or release.
type ControllerButtonEvent struct {
	Windowed
	Controller JoystickID
	Button     uint8
	Down       bool
}

// TouchID identifies a touch device; FingerID a finger on it.
type TouchID int64

// FingerID identifies one finger within a touch sequence.
type FingerID int64

// GestureID identifies a recorded custom gesture.
type GestureID int64

// TouchPhase distinguishes finger contact, release, and movement.
type TouchPhase uint8

const (
	TouchDown TouchPhase = iota + 1
	TouchUp
	TouchMotion
)

// TouchEvent is one finger contact, release, or movement. Coordinates and
// deltas are normalized to [0, 1].
type TouchEvent struct {
	Windowed
	Touch    TouchID
	Finger   FingerID
	X, Y     float32
	DX, DY   float32
	Pressure float32
	Phase    TouchPhase
}

// GestureEvent is a custom-gesture record or recognition. Recording is
// true while the gesture is being recorded; Error is the recognition
// error for performed gestures.
type GestureEvent struct {
	Windowed
	Touch      TouchID
	Gesture    GestureID
	NumFingers uint32
	X, Y       float32
	Error      float32
	Recording  bool
}

// MultiGestureEvent reports multi-finger pinch and rotate deltas.
type MultiGestureEvent struct {
	Windowed
	Touch      TouchID
	NumFingers uint16
	X, Y       float32
	DTheta     float32
	DDist      float32
}

// CodeCreateWindow is the user-event code reserved by the runtime itself.
// A UserEvent carrying it asks the driver to construct a new window;
// Data1 must be a *WindowConfig and Data2 an optional *Handlers. The
// driver consumes these events, they are never forwarded to windows.
const CodeCreateWindow int32 = -1 << 31

// UserEvent is an application-defined event carrying two opaque payloads
// and an integer code.
type UserEvent struct {
	Windowed
	Code  int32
	Data1 any
	Data2 any
}
