package engine

import "github.com/stageloop/engine/geom"

// Node is the dispatch surface shared by every addressable unit of the
// scene: entities, containers, and windows. All per-kind dispatch calls
// are legal whether the node is alive or dead; handlers that must
// suppress work after destruction check Dead themselves.
type Node interface {
	ID() uint64
	Dead() bool
	Destroy()

	Render(target Renderer, offset geom.Vec3)
	Update(elapsed float64) Signal

	TargetReset() Signal
	WindowEvent(ev WindowEvent) Signal
	KeyDown(ev KeyEvent) Signal
	KeyUp(ev KeyEvent) Signal
	TextEditing(ev TextEditEvent) Signal
	TextInput(ev TextInputEvent) Signal
	MouseDown(ev MouseButtonEvent) Signal
	MouseUp(ev MouseButtonEvent) Signal
	MouseMotion(ev MouseMotionEvent) Signal
	MouseWheel(ev MouseWheelEvent) Signal
	ClipboardUpdate(ev ClipboardEvent) Signal
	FileDrop(ev DropEvent) Signal
	TextDrop(ev DropEvent) Signal
	DropBegin(ev DropEvent) Signal
	DropComplete(ev DropEvent) Signal
	JoyAxis(ev JoyAxisEvent) Signal
	JoyBall(ev JoyBallEvent) Signal
	JoyHat(ev JoyHatEvent) Signal
	JoyButtonDown(ev JoyButtonEvent) Signal
	JoyButtonUp(ev JoyButtonEvent) Signal
	ControllerAxis(ev ControllerAxisEvent) Signal
	ControllerButtonDown(ev ControllerButtonEvent) Signal
	ControllerButtonUp(ev ControllerButtonEvent) Signal
	FingerDown(ev TouchEvent) Signal
	FingerUp(ev TouchEvent) Signal
	FingerMotion(ev TouchEvent) Signal
	GestureRecord(ev GestureEvent) Signal
	GesturePerform(ev GestureEvent) Signal
	MultiGesture(ev MultiGestureEvent) Signal
	User(ev UserEvent) Signal
}

// Entity is the base addressable unit of the scene. It holds spatial
// state, a process-unique identity, a liveness flag, and the handler
// table its dispatch surface forwards to.
type Entity struct {
	Position geom.Vec3 // where the entity renders
	Anchor   geom.Vec3 // anchor fraction for positioning
	Offset   geom.Vec3 // translation applied on top of Position
	Rotation geom.Vec3
	Scale    geom.Vec3

	// Per-frame motion deltas integrated by Update.
	MoveVector  geom.Vec3
	AngleVector geom.Vec3

	id       uint64
	dead     bool
	handlers Handlers
}

var _ Node = (*Entity)(nil)

// NewEntity constructs an Entity with the given handler table, fills any
// nil slots with defaults, assigns the next identity, and invokes the
// Init handler once.
func NewEntity(h Handlers) *Entity {
	e := &Entity{}
	e.init(h)
	return e
}

// init is shared with the Container and Window constructors so the Init
// handler always observes the entity at its final address.
func (e *Entity) init(h Handlers) {
	h.complete()
	e.Anchor = geom.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
	e.Scale = geom.Vec3{X: 1, Y: 1, Z: 1}
	e.id = nextID()
	e.handlers = h
	e.handlers.Init(e)
}

// ID returns the entity's process-unique identity. Identities are
// assigned monotonically at construction and never reused.
func (e *Entity) ID() uint64 { return e.id }

// Dead reports whether Destroy has run.
func (e *Entity) Dead() bool { return e.dead }

// Handlers returns a copy of the entity's handler table.
func (e *Entity) Handlers() Handlers { return e.handlers }

// SetHandlers replaces the entity's handler table, filling nil slots with
// defaults.
func (e *Entity) SetHandlers(h Handlers) {
	h.complete()
	e.handlers = h
}

// Destroy marks the entity dead and invokes the Destroy handler. It is
// idempotent: the handler runs exactly once no matter how many times
// Destroy is called. A dead entity stays usable for dispatch; it merely
// becomes eligible for lazy removal from any container that holds it.
func (e *Entity) Destroy() {
	if e.dead {
		return
	}
	e.dead = true
	e.handlers.Destroy(e)
}

// Clone returns a new Entity with a fresh identity, copying spatial state
// and the handler table. The Init handler runs again on the clone, since
// construction always runs it.
func (e *Entity) Clone() *Entity {
	c := NewEntity(e.handlers)
	c.copySpatial(e)
	return c
}

func (e *Entity) copySpatial(from *Entity) {
	e.Position = from.Position
	e.Anchor = from.Anchor
	e.Offset = from.Offset
	e.Rotation = from.Rotation
	e.Scale = from.Scale
	e.MoveVector = from.MoveVector
	e.AngleVector = from.AngleVector
}

// Render invokes the Render handler. The handler is responsible for
// drawing at Position plus the accumulated offset.
func (e *Entity) Render(target Renderer, offset geom.Vec3) {
	e.handlers.Render(e, target, offset)
}

// Update integrates the motion vectors, then invokes the Update handler.
// elapsed is the frame time in seconds. Integration follows
// position += MoveVector * (60 / elapsed); a zero-length frame (first
// frame, paused clock) skips the integration step entirely rather than
// divide by zero.
func (e *Entity) Update(elapsed float64) Signal {
	if elapsed > 0 {
		k := 60.0 / elapsed
		e.Position = e.Position.Add(e.MoveVector.Mul(k))
		e.Rotation = e.Rotation.Add(e.AngleVector.Mul(k))
	}
	return e.handlers.Update(e, elapsed)
}

func (e *Entity) TargetReset() Signal {
	return e.handlers.TargetReset(e)
}

func (e *Entity) WindowEvent(ev WindowEvent) Signal {
	return e.handlers.WindowEvent(e, ev)
}

func (e *Entity) KeyDown(ev KeyEvent) Signal {
	return e.handlers.KeyDown(e, ev)
}

func (e *Entity) KeyUp(ev KeyEvent) Signal {
	return e.handlers.KeyUp(e, ev)
}

func (e *Entity) TextEditing(ev TextEditEvent) Signal {
	return e.handlers.TextEditing(e, ev)
}

func (e *Entity) TextInput(ev TextInputEvent) Signal {
	return e.handlers.TextInput(e, ev)
}

func (e *Entity) MouseDown(ev MouseButtonEvent) Signal {
	return e.handlers.MouseDown(e, ev)
}

func (e *Entity) MouseUp(ev MouseButtonEvent) Signal {
	return e.handlers.MouseUp(e, ev)
}

func (e *Entity) MouseMotion(ev MouseMotionEvent) Signal {
	return e.handlers.MouseMotion(e, ev)
}

func (e *Entity) MouseWheel(ev MouseWheelEvent) Signal {
	return e.handlers.MouseWheel(e, ev)
}

func (e *Entity) ClipboardUpdate(ev ClipboardEvent) Signal {
	return e.handlers.ClipboardUpdate(e, ev)
}

func (e *Entity) FileDrop(ev DropEvent) Signal {
	return e.handlers.FileDrop(e, ev)
}

func (e *Entity) TextDrop(ev DropEvent) Signal {
	return e.handlers.TextDrop(e, ev)
}

func (e *Entity) DropBegin(ev DropEvent) Signal {
	return e.handlers.DropBegin(e, ev)
}

func (e *Entity) DropComplete(ev DropEvent) Signal {
	return e.handlers.DropComplete(e, ev)
}

func (e *Entity) JoyAxis(ev JoyAxisEvent) Signal {
	return e.handlers.JoyAxis(e, ev)
}

func (e *Entity) JoyBall(ev JoyBallEvent) Signal {
	return e.handlers.JoyBall(e, ev)
}

func (e *Entity) JoyHat(ev JoyHatEvent) Signal {
	return e.handlers.JoyHat(e, ev)
}

func (e *Entity) JoyButtonDown(ev JoyButtonEvent) Signal {
	return e.handlers.JoyButtonDown(e, ev)
}

func (e *Entity) JoyButtonUp(ev JoyButtonEvent) Signal {
	return e.handlers.JoyButtonUp(e, ev)
}

func (e *Entity) ControllerAxis(ev ControllerAxisEvent) Signal {
	return e.handlers.ControllerAxis(e, ev)
}

func (e *Entity) ControllerButtonDown(ev ControllerButtonEvent) Signal {
	return e.handlers.ControllerButtonDown(e, ev)
}

func (e *Entity) ControllerButtonUp(ev ControllerButtonEvent) Signal {
	return e.handlers.ControllerButtonUp(e, ev)
}

func (e *Entity) FingerDown(ev TouchEvent) Signal {
	return e.handlers.FingerDown(e, ev)
}

func (e *Entity) FingerUp(ev TouchEvent) Signal {
	return e.handlers.FingerUp(e, ev)
}

func (e *Entity) FingerMotion(ev TouchEvent) Signal {
	return e.handlers.FingerMotion(e, ev)
}

func (e *Entity) GestureRecord(ev GestureEvent) Signal {
	return e.handlers.GestureRecord(e, ev)
}

func (e *Entity) GesturePerform(ev GestureEvent) Signal {
	return e.handlers.GesturePerform(e, ev)
}

func (e *Entity) MultiGesture(ev MultiGestureEvent) Signal {
	return e.handlers.MultiGesture(e, ev)
}

func (e *Entity) User(ev UserEvent) Signal {
	return e.handlers.User(e, ev)
}
