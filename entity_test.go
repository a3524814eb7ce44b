package engine

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stageloop/engine/geom"
)

func TestEntityIdentityMonotonic(t *testing.T) {
	prev := SetIdentitySource(NewSequence())
	defer SetIdentitySource(prev)

	a := NewEntity(Handlers{})
	b := NewEntity(Handlers{})
	c := NewEntity(Handlers{})

	assert.Equal(t, a.ID()+1, b.ID())
	assert.Equal(t, b.ID()+1, c.ID())
}

func TestEntityCloneGetsFreshIdentity(t *testing.T) {
	inits := 0
	e := NewEntity(Handlers{
		Init: func(*Entity) { inits++ },
	})
	e.Position = geom.Vec3{X: 3, Y: 4}
	e.MoveVector = geom.Vec3{X: 1}

	clone := e.Clone()

	assert.NotEqual(t, e.ID(), clone.ID())
	assert.Equal(t, e.Position, clone.Position)
	assert.Equal(t, e.MoveVector, clone.MoveVector)
	assert.Equal(t, 2, inits, "Init runs for the original and again for the clone")
}

func TestEntityInitSeesFinalAddress(t *testing.T) {
	var got *Entity
	e := NewEntity(Handlers{
		Init: func(self *Entity) { got = self },
	})
	assert.Same(t, e, got)
}

func TestEntityDestroyIdempotent(t *testing.T) {
	destroys := 0
	e := NewEntity(Handlers{
		Destroy: func(*Entity) { destroys++ },
	})

	assert.False(t, e.Dead())
	e.Destroy()
	e.Destroy()
	e.Destroy()

	assert.True(t, e.Dead())
	assert.Equal(t, 1, destroys)
}

func TestEntityDispatchAfterDestroy(t *testing.T) {
	updates := 0
	e := NewEntity(Handlers{
		Update: func(*Entity, float64) Signal { updates++; return Continue },
	})
	e.Destroy()

	// dead entities still dispatch; removal is the container's job
	assert.Equal(t, Continue, e.Update(16))
	assert.Equal(t, 1, updates)
}

func TestEntityUpdateIntegratesMotion(t *testing.T) {
	e := NewEntity(Handlers{})
	e.Position = geom.Vec3{X: 10, Y: 20, Z: 30}
	e.MoveVector = geom.Vec3{X: 1, Y: 2, Z: 3}
	e.AngleVector = geom.Vec3{Z: 4}

	e.Update(120) // 60/120 = 0.5

	assert.InDelta(t, 10.5, e.Position.X, 1e-9)
	assert.InDelta(t, 21.0, e.Position.Y, 1e-9)
	assert.InDelta(t, 31.5, e.Position.Z, 1e-9)
	assert.InDelta(t, 2.0, e.Rotation.Z, 1e-9)
}

func TestEntityUpdateSkipsIntegrationOnZeroElapsed(t *testing.T) {
	var seen []float64
	e := NewEntity(Handlers{
		Update: func(_ *Entity, elapsed float64) Signal {
			seen = append(seen, elapsed)
			return Continue
		},
	})
	e.Position = geom.Vec3{X: 1}
	e.MoveVector = geom.Vec3{X: 100}

	e.Update(0)
	e.Update(-5)

	assert.Equal(t, geom.Vec3{X: 1}, e.Position)
	assert.Equal(t, []float64{0, -5}, seen, "handler still runs with the raw elapsed")
}

func TestSetHandlersFillsNilSlots(t *testing.T) {
	e := NewEntity(Handlers{})
	e.SetHandlers(Handlers{
		Update: func(*Entity, float64) Signal { return Stop },
	})

	assert.Equal(t, Stop, e.Update(1))
	// every other slot still answers
	assert.Equal(t, Continue, e.KeyDown(KeyEvent{}))
	assert.Equal(t, Continue, e.User(UserEvent{}))
}

func TestDefaultHandlersTableIsTotal(t *testing.T) {
	h := DefaultHandlers()
	v := reflect.ValueOf(h)
	for i := 0; i < v.NumField(); i++ {
		require.False(t, v.Field(i).IsNil(),
			"slot %s is nil", v.Type().Field(i).Name)
	}
}

func TestEntityHandlerRoundTrip(t *testing.T) {
	// every per-kind dispatch reaches exactly its own slot
	hits := make(map[string]int)
	mark := func(name string) func(*Entity) Signal {
		return func(*Entity) Signal { hits[name]++; return Continue }
	}

	h := Handlers{
		TargetReset:     mark("TargetReset"),
		WindowEvent:     func(e *Entity, _ WindowEvent) Signal { return mark("WindowEvent")(e) },
		KeyDown:         func(e *Entity, _ KeyEvent) Signal { return mark("KeyDown")(e) },
		KeyUp:           func(e *Entity, _ KeyEvent) Signal { return mark("KeyUp")(e) },
		MouseDown:       func(e *Entity, _ MouseButtonEvent) Signal { return mark("MouseDown")(e) },
		MouseMotion:     func(e *Entity, _ MouseMotionEvent) Signal { return mark("MouseMotion")(e) },
		ClipboardUpdate: func(e *Entity, _ ClipboardEvent) Signal { return mark("ClipboardUpdate")(e) },
		FileDrop:        func(e *Entity, _ DropEvent) Signal { return mark("FileDrop")(e) },
		JoyAxis:         func(e *Entity, _ JoyAxisEvent) Signal { return mark("JoyAxis")(e) },
		ControllerAxis:  func(e *Entity, _ ControllerAxisEvent) Signal { return mark("ControllerAxis")(e) },
		FingerDown:      func(e *Entity, _ TouchEvent) Signal { return mark("FingerDown")(e) },
		MultiGesture:    func(e *Entity, _ MultiGestureEvent) Signal { return mark("MultiGesture")(e) },
		User:            func(e *Entity, _ UserEvent) Signal { return mark("User")(e) },
	}
	e := NewEntity(h)

	e.TargetReset()
	e.WindowEvent(WindowEvent{})
	e.KeyDown(KeyEvent{})
	e.KeyUp(KeyEvent{})
	e.MouseDown(MouseButtonEvent{})
	e.MouseMotion(MouseMotionEvent{})
	e.ClipboardUpdate(ClipboardEvent{})
	e.FileDrop(DropEvent{})
	e.JoyAxis(JoyAxisEvent{})
	e.ControllerAxis(ControllerAxisEvent{})
	e.FingerDown(TouchEvent{})
	e.MultiGesture(MultiGestureEvent{})
	e.User(UserEvent{})

	for name, n := range hits {
		assert.Equal(t, 1, n, "handler %s", name)
	}
	assert.Len(t, hits, 13)
}

func TestEntityDefaults(t *testing.T) {
	e := NewEntity(Handlers{})
	assert.Equal(t, geom.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, e.Anchor)
	assert.Equal(t, geom.Vec3{X: 1, Y: 1, Z: 1}, e.Scale)
}
