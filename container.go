package engine

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/stageloop/engine/geom"
)

// ErrDuplicateChild is returned by Container.Add when a node with the
// same identity is already a child. Re-inserting would leave one node
// addressable through two unrelated identities, so it is rejected
// outright.
var ErrDuplicateChild = errors.New("engine: child with this identity is already present")

// Container is an Entity owning a keyed collection of child nodes.
// Children are addressable by identity and by string alias; every
// dispatch re-broadcasts to all children before the container's own
// handler runs, and the first child to signal Stop short-circuits the
// traversal.
//
// A container is not safe for concurrent use; it is confined to the
// thread of the window that owns it.
type Container struct {
	Entity

	children map[uint64]Node
	aliases  map[string]uint64 // every value is a key in children
}

var _ Node = (*Container)(nil)

// NewContainer constructs an empty Container with the given handler
// table. Any extra nodes are added with generated aliases.
func NewContainer(h Handlers, nodes ...Node) *Container {
	c := &Container{}
	c.initContainer(h)
	for _, n := range nodes {
		if n == nil {
			continue
		}
		// duplicates among the initial nodes are a programmer error and
		// silently skipped, matching Add's no-throw policy for lookups
		_, _ = c.Add(n, "")
	}
	return c
}

func (c *Container) initContainer(h Handlers) {
	c.children = make(map[uint64]Node)
	c.aliases = make(map[string]uint64)
	c.Entity.init(h)
}

// Len returns the number of children, counting dead ones not yet pruned.
func (c *Container) Len() int {
	return len(c.children)
}

// trailingDigits matches the final run of digits in an alias.
var trailingDigits = regexp.MustCompile(`[0-9]+$`)

// Add inserts a child keyed by its identity and binds an alias to it.
// An empty proposed alias becomes "object<identity>". If the proposed
// alias is taken, a trailing number is appended or incremented until the
// alias is unique ("obj", "obj0", "obj1", ...). The alias actually bound
// is returned so callers can address the child later.
//
// Adding a node whose identity is already present returns
// ErrDuplicateChild.
func (c *Container) Add(child Node, alias string) (string, error) {
	if child == nil {
		return "", errors.New("engine: cannot add nil node")
	}
	if _, ok := c.children[child.ID()]; ok {
		return "", ErrDuplicateChild
	}
	if alias == "" {
		alias = fmt.Sprintf("object%d", child.ID())
	}
	for {
		if _, taken := c.aliases[alias]; !taken {
			break
		}
		digits := trailingDigits.FindString(alias)
		if digits == "" {
			alias += "0"
			continue
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			// digit run too long to parse; start a fresh counter
			alias += "0"
			continue
		}
		alias = strings.TrimSuffix(alias, digits) + strconv.Itoa(n+1)
	}
	c.children[child.ID()] = child
	c.aliases[alias] = child.ID()
	return alias, nil
}

// Child returns the child with the given identity, or nil.
func (c *Container) Child(id uint64) Node {
	return c.children[id]
}

// Lookup resolves an alias to its child, or nil.
func (c *Container) Lookup(alias string) Node {
	id, ok := c.aliases[alias]
	if !ok {
		return nil
	}
	return c.children[id]
}

// Aliases returns the aliases currently bound to the given identity. An
// identity accumulates aliases through repeated Add collisions.
func (c *Container) Aliases(id uint64) []string {
	var out []string
	for name, aid := range c.aliases {
		if aid == id {
			out = append(out, name)
		}
	}
	return out
}

// Remove removes the child with the given identity along with every
// alias bound to it. Unknown identities are a no-op.
func (c *Container) Remove(id uint64) {
	c.removeChild(id)
}

// RemoveAlias removes the child the alias resolves to, along with every
// other alias bound to the same identity. Unknown aliases are a no-op.
func (c *Container) RemoveAlias(alias string) {
	if id, ok := c.aliases[alias]; ok {
		c.removeChild(id)
	}
}

// RemoveNode removes the given child by identity. Nodes not present are
// a no-op.
func (c *Container) RemoveNode(n Node) {
	if n == nil {
		return
	}
	if _, ok := c.children[n.ID()]; ok {
		c.removeChild(n.ID())
	}
}

// removeChild drops the child and purges all aliases mapping to it,
// preserving the invariant that every alias resolves to a live key.
func (c *Container) removeChild(id uint64) {
	delete(c.children, id)
	for name, aid := range c.aliases {
		if aid == id {
			delete(c.aliases, name)
		}
	}
}

// Clone returns a new Container with a fresh identity that shares this
// container's children and alias bindings. The Init handler runs again
// on the clone.
func (c *Container) Clone() *Container {
	out := NewContainer(c.handlers)
	out.copySpatial(&c.Entity)
	for id, child := range c.children {
		out.children[id] = child
	}
	for name, id := range c.aliases {
		out.aliases[name] = id
	}
	return out
}

// Destroy clears both child maps, then runs the base entity destroy.
// Idempotent. Children are released, not destroyed: other holders of a
// child keep a valid node.
func (c *Container) Destroy() {
	if c.dead {
		return
	}
	c.children = make(map[uint64]Node)
	c.aliases = make(map[string]uint64)
	c.Entity.Destroy()
}

// broadcast drives one dispatch pass: children first (dead ones lazily
// pruned, first Stop wins), then the container's own handler via self.
// Deleting map entries mid-range is well-defined in Go, so pruning during
// the traversal is safe.
func (c *Container) broadcast(each func(Node) Signal, self func() Signal) Signal {
	for id, child := range c.children {
		if child.Dead() {
			c.removeChild(id)
			continue
		}
		if each(child) == Stop {
			return Stop
		}
	}
	return self()
}

// Render draws all live children with this container's position added to
// the incoming offset, pruning dead children, then renders the container
// itself. Offsets compose additively down the tree.
func (c *Container) Render(target Renderer, offset geom.Vec3) {
	childOffset := offset.Add(c.Position)
	for id, child := range c.children {
		if child.Dead() {
			c.removeChild(id)
			continue
		}
		child.Render(target, childOffset)
	}
	c.Entity.Render(target, offset)
}

func (c *Container) Update(elapsed float64) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.Update(elapsed) },
		func() Signal { return c.Entity.Update(elapsed) },
	)
}

func (c *Container) TargetReset() Signal {
	return c.broadcast(
		func(n Node) Signal { return n.TargetReset() },
		func() Signal { return c.Entity.TargetReset() },
	)
}

func (c *Container) WindowEvent(ev WindowEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.WindowEvent(ev) },
		func() Signal { return c.Entity.WindowEvent(ev) },
	)
}

func (c *Container) KeyDown(ev KeyEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.KeyDown(ev) },
		func() Signal { return c.Entity.KeyDown(ev) },
	)
}

func (c *Container) KeyUp(ev KeyEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.KeyUp(ev) },
		func() Signal { return c.Entity.KeyUp(ev) },
	)
}

func (c *Container) TextEditing(ev TextEditEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.TextEditing(ev) },
		func() Signal { return c.Entity.TextEditing(ev) },
	)
}

func (c *Container) TextInput(ev TextInputEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.TextInput(ev) },
		func() Signal { return c.Entity.TextInput(ev) },
	)
}

func (c *Container) MouseDown(ev MouseButtonEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.MouseDown(ev) },
		func() Signal { return c.Entity.MouseDown(ev) },
	)
}

func (c *Container) MouseUp(ev MouseButtonEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.MouseUp(ev) },
		func() Signal { return c.Entity.MouseUp(ev) },
	)
}

func (c *Container) MouseMotion(ev MouseMotionEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.MouseMotion(ev) },
		func() Signal { return c.Entity.MouseMotion(ev) },
	)
}

func (c *Container) MouseWheel(ev MouseWheelEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.MouseWheel(ev) },
		func() Signal { return c.Entity.MouseWheel(ev) },
	)
}

func (c *Container) ClipboardUpdate(ev ClipboardEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.ClipboardUpdate(ev) },
		func() Signal { return c.Entity.ClipboardUpdate(ev) },
	)
}

func (c *Container) FileDrop(ev DropEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.FileDrop(ev) },
		func() Signal { return c.Entity.FileDrop(ev) },
	)
}

func (c *Container) TextDrop(ev DropEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.TextDrop(ev) },
		func() Signal { return c.Entity.TextDrop(ev) },
	)
}

func (c *Container) DropBegin(ev DropEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.DropBegin(ev) },
		func() Signal { return c.Entity.DropBegin(ev) },
	)
}

func (c *Container) DropComplete(ev DropEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.DropComplete(ev) },
		func() Signal { return c.Entity.DropComplete(ev) },
	)
}

func (c *Container) JoyAxis(ev JoyAxisEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.JoyAxis(ev) },
		func() Signal { return c.Entity.JoyAxis(ev) },
	)
}

func (c *Container) JoyBall(ev JoyBallEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.JoyBall(ev) },
		func() Signal { return c.Entity.JoyBall(ev) },
	)
}

func (c *Container) JoyHat(ev JoyHatEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.JoyHat(ev) },
		func() Signal { return c.Entity.JoyHat(ev) },
	)
}

func (c *Container) JoyButtonDown(ev JoyButtonEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.JoyButtonDown(ev) },
		func() Signal { return c.Entity.JoyButtonDown(ev) },
	)
}

func (c *Container) JoyButtonUp(ev JoyButtonEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.JoyButtonUp(ev) },
		func() Signal { return c.Entity.JoyButtonUp(ev) },
	)
}

func (c *Container) ControllerAxis(ev ControllerAxisEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.ControllerAxis(ev) },
		func() Signal { return c.Entity.ControllerAxis(ev) },
	)
}

func (c *Container) ControllerButtonDown(ev ControllerButtonEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.ControllerButtonDown(ev) },
		func() Signal { return c.Entity.ControllerButtonDown(ev) },
	)
}

func (c *Container) ControllerButtonUp(ev ControllerButtonEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.ControllerButtonUp(ev) },
		func() Signal { return c.Entity.ControllerButtonUp(ev) },
	)
}

func (c *Container) FingerDown(ev TouchEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.FingerDown(ev) },
		func() Signal { return c.Entity.FingerDown(ev) },
	)
}

func (c *Container) FingerUp(ev TouchEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.FingerUp(ev) },
		func() Signal { return c.Entity.FingerUp(ev) },
	)
}

func (c *Container) FingerMotion(ev TouchEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.FingerMotion(ev) },
		func() Signal { return c.Entity.FingerMotion(ev) },
	)
}

func (c *Container) GestureRecord(ev GestureEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.GestureRecord(ev) },
		func() Signal { return c.Entity.GestureRecord(ev) },
	)
}

func (c *Container) GesturePerform(ev GestureEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.GesturePerform(ev) },
		func() Signal { return c.Entity.GesturePerform(ev) },
	)
}

func (c *Container) MultiGesture(ev MultiGestureEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.MultiGesture(ev) },
		func() Signal { return c.Entity.MultiGesture(ev) },
	)
}

func (c *Container) User(ev UserEvent) Signal {
	return c.broadcast(
		func(n Node) Signal { return n.User(ev) },
		func() Signal { return c.Entity.User(ev) },
	)
}
