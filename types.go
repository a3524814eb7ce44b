package engine

// Signal is the result of a dispatch call. Continue keeps the current
// traversal (and, at the top level, the window's thread loop) running;
// Stop short-circuits the traversal and terminates the loop.
type Signal int

const (
	Continue Signal = iota
	Stop
)

// String returns "continue" or "stop".
func (s Signal) String() string {
	if s == Stop {
		return "stop"
	}
	return "continue"
}

// WindowID identifies a native window on the platform event queue.
// Zero addresses no window in particular; events carrying it are
// broadcast to every live window.
type WindowID uint32

// WindowFlags select platform window creation behavior.
type WindowFlags uint32

const (
	WindowFullscreen WindowFlags = 1 << iota
	WindowResizable
	WindowBorderless
	WindowHidden
	// WindowAccelerated3D requests a hardware 3D context. The context is
	// created after the window and renderer and destroyed before them.
	WindowAccelerated3D
)

// RendererFlags select platform renderer creation behavior.
type RendererFlags uint32

const (
	RendererVSync RendererFlags = 1 << iota
	RendererSoftware
)

// WindowConfig is the construction-time configuration for one window.
// Immutable after construction except through explicit Window setters.
type WindowConfig struct {
	Title string `toml:"title"`
	X     int    `toml:"x"`
	Y     int    `toml:"y"`
	W     int    `toml:"w"`
	H     int    `toml:"h"`

	Flags         WindowFlags   `toml:"flags"`
	RendererFlags RendererFlags `toml:"renderer_flags"`

	// FrameRate is the target update rate for the window's thread.
	// Zero means uncapped: the driver signals the window on every
	// polling pass.
	FrameRate float64 `toml:"frame_rate"`
}

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// DrawOptions carry the transform parameters for drawing an image.
type DrawOptions struct {
	AnchorX  float64 // anchor fraction, 0 = left, 1 = right
	AnchorY  float64 // anchor fraction, 0 = top, 1 = bottom
	Rotation float64 // degrees, clockwise
	ScaleX   float64
	ScaleY   float64
	FlipH    bool
	FlipV    bool
}
