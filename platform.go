package engine

import (
	"image"

	"github.com/stageloop/engine/geom"
)

// Platform abstracts the windowing system the runtime drives: creating
// native windows with bound renderers and polling the shared event
// queue. Exactly one goroutine, the driver's, may call Poll; Open is
// likewise confined to the driver goroutine because most windowing
// systems demand window creation on the main thread.
type Platform interface {
	// Open creates a native window and its renderer per cfg. On
	// failure every partially constructed resource has already been
	// released. The returned window's GL context (if any) is left
	// detached so the owning window thread can claim it.
	Open(cfg WindowConfig) (NativeWindow, Renderer, error)

	// Poll drains the platform event queue, returning the pending
	// events in arrival order. It never blocks.
	Poll() []Event
}

// NativeWindow is the runtime's handle on one platform window.
// All methods except ID and MakeCurrent must be called from the
// driver goroutine or the window's own thread, never concurrently.
type NativeWindow interface {
	ID() WindowID

	Title() string
	SetTitle(title string)

	Position() (x, y int)
	SetPosition(x, y int)

	Size() (w, h int)
	Resize(w, h int)

	SetFullscreen(fullscreen bool) error

	Opacity() float64
	SetOpacity(opacity float64) error

	// MakeCurrent binds the window's rendering context to the calling
	// OS thread. The window thread calls this once before its first
	// frame.
	MakeCurrent() error

	// DetachCurrent unbinds the calling thread's rendering context.
	// The window thread calls this after its last frame; the context
	// must not be current anywhere when the window is destroyed.
	DetachCurrent()

	// Destroy releases the native window. Safe to call once; the
	// renderer bound to the window must be released first.
	Destroy()
}

// Renderer is the drawing surface bound to one native window. It is
// confined to the window's thread after MakeCurrent.
type Renderer interface {
	// Clear fills the target with the given color.
	Clear(c Color)

	// Present commits the frame to the screen.
	Present()

	// DrawLines strokes the open polyline through pts.
	DrawLines(pts []geom.Vec2, c Color, width float64)

	// NewImage uploads src as a drawable texture.
	NewImage(src image.Image) (Image, error)

	// DrawImage draws img with its anchor at (x, y), transformed per
	// opts. Zero-valued scale components are treated as 1.
	DrawImage(img Image, x, y float64, opts DrawOptions) error

	// Release frees renderer resources. Called from the window thread
	// before the native window is destroyed.
	Release()
}

// Image is a texture owned by a Renderer.
type Image interface {
	// Size returns the pixel dimensions.
	Size() (w, h int)

	// Release frees the texture.
	Release()
}
