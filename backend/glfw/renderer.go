package glfw

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"sync/atomic"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	glfw3 "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/stageloop/engine"
	"github.com/stageloop/engine/geom"
)

// vertex is the interleaved layout uploaded to the VBO.
type vertex struct {
	X, Y       float32
	U, V       float32
	R, G, B, A float32
}

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D tex;
uniform bool useTexture;

void main() {
    if (useTexture) {
        FragColor = texture(tex, TexCoord) * Color;
    } else {
        FragColor = Color;
    }
}
` + "\x00"

// renderer draws into one window's OpenGL 4.1 context. All methods
// except resize run on the window's thread with the context current.
type renderer struct {
	win *glfw3.Window

	shader    uint32
	vao, vbo  uint32
	projLoc   int32
	texLoc    int32
	useTexLoc int32

	// framebuffer size, updated by the platform's size callback from
	// the polling thread
	width, height atomic.Int32
}

var _ engine.Renderer = (*renderer)(nil)

// newRenderer builds the shader and vertex pipeline. The window's
// context must be current.
func newRenderer(win *glfw3.Window, width, height int) (*renderer, error) {
	r := &renderer{win: win}
	r.width.Store(int32(width))
	r.height.Store(int32(height))

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("tex\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(unsafe.Sizeof(vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(vertex{}.U))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, unsafe.Offsetof(vertex{}.R))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *renderer) resize(width, height int) {
	r.width.Store(int32(width))
	r.height.Store(int32(height))
}

func (r *renderer) Clear(c engine.Color) {
	w, h := r.width.Load(), r.height.Load()
	gl.Viewport(0, 0, w, h)
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *renderer) Present() {
	r.win.SwapBuffers()
}

// DrawLines strokes the polyline by expanding each segment into a quad
// of the given width.
func (r *renderer) DrawLines(pts []geom.Vec2, c engine.Color, width float64) {
	if len(pts) < 2 {
		return
	}
	if width <= 0 {
		width = 1
	}
	half := width / 2

	verts := make([]vertex, 0, (len(pts)-1)*6)
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		d := b.Sub(a)
		l := d.Length()
		if l == 0 {
			continue
		}
		// unit normal to the segment
		nx, ny := -d.Y/l*half, d.X/l*half

		v := func(x, y float64) vertex {
			return vertex{
				X: float32(x), Y: float32(y),
				R: float32(c.R) / 255, G: float32(c.G) / 255,
				B: float32(c.B) / 255, A: float32(c.A) / 255,
			}
		}
		p0 := v(a.X+nx, a.Y+ny)
		p1 := v(b.X+nx, b.Y+ny)
		p2 := v(b.X-nx, b.Y-ny)
		p3 := v(a.X-nx, a.Y-ny)
		verts = append(verts, p0, p1, p2, p0, p2, p3)
	}
	r.draw(verts, 0)
}

// texture is an uploaded RGBA image.
type texture struct {
	id   uint32
	w, h int
}

var _ engine.Image = (*texture)(nil)

func (t *texture) Size() (int, int) { return t.w, t.h }

func (t *texture) Release() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

func (r *renderer) NewImage(src image.Image) (engine.Image, error) {
	if src == nil {
		return nil, fmt.Errorf("nil source image")
	}
	bounds := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &texture{id: id, w: bounds.Dx(), h: bounds.Dy()}, nil
}

// DrawImage draws img with its anchor at (x, y), applying scale,
// rotation about the anchor, and flips.
func (r *renderer) DrawImage(img engine.Image, x, y float64, opts engine.DrawOptions) error {
	tex, ok := img.(*texture)
	if !ok {
		return fmt.Errorf("image %T was not created by this renderer", img)
	}
	if tex.id == 0 {
		return fmt.Errorf("image already released")
	}

	sx, sy := opts.ScaleX, opts.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	w := float64(tex.w) * sx
	h := float64(tex.h) * sy

	// corner offsets relative to the anchor point
	x0, y0 := -opts.AnchorX*w, -opts.AnchorY*h
	x1, y1 := x0+w, y0+h

	u0, v0, u1, v1 := 0.0, 0.0, 1.0, 1.0
	if opts.FlipH {
		u0, u1 = u1, u0
	}
	if opts.FlipV {
		v0, v1 = v1, v0
	}

	rad := opts.Rotation * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	rot := func(cx, cy float64) (float64, float64) {
		return x + cx*cos - cy*sin, y + cx*sin + cy*cos
	}

	v := func(cx, cy, u, vv float64) vertex {
		px, py := rot(cx, cy)
		return vertex{
			X: float32(px), Y: float32(py),
			U: float32(u), V: float32(vv),
			R: 1, G: 1, B: 1, A: 1,
		}
	}
	p0 := v(x0, y0, u0, v0)
	p1 := v(x1, y0, u1, v0)
	p2 := v(x1, y1, u1, v1)
	p3 := v(x0, y1, u0, v1)

	r.draw([]vertex{p0, p1, p2, p0, p2, p3}, tex.id)
	return nil
}

// draw uploads verts and issues one triangle draw with the standard
// alpha-blended 2D state.
func (r *renderer) draw(verts []vertex, tex uint32) {
	if len(verts) == 0 {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)

	gl.UseProgram(r.shader)

	proj := orthoMatrix(0, float32(r.width.Load()), float32(r.height.Load()), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)
	if tex != 0 {
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.Uniform1i(r.useTexLoc, 1)
	} else {
		gl.Uniform1i(r.useTexLoc, 0)
	}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*int(unsafe.Sizeof(vertex{})),
		gl.Ptr(verts), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)))
	gl.BindVertexArray(0)
}

func (r *renderer) Release() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
		r.shader = 0
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	compile := func(kind uint32, source string) (uint32, error) {
		shader := gl.CreateShader(kind)
		csource, free := gl.Strs(source)
		gl.ShaderSource(shader, 1, csource, nil)
		free()
		gl.CompileShader(shader)

		var status int32
		gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
		if status == gl.FALSE {
			var logLength int32
			gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
			log := make([]byte, logLength+1)
			gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
			return 0, fmt.Errorf("shader compilation failed: %s", string(log))
		}
		return shader, nil
	}

	vs, err := compile(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, err
	}
	fs, err := compile(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	gl.DeleteShader(vs)
	gl.DeleteShader(fs)
	return program, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
