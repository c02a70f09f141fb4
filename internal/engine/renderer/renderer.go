// Package renderer draws editor output with OpenGL. Geometry is built on the
// CPU as screen-space triangles (see Batch) and uploaded once per frame.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/polytope4d/internal/editor"
	"github.com/Faultbox/polytope4d/internal/logger"
)

// Config holds renderer configuration. Width and Height are in screen
// coordinates; the framebuffer may be larger on high-DPI displays.
type Config struct {
	Width, Height     int
	FBWidth, FBHeight int
	Style             Style
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	program  uint32
	uScreen  int32
	vao, vbo uint32
	capacity int // VBO size in bytes

	batch Batch
}

// New creates a new renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(Background[0], Background[1], Background[2], Background[3])

	var err error
	r.program, err = compileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.uScreen, err = uniform(r.program, "uScreen")
	if err != nil {
		gl.DeleteProgram(r.program)
		return nil, err
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.Resize(cfg.Width, cfg.Height, cfg.FBWidth, cfg.FBHeight)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize. A zero framebuffer size means it matches
// the window.
func (r *Renderer) Resize(width, height, fbWidth, fbHeight int) {
	if fbWidth <= 0 || fbHeight <= 0 {
		fbWidth, fbHeight = width, height
	}
	r.config.Width, r.config.Height = width, height
	r.config.FBWidth, r.config.FBHeight = fbWidth, fbHeight
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("fb_width", fbWidth),
		zap.Int("fb_height", fbHeight),
	)
}

// Draw clears the frame and renders v.
func (r *Renderer) Draw(v editor.View) {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.batch.Reset()
	Build(&r.batch, v, r.config.Style)
	if r.batch.Len() == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.Uniform2f(r.uScreen, float32(r.config.Width), float32(r.config.Height))
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	size := len(r.batch.Vertices) * 4
	if size > r.capacity {
		r.capacity = max(size, 2*r.capacity)
		gl.BufferData(gl.ARRAY_BUFFER, r.capacity, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(r.batch.Vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(r.batch.Len()))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.FBWidth, r.config.FBHeight
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pixels[0]))
	return pixels, w, h
}
