// Package renderer draws scene models with OpenGL: spheres and cylinders as
// transformed unit shapes, face meshes as blended flat-shaded triangles.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/tesseract/internal/engine/camera"
	"github.com/Faultbox/tesseract/internal/engine/debug"
	"github.com/Faultbox/tesseract/internal/engine/lighting"
	"github.com/Faultbox/tesseract/internal/engine/model"
	"github.com/Faultbox/tesseract/internal/engine/scene"
	"github.com/Faultbox/tesseract/internal/engine/shader"
	"github.com/Faultbox/tesseract/internal/logger"
	"github.com/Faultbox/tesseract/internal/pluginapi"
	"github.com/Faultbox/tesseract/pkg/math"
)

// Tessellation of the shared unit shapes.
const (
	sphereStacks   = 16
	sphereSlices   = 24
	cylinderSlices = 16
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background [3]float32
}

// shape is an indexed VAO uploaded once.
type shape struct {
	vao, vbo, ebo uint32
	count         int32
}

// stream is a VAO whose vertex data is replaced every frame.
type stream struct {
	vao, vbo uint32
	capacity int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	sun    lighting.Sun

	program uint32
	locProj, locView, locModel int32
	locColor, locLight         int32
	locAmbient, locShading     int32

	sphere   shape
	cylinder shape
	mesh     stream
	lines    stream
}

// New creates a renderer. Must be called after the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		sun:    lighting.DefaultSun(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(cfg.Background[0], cfg.Background[1], cfg.Background[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.CompileProgram(shader.PrimitiveVertexShader, shader.PrimitiveFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.locProj = shader.MustGetUniform(r.program, "uProjection")
	r.locView = shader.MustGetUniform(r.program, "uView")
	r.locModel = shader.MustGetUniform(r.program, "uModel")
	r.locColor = shader.MustGetUniform(r.program, "uColor")
	r.locLight = shader.MustGetUniform(r.program, "uLightDir")
	r.locAmbient = shader.MustGetUniform(r.program, "uAmbient")
	r.locShading = shader.MustGetUniform(r.program, "uShading")

	sv, si := UnitSphere(sphereStacks, sphereSlices)
	r.sphere = uploadShape(sv, si)
	cv, ci := UnitCylinder(cylinderSlices)
	r.cylinder = uploadShape(cv, ci)
	r.mesh = newStream()
	r.lines = newStream()

	logger.Debug("renderer ready",
		zap.Uint32("program", r.program),
		zap.Int32("sphere_indices", r.sphere.count),
		zap.Int32("cylinder_indices", r.cylinder.count),
	)
	return r, nil
}

// Close releases GL resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, s := range []*shape{&r.sphere, &r.cylinder} {
		gl.DeleteVertexArrays(1, &s.vao)
		gl.DeleteBuffers(1, &s.vbo)
		gl.DeleteBuffers(1, &s.ebo)
	}
	for _, s := range []*stream{&r.mesh, &r.lines} {
		gl.DeleteVertexArrays(1, &s.vao)
		gl.DeleteBuffers(1, &s.vbo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Render draws every visible model of s, and its bounds when showBounds is set.
func (r *Renderer) Render(s *scene.Scene, cam *camera.OrbitCamera, showBounds bool) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float32(1)
	if r.config.Height > 0 {
		aspect = float32(r.config.Width) / float32(r.config.Height)
	}
	proj := cam.ProjectionMatrix(aspect)
	view := cam.ViewMatrix()
	light := r.sun.Direction()

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locProj, 1, false, proj.Ptr())
	gl.UniformMatrix4fv(r.locView, 1, false, view.Ptr())
	gl.Uniform3f(r.locLight, light.X, light.Y, light.Z)
	gl.Uniform1f(r.locAmbient, r.sun.Ambient)

	models := s.Models()

	// Opaque pass, then blended meshes without depth writes.
	for _, e := range models {
		r.drawPrimitives(e.Model)
	}
	gl.Enable(gl.BLEND)
	gl.DepthMask(false)
	for _, e := range models {
		r.drawMeshes(e.Model)
	}
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)

	if showBounds {
		r.drawBounds(s.Bounds())
	}

	gl.BindVertexArray(0)
}

// ReadPixels returns the RGBA contents of the back buffer.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

func (r *Renderer) setMaterial(mat *model.Material) {
	color := [3]float32{1, 1, 1}
	alpha := float32(1)
	shading := pluginapi.ShadingDiffuse
	if mat != nil {
		color = mat.DiffuseColor
		alpha = mat.Opacity()
		shading = mat.ShadingMode()
	}
	gl.Uniform4f(r.locColor, color[0], color[1], color[2], alpha)
	gl.Uniform1i(r.locShading, int32(shading))
}

func (r *Renderer) drawPrimitives(m *model.Model) {
	for _, id := range m.MaterialIDs() {
		spheres := m.Spheres(id)
		cylinders := m.Cylinders(id)
		if len(spheres) == 0 && len(cylinders) == 0 {
			continue
		}
		r.setMaterial(m.Material(id))

		gl.BindVertexArray(r.sphere.vao)
		for _, sp := range spheres {
			mat := toMathMat4(SphereTransform(sp))
			gl.UniformMatrix4fv(r.locModel, 1, false, mat.Ptr())
			gl.DrawElements(gl.TRIANGLES, r.sphere.count, gl.UNSIGNED_INT, nil)
		}

		gl.BindVertexArray(r.cylinder.vao)
		for _, c := range cylinders {
			xf, ok := CylinderTransform(c)
			if !ok {
				continue
			}
			mat := toMathMat4(xf)
			gl.UniformMatrix4fv(r.locModel, 1, false, mat.Ptr())
			gl.DrawElements(gl.TRIANGLES, r.cylinder.count, gl.UNSIGNED_INT, nil)
		}
	}
}

func (r *Renderer) drawMeshes(m *model.Model) {
	identity := math.Identity()
	gl.UniformMatrix4fv(r.locModel, 1, false, identity.Ptr())

	for _, id := range m.MaterialIDs() {
		mesh, ok := m.Mesh(id)
		if !ok || len(mesh.Indices) == 0 {
			continue
		}
		data := FlatMeshVertices(mesh)
		if len(data) == 0 {
			continue
		}
		r.setMaterial(m.Material(id))
		r.mesh.upload(data)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(data)/floatsPerVertex))
	}
}

func (r *Renderer) drawBounds(b model.Bounds) {
	lines := debug.GenerateBoundsWireframe(b, debug.DefaultBBoxPadding)
	if len(lines) == 0 {
		return
	}

	// Expand to the interleaved layout with zero normals.
	data := make([]float32, 0, len(lines)*2)
	for i := 0; i < len(lines); i += 3 {
		data = append(data, lines[i], lines[i+1], lines[i+2], 0, 0, 0)
	}

	identity := math.Identity()
	gl.UniformMatrix4fv(r.locModel, 1, false, identity.Ptr())
	gl.Uniform4f(r.locColor, 0.8, 0.8, 0.8, 1)
	gl.Uniform1i(r.locShading, int32(pluginapi.ShadingNone))
	r.lines.upload(data)
	gl.DrawArrays(gl.LINES, 0, int32(len(data)/floatsPerVertex))
}

func setupAttributes() {
	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
}

func uploadShape(vertices []float32, indices []uint32) shape {
	var s shape
	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &s.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, s.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	setupAttributes()
	gl.BindVertexArray(0)

	s.count = int32(len(indices))
	return s
}

func newStream() stream {
	var s stream
	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	setupAttributes()
	gl.BindVertexArray(0)
	return s
}

// upload binds the stream and replaces its contents, growing the buffer when needed.
func (s *stream) upload(data []float32) {
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	size := len(data) * 4
	if size > s.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(data), gl.DYNAMIC_DRAW)
		s.capacity = size
		return
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(data))
}
