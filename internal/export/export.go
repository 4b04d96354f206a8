// Package export writes scene geometry as a stream of YAML documents, one per
// animation frame.
package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/tesseract/internal/engine/model"
	"github.com/Faultbox/tesseract/internal/engine/scene"
	"github.com/Faultbox/tesseract/internal/pluginapi"
)

// Frame is one exported document.
type Frame struct {
	Frame  int     `yaml:"frame"`
	Phase  float32 `yaml:"phase"`
	Unit   string  `yaml:"unit,omitempty"`
	Models []Model `yaml:"models"`
}

// Model is the exported geometry of one scene model.
type Model struct {
	Name      string     `yaml:"name"`
	Materials []Material `yaml:"materials"`
}

// Material groups the primitives drawn with one material.
type Material struct {
	ID              pluginapi.MaterialID    `yaml:"id"`
	Name            string                  `yaml:"name"`
	DiffuseColor    [3]float32              `yaml:"diffuse_color,flow"`
	ReflectionIndex float32                 `yaml:"reflection_index"`
	Spheres         []pluginapi.Sphere      `yaml:"spheres,omitempty"`
	Cylinders       []pluginapi.Cylinder    `yaml:"cylinders,omitempty"`
	Mesh            *pluginapi.TriangleMesh `yaml:"mesh,omitempty"`
}

// Snapshot copies the visible models of s at frame.
func Snapshot(s *scene.Scene, frame int, unit string) Frame {
	f := Frame{Frame: frame, Unit: unit}
	for _, e := range s.Models() {
		f.Models = append(f.Models, snapshotModel(e.Name, e.Model))
	}
	return f
}

func snapshotModel(name string, m *model.Model) Model {
	out := Model{Name: name}
	for _, id := range m.MaterialIDs() {
		mat := m.Material(id)
		em := Material{
			ID:              id,
			Name:            mat.Name,
			DiffuseColor:    mat.DiffuseColor,
			ReflectionIndex: mat.ReflectionIndex,
			Spheres:         append([]pluginapi.Sphere(nil), m.Spheres(id)...),
			Cylinders:       append([]pluginapi.Cylinder(nil), m.Cylinders(id)...),
		}
		if mesh, ok := m.Mesh(id); ok && len(mesh.Vertices) > 0 {
			em.Mesh = &pluginapi.TriangleMesh{
				Vertices: append(mesh.Vertices[:0:0], mesh.Vertices...),
				Indices:  append(mesh.Indices[:0:0], mesh.Indices...),
			}
		}
		out.Materials = append(out.Materials, em)
	}
	return out
}

// Writer encodes frames to an underlying stream.
type Writer struct {
	enc    *yaml.Encoder
	frames int
}

// NewWriter creates a Writer on w.
func NewWriter(w io.Writer) *Writer {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &Writer{enc: enc}
}

// Write appends f as a new YAML document.
func (w *Writer) Write(f Frame) error {
	if err := w.enc.Encode(f); err != nil {
		return fmt.Errorf("encode frame %d: %w", f.Frame, err)
	}
	w.frames++
	return nil
}

// Frames returns how many frames were written.
func (w *Writer) Frames() int {
	return w.frames
}

// Close flushes the encoder. It does not close the underlying writer.
func (w *Writer) Close() error {
	return w.enc.Close()
}

// Decode reads every frame document from r.
func Decode(r io.Reader) ([]Frame, error) {
	dec := yaml.NewDecoder(r)
	var frames []Frame
	for {
		var f Frame
		err := dec.Decode(&f)
		if err == io.EOF {
			return frames, nil
		}
		if err != nil {
			return frames, fmt.Errorf("decode frame %d: %w", len(frames), err)
		}
		frames = append(frames, f)
	}
}
