// Package scene provides the in-memory scene: the container that owns every
// model plugins create and hand back for drawing.
package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/tesseract/internal/engine/model"
	"github.com/Faultbox/tesseract/internal/logger"
	"github.com/Faultbox/tesseract/internal/pluginapi"
)

// Entry is a model added to the scene.
type Entry struct {
	Name  string
	Model *model.Model
}

// Scene owns models created through it.
type Scene struct {
	created map[*model.Model]bool
	entries []Entry
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		created: make(map[*model.Model]bool),
	}
}

// CreateModel creates a model owned by this scene. It is not drawn until
// passed to AddModel.
func (s *Scene) CreateModel() (pluginapi.Model, error) {
	m := model.New()
	s.created[m] = true
	return m, nil
}

// AddModel makes a model created by this scene visible.
func (s *Scene) AddModel(desc pluginapi.ModelDescriptor) error {
	m, ok := desc.Model.(*model.Model)
	if !ok || m == nil || !s.created[m] {
		return fmt.Errorf("add model %q: %w", desc.Name, pluginapi.ErrNoModel)
	}
	for _, e := range s.entries {
		if e.Model == m {
			return fmt.Errorf("add model %q: already added as %q", desc.Name, e.Name)
		}
	}
	s.entries = append(s.entries, Entry{Name: desc.Name, Model: m})
	logger.Debug("model added to scene", zap.String("name", desc.Name), zap.Int("models", len(s.entries)))
	return nil
}

// Models returns the visible models in insertion order.
func (s *Scene) Models() []Entry {
	return s.entries
}

// Bounds returns the box enclosing every visible model.
func (s *Scene) Bounds() model.Bounds {
	var b model.Bounds
	first := true
	for _, e := range s.entries {
		mb := e.Model.Bounds()
		if first {
			b = mb
			first = false
			continue
		}
		b = b.Union(mb)
	}
	return b
}
