// Package hypercube is the plugin that animates the tesseract: it creates the
// model and materials once, then rebuilds the geometry whenever the host
// animation clock moves to a new phase.
package hypercube

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/tesseract/internal/logger"
	"github.com/Faultbox/tesseract/internal/pluginapi"
	"github.com/Faultbox/tesseract/internal/tesseract"
)

// Name is the registry name of the plugin.
const Name = "hypercube"

// ModelName is the name the model is added to the scene under.
const ModelName = "Tesseract"

// Clock bounds configured on Init.
const (
	ClockEnd  = tesseract.FramesPerLoop
	ClockDt   = 1
	ClockUnit = "degrees"
)

type materialDef struct {
	id              pluginapi.MaterialID
	color           [3]float32
	reflectionIndex float32
}

var materials = []materialDef{
	{tesseract.VertexMaterial, [3]float32{1, 0, 0}, 0},
	{tesseract.EdgeMaterial, [3]float32{1, 1, 0}, 0},
	{tesseract.FaceMaterial, [3]float32{0, 0, 1}, 0.5},
}

// BuildFunc produces the geometry for a phase.
type BuildFunc func(phase float32) tesseract.Geometry

// Option configures a Plugin.
type Option func(*Plugin)

// WithBuilder replaces the geometry builder.
func WithBuilder(fn BuildFunc) Option {
	return func(p *Plugin) {
		p.build = fn
	}
}

// Plugin animates the tesseract model.
type Plugin struct {
	api   pluginapi.API
	build BuildFunc

	// model is owned by the scene; the plugin only draws into it.
	model pluginapi.Model
	phase float32
}

// New creates the plugin. Nothing touches the host until Init.
func New(api pluginapi.API, opts ...Option) *Plugin {
	p := &Plugin{
		api:   api,
		build: tesseract.Build,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Init creates the materials and model, draws phase 0, configures the clock
// and hands the model to the scene.
func (p *Plugin) Init() error {
	scene := p.api.Scene()
	model, err := scene.CreateModel()
	if err != nil {
		return fmt.Errorf("hypercube init: %w", err)
	}
	if model == nil {
		return fmt.Errorf("hypercube init: %w", pluginapi.ErrModelCreate)
	}

	for _, def := range materials {
		if err := addMaterial(model, def); err != nil {
			return fmt.Errorf("hypercube init: %w", err)
		}
	}

	p.model = model
	if err := p.rebuild(0); err != nil {
		return fmt.Errorf("hypercube init: %w", err)
	}

	if err := scene.AddModel(pluginapi.ModelDescriptor{Name: ModelName, Model: model}); err != nil {
		return fmt.Errorf("hypercube init: %w", err)
	}

	clock := p.api.AnimationParameters()
	clock.SetEnd(ClockEnd)
	clock.SetDt(ClockDt)
	clock.SetUnit(ClockUnit)

	logger.Info("hypercube plugin initialized", zap.String("model", ModelName))
	return nil
}

// PreRender rebuilds the geometry when the clock has moved to a new phase.
func (p *Plugin) PreRender() error {
	frame := p.api.AnimationParameters().Frame()
	phase := tesseract.PhaseForFrame(frame)
	if p.model == nil {
		return p.rebuild(phase)
	}
	if phase == p.phase {
		return nil
	}

	if err := p.rebuild(phase); err != nil {
		return err
	}
	logger.Debug("tesseract rebuilt", zap.Int("frame", frame), zap.Float32("phase", phase))
	return nil
}

// Phase returns the phase the current geometry was built for.
func (p *Plugin) Phase() float32 {
	return p.phase
}

// Model returns the model the plugin draws into, or nil before Init.
func (p *Plugin) Model() pluginapi.Model {
	return p.model
}

// rebuild draws phase into the model. The phase is only committed once the
// geometry is in place, so a failed tick is retried on the next one.
func (p *Plugin) rebuild(phase float32) error {
	if p.model == nil {
		logger.Error("cannot create geometry on non-existent model", zap.Float32("phase", phase))
		return fmt.Errorf("build phase %v: %w", phase, pluginapi.ErrNoModel)
	}
	if err := tesseract.Apply(p.model, p.build(phase)); err != nil {
		return err
	}
	p.phase = phase
	return nil
}

func addMaterial(model pluginapi.Model, def materialDef) error {
	mat, err := model.CreateMaterial(def.id, "Default")
	if err != nil {
		return err
	}
	if mat == nil {
		return fmt.Errorf("material %d: %w", def.id, pluginapi.ErrMaterialCreate)
	}

	mat.SetProperties("default", pluginapi.PropertyMap{
		"shading_mode": int(pluginapi.ShadingDiffuse),
	})
	mat.SetDiffuseColor(def.color)
	mat.SetReflectionIndex(def.reflectionIndex)
	return nil
}
