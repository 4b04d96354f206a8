package hypercube

import (
	"errors"
	"testing"

	"github.com/Faultbox/tesseract/internal/engine/animation"
	"github.com/Faultbox/tesseract/internal/engine/model"
	"github.com/Faultbox/tesseract/internal/engine/scene"
	"github.com/Faultbox/tesseract/internal/pluginapi"
	"github.com/Faultbox/tesseract/internal/tesseract"
	"github.com/Faultbox/tesseract/pkg/math"
)

var _ pluginapi.Plugin = (*Plugin)(nil)

type testAPI struct {
	scene pluginapi.Scene
	clock *animation.Parameters
}

func (a *testAPI) Scene() pluginapi.Scene                             { return a.scene }
func (a *testAPI) AnimationParameters() pluginapi.AnimationParameters { return a.clock }

func newTestAPI() *testAPI {
	return &testAPI{scene: scene.New(), clock: animation.NewParameters()}
}

// countingBuilder wraps tesseract.Build and records every phase it is asked for.
type countingBuilder struct {
	phases []float32
}

func (c *countingBuilder) build(phase float32) tesseract.Geometry {
	c.phases = append(c.phases, phase)
	return tesseract.Build(phase)
}

func TestInit(t *testing.T) {
	api := newTestAPI()
	p := New(api)

	if err := p.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if api.clock.End() != 360 || api.clock.Dt() != 1 || api.clock.Unit() != "degrees" {
		t.Errorf("clock = end %d dt %d unit %q", api.clock.End(), api.clock.Dt(), api.clock.Unit())
	}

	models := api.scene.(*scene.Scene).Models()
	if len(models) != 1 || models[0].Name != ModelName {
		t.Fatalf("scene models = %+v", models)
	}
	m := models[0].Model
	if pluginapi.Model(m) != p.Model() {
		t.Error("scene model is not the plugin's model")
	}

	tests := []struct {
		id         pluginapi.MaterialID
		color      [3]float32
		reflection float32
	}{
		{tesseract.VertexMaterial, [3]float32{1, 0, 0}, 0},
		{tesseract.EdgeMaterial, [3]float32{1, 1, 0}, 0},
		{tesseract.FaceMaterial, [3]float32{0, 0, 1}, 0.5},
	}
	for _, tt := range tests {
		mat := m.Material(tt.id)
		if mat == nil {
			t.Errorf("material %d missing", tt.id)
			continue
		}
		if mat.DiffuseColor != tt.color {
			t.Errorf("material %d color = %v, want %v", tt.id, mat.DiffuseColor, tt.color)
		}
		if mat.ReflectionIndex != tt.reflection {
			t.Errorf("material %d reflection = %v, want %v", tt.id, mat.ReflectionIndex, tt.reflection)
		}
		if mat.ShadingMode() != pluginapi.ShadingDiffuse {
			t.Errorf("material %d shading = %v, want diffuse", tt.id, mat.ShadingMode())
		}
	}

	if len(m.Spheres(tesseract.VertexMaterial)) != 16 {
		t.Errorf("spheres after Init = %d, want 16", len(m.Spheres(tesseract.VertexMaterial)))
	}
	want := math.Vec3{X: -0.5, Y: -0.5, Z: -0.5}
	if got := m.Spheres(tesseract.VertexMaterial)[0].Center; got != want {
		t.Errorf("slot 0 after Init = %v, want %v", got, want)
	}
}

func TestPreRenderSuppressesRepeatedPhase(t *testing.T) {
	api := newTestAPI()
	counter := &countingBuilder{}
	p := New(api, WithBuilder(counter.build))

	if err := p.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if len(counter.phases) != 1 || counter.phases[0] != 0 {
		t.Fatalf("Init builds = %v, want [0]", counter.phases)
	}

	api.clock.SetFrame(10)
	for i := 0; i < 2; i++ {
		if err := p.PreRender(); err != nil {
			t.Fatalf("PreRender() error = %v", err)
		}
	}

	if got := len(counter.phases) - 1; got != 1 {
		t.Errorf("two ticks at frame 10 built %d times, want 1", got)
	}
	if p.Phase() != tesseract.PhaseForFrame(10) {
		t.Errorf("Phase() = %v, want %v", p.Phase(), tesseract.PhaseForFrame(10))
	}
}

func TestPreRenderAtFrameZeroAfterInit(t *testing.T) {
	api := newTestAPI()
	counter := &countingBuilder{}
	p := New(api, WithBuilder(counter.build))
	if err := p.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if err := p.PreRender(); err != nil {
		t.Fatalf("PreRender() error = %v", err)
	}
	if len(counter.phases) != 1 {
		t.Errorf("frame 0 tick rebuilt geometry built at phase 0: builds = %v", counter.phases)
	}
}

func TestPreRenderFollowsClock(t *testing.T) {
	api := newTestAPI()
	p := New(api)
	if err := p.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	m := p.Model().(*model.Model)

	api.clock.SetFrame(90)
	if err := p.PreRender(); err != nil {
		t.Fatalf("PreRender() error = %v", err)
	}
	// Slot 0 ends the first quarter on the first corner of its quad, corner 8.
	want := math.Vec3{X: -1, Y: -1, Z: -1}
	if got := m.Spheres(tesseract.VertexMaterial)[0].Center; got != want {
		t.Errorf("slot 0 at frame 90 = %v, want %v", got, want)
	}

	// Frame 360 is the same phase as frame 0.
	api.clock.SetFrame(360)
	if err := p.PreRender(); err != nil {
		t.Fatalf("PreRender() error = %v", err)
	}
	if got := m.Spheres(tesseract.VertexMaterial); len(got) != 16 || got[0].Center != tesseract.Corners[0] {
		t.Errorf("frame 360 slot 0 = %v, want %v", got[0].Center, tesseract.Corners[0])
	}
	if p.Phase() != 0 {
		t.Errorf("Phase() at frame 360 = %v, want 0", p.Phase())
	}
}

func TestPreRenderWithoutModel(t *testing.T) {
	tests := []struct {
		name  string
		frame int
	}{
		{"initial phase", 0},
		{"new phase", 45},
		{"same phase as frame 0", 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI()
			api.clock.SetEnd(360)
			api.clock.SetFrame(tt.frame)

			p := New(api)
			// Every tick must fail, not just the first one at a new phase.
			for i := 0; i < 2; i++ {
				err := p.PreRender()
				if !errors.Is(err, pluginapi.ErrNoModel) {
					t.Errorf("PreRender() #%d before Init error = %v, want %v", i, err, pluginapi.ErrNoModel)
				}
			}
			if p.Phase() != 0 {
				t.Errorf("Phase() after failed ticks = %v, want 0", p.Phase())
			}
		})
	}
}

type failingScene struct {
	pluginapi.Scene
	model pluginapi.Model
	err   error
}

func (s *failingScene) CreateModel() (pluginapi.Model, error) {
	return s.model, s.err
}

type failingModel struct {
	*model.Model
	failOn pluginapi.MaterialID
}

func (m *failingModel) CreateMaterial(id pluginapi.MaterialID, name string) (pluginapi.Material, error) {
	if id == m.failOn {
		return nil, nil
	}
	return m.Model.CreateMaterial(id, name)
}

func TestInitFailures(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name  string
		scene pluginapi.Scene
		want  error
	}{
		{"create model error", &failingScene{err: boom}, boom},
		{"nil model", &failingScene{}, pluginapi.ErrModelCreate},
		{"nil material", &failingScene{model: &failingModel{Model: model.New(), failOn: tesseract.EdgeMaterial}}, pluginapi.ErrMaterialCreate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &testAPI{scene: tt.scene, clock: animation.NewParameters()}
			p := New(api)
			err := p.Init()
			if !errors.Is(err, tt.want) {
				t.Errorf("Init() error = %v, want %v", err, tt.want)
			}
			if api.clock.End() != animation.DefaultEnd {
				t.Error("failed Init should not configure the clock")
			}
		})
	}
}
