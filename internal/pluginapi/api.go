// Package pluginapi defines the contracts between the rendering host and the
// plugins it drives: the plugin lifecycle hooks and the scene, model, material
// and animation clock capabilities a plugin may use.
package pluginapi

import "errors"

var (
	// ErrNoModel is returned when geometry is requested before a model is bound.
	ErrNoModel = errors.New("no model bound")
	// ErrModelCreate is returned when the scene cannot create a model.
	ErrModelCreate = errors.New("failed to create model")
	// ErrMaterialCreate is returned when a model cannot create a material.
	ErrMaterialCreate = errors.New("failed to create material")
	// ErrUnknownPlugin is returned when a plugin name is not registered.
	ErrUnknownPlugin = errors.New("unknown plugin")
)

// Plugin is the capability the host invokes on every loaded plugin.
type Plugin interface {
	// Init is called once after the plugin is constructed.
	Init() error

	// PreRender is called once per tick, before the scene is drawn.
	PreRender() error
}

// API is what the host exposes to a plugin.
type API interface {
	Scene() Scene
	AnimationParameters() AnimationParameters
}

// Scene owns models. Plugins keep non-owning references to models they create.
type Scene interface {
	CreateModel() (Model, error)
	AddModel(desc ModelDescriptor) error
}

// Model holds materials and primitive collections keyed by material id.
type Model interface {
	CreateMaterial(id MaterialID, name string) (Material, error)
	AddSphere(id MaterialID, s Sphere)
	AddCylinder(id MaterialID, c Cylinder)
	ClearSpheres(id MaterialID)
	ClearCylinders(id MaterialID)
	// TriangleMesh returns the mutable mesh for a material, creating it if needed.
	TriangleMesh(id MaterialID) *TriangleMesh
}

// Material is a renderer material.
type Material interface {
	SetProperties(name string, props PropertyMap)
	SetDiffuseColor(rgb [3]float32)
	SetReflectionIndex(v float32)
}

// AnimationParameters is the host animation clock.
type AnimationParameters interface {
	Frame() int
	SetEnd(frame int)
	SetDt(step int)
	SetUnit(unit string)
}
