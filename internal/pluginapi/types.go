package pluginapi

import "github.com/Faultbox/tesseract/pkg/math"

// MaterialID keys a model's materials and its primitive collections.
type MaterialID int

// ShadingMode selects how the renderer shades a material.
type ShadingMode int

// Shading modes understood by the renderer.
const (
	ShadingNone ShadingMode = iota
	ShadingDiffuse
	ShadingElectron
	ShadingCartoon
	ShadingElectronTransparency
	ShadingPerlin
)

// PropertyMap is a named bag of material properties.
type PropertyMap map[string]any

// Sphere is a point-like primitive.
type Sphere struct {
	Center math.Vec3 `yaml:"center"`
	Radius float32   `yaml:"radius"`
}

// Cylinder is a segment primitive between two endpoints.
type Cylinder struct {
	Center math.Vec3 `yaml:"center"`
	Up     math.Vec3 `yaml:"up"`
	Radius float32   `yaml:"radius"`
}

// TriangleMesh is an indexed triangle list.
type TriangleMesh struct {
	Vertices []math.Vec3 `yaml:"vertices"`
	Indices  [][3]uint32 `yaml:"indices"`
}

// Clear empties the mesh while keeping its backing storage.
func (m *TriangleMesh) Clear() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
}

// ModelDescriptor names a model handed to the scene.
type ModelDescriptor struct {
	Name  string
	Model Model
}
