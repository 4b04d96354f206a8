package model

import (
	"fmt"
	"sort"

	"github.com/Faultbox/tesseract/internal/pluginapi"
)

// Model is an in-memory pluginapi.Model.
type Model struct {
	materials map[pluginapi.MaterialID]*Material
	spheres   map[pluginapi.MaterialID][]pluginapi.Sphere
	cylinders map[pluginapi.MaterialID][]pluginapi.Cylinder
	meshes    map[pluginapi.MaterialID]*pluginapi.TriangleMesh
}

// New creates an empty model.
func New() *Model {
	return &Model{
		materials: make(map[pluginapi.MaterialID]*Material),
		spheres:   make(map[pluginapi.MaterialID][]pluginapi.Sphere),
		cylinders: make(map[pluginapi.MaterialID][]pluginapi.Cylinder),
		meshes:    make(map[pluginapi.MaterialID]*pluginapi.TriangleMesh),
	}
}

// CreateMaterial registers a material under id. Ids are unique per model.
func (m *Model) CreateMaterial(id pluginapi.MaterialID, name string) (pluginapi.Material, error) {
	if _, exists := m.materials[id]; exists {
		return nil, fmt.Errorf("%w: id %d already in use", pluginapi.ErrMaterialCreate, id)
	}
	mat := &Material{
		ID:         id,
		Name:       name,
		Properties: make(map[string]pluginapi.PropertyMap),
	}
	m.materials[id] = mat
	return mat, nil
}

// Material returns the material registered under id, or nil.
func (m *Model) Material(id pluginapi.MaterialID) *Material {
	return m.materials[id]
}

// MaterialIDs returns the registered material ids in ascending order.
func (m *Model) MaterialIDs() []pluginapi.MaterialID {
	ids := make([]pluginapi.MaterialID, 0, len(m.materials))
	for id := range m.materials {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// AddSphere appends a sphere to the collection of material id.
func (m *Model) AddSphere(id pluginapi.MaterialID, s pluginapi.Sphere) {
	m.spheres[id] = append(m.spheres[id], s)
}

// AddCylinder appends a cylinder to the collection of material id.
func (m *Model) AddCylinder(id pluginapi.MaterialID, c pluginapi.Cylinder) {
	m.cylinders[id] = append(m.cylinders[id], c)
}

// ClearSpheres empties the sphere collection of material id.
func (m *Model) ClearSpheres(id pluginapi.MaterialID) {
	m.spheres[id] = m.spheres[id][:0]
}

// ClearCylinders empties the cylinder collection of material id.
func (m *Model) ClearCylinders(id pluginapi.MaterialID) {
	m.cylinders[id] = m.cylinders[id][:0]
}

// TriangleMesh returns the mesh of material id, creating an empty one.
func (m *Model) TriangleMesh(id pluginapi.MaterialID) *pluginapi.TriangleMesh {
	mesh, ok := m.meshes[id]
	if !ok {
		mesh = &pluginapi.TriangleMesh{}
		m.meshes[id] = mesh
	}
	return mesh
}

// Spheres returns the spheres of material id. The slice is owned by the model.
func (m *Model) Spheres(id pluginapi.MaterialID) []pluginapi.Sphere {
	return m.spheres[id]
}

// Cylinders returns the cylinders of material id. The slice is owned by the model.
func (m *Model) Cylinders(id pluginapi.MaterialID) []pluginapi.Cylinder {
	return m.cylinders[id]
}

// Mesh returns the mesh of material id without creating one.
func (m *Model) Mesh(id pluginapi.MaterialID) (*pluginapi.TriangleMesh, bool) {
	mesh, ok := m.meshes[id]
	return mesh, ok
}

// Bounds returns the box enclosing every primitive, padded by radii.
func (m *Model) Bounds() Bounds {
	b := emptyBounds()
	for _, list := range m.spheres {
		for _, s := range list {
			b = b.Extend(s.Center, s.Radius)
		}
	}
	for _, list := range m.cylinders {
		for _, c := range list {
			b = b.Extend(c.Center, c.Radius)
			b = b.Extend(c.Up, c.Radius)
		}
	}
	for _, mesh := range m.meshes {
		for _, v := range mesh.Vertices {
			b = b.Extend(v, 0)
		}
	}
	return b
}
