package tesseract

import (
	"github.com/Faultbox/tesseract/internal/pluginapi"
	"github.com/Faultbox/tesseract/pkg/math"
)

// Geometry is the full set of primitives for one phase.
type Geometry struct {
	Phase     float32
	Vertices  [VertexCount]math.Vec3
	Spheres   []pluginapi.Sphere
	Cylinders []pluginapi.Cylinder
	Mesh      pluginapi.TriangleMesh
}

// Build derives every primitive from the vertices at phase. It depends on
// nothing but phase and the constant tables.
func Build(phase float32) Geometry {
	phase = WrapPhase(phase)
	g := Geometry{
		Phase:     phase,
		Vertices:  Vertices(phase),
		Spheres:   make([]pluginapi.Sphere, 0, VertexCount),
		Cylinders: make([]pluginapi.Cylinder, 0, EdgeCount),
		Mesh: pluginapi.TriangleMesh{
			Vertices: make([]math.Vec3, 0, FaceCount*4),
			Indices:  make([][3]uint32, 0, FaceCount*2),
		},
	}

	for _, v := range g.Vertices {
		g.Spheres = append(g.Spheres, pluginapi.Sphere{Center: v, Radius: VertexRadius})
	}

	for _, e := range Edges {
		g.Cylinders = append(g.Cylinders, pluginapi.Cylinder{
			Center: g.Vertices[e[0]],
			Up:     g.Vertices[e[1]],
			Radius: EdgeRadius,
		})
	}

	var index uint32
	for i := 0; i < EdgeCount; i += 4 {
		t := g.Vertices[Edges[i][0]]
		u := g.Vertices[Edges[i+1][0]]
		v := g.Vertices[Edges[i+2][0]]
		w := g.Vertices[Edges[i+3][0]]
		g.Mesh.Vertices = append(g.Mesh.Vertices, t, u, v, w)
		g.Mesh.Indices = append(g.Mesh.Indices,
			[3]uint32{index, index + 1, index + 2},
			[3]uint32{index + 2, index + 3, index},
		)
		index += 4
	}

	return g
}

// Apply replaces the model's vertex, edge and face collections with g.
// Clearing an empty model is a no-op.
func Apply(m pluginapi.Model, g Geometry) error {
	if m == nil {
		return pluginapi.ErrNoModel
	}

	m.ClearSpheres(VertexMaterial)
	m.ClearCylinders(EdgeMaterial)
	mesh := m.TriangleMesh(FaceMaterial)
	mesh.Clear()

	for _, s := range g.Spheres {
		m.AddSphere(VertexMaterial, s)
	}
	for _, c := range g.Cylinders {
		m.AddCylinder(EdgeMaterial, c)
	}
	mesh.Vertices = append(mesh.Vertices, g.Mesh.Vertices...)
	mesh.Indices = append(mesh.Indices, g.Mesh.Indices...)
	return nil
}
