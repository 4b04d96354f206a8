package renderer

import (
	gomath "math"

	"github.com/Faultbox/tesseract/internal/pluginapi"
	"github.com/Faultbox/tesseract/pkg/math"
)

// floatsPerVertex is position (3) + normal (3).
const floatsPerVertex = 6

// UnitSphere tessellates a radius-1 sphere at the origin. Returns interleaved
// position/normal vertices and triangle indices.
func UnitSphere(stacks, slices int) ([]float32, []uint32) {
	var vertices []float32
	var indices []uint32

	for i := 0; i <= stacks; i++ {
		phi := gomath.Pi * float64(i) / float64(stacks)
		for j := 0; j <= slices; j++ {
			theta := 2 * gomath.Pi * float64(j) / float64(slices)
			x := float32(gomath.Sin(phi) * gomath.Cos(theta))
			y := float32(gomath.Cos(phi))
			z := float32(gomath.Sin(phi) * gomath.Sin(theta))
			// On a unit sphere the normal is the position.
			vertices = append(vertices, x, y, z, x, y, z)
		}
	}

	row := uint32(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint32(i)*row + uint32(j)
			b := a + row
			indices = append(indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return vertices, indices
}

// UnitCylinder tessellates the side of a radius-1 cylinder running from y=0
// to y=1. Ends are left open; joints are covered by the vertex spheres.
func UnitCylinder(slices int) ([]float32, []uint32) {
	var vertices []float32
	var indices []uint32

	for j := 0; j <= slices; j++ {
		theta := 2 * gomath.Pi * float64(j) / float64(slices)
		x := float32(gomath.Cos(theta))
		z := float32(gomath.Sin(theta))
		vertices = append(vertices,
			x, 0, z, x, 0, z,
			x, 1, z, x, 0, z,
		)
	}

	for j := 0; j < slices; j++ {
		a := uint32(j * 2)
		indices = append(indices, a, a+1, a+2, a+2, a+1, a+3)
	}
	return vertices, indices
}

// FlatMeshVertices expands an indexed mesh into interleaved position/normal
// triangles with one face normal per triangle. Triangles referencing missing
// vertices and degenerate triangles are skipped.
func FlatMeshVertices(mesh *pluginapi.TriangleMesh) []float32 {
	out := make([]float32, 0, len(mesh.Indices)*3*floatsPerVertex)
	n := uint32(len(mesh.Vertices))

	for _, tri := range mesh.Indices {
		if tri[0] >= n || tri[1] >= n || tri[2] >= n {
			continue
		}
		a, b, c := mesh.Vertices[tri[0]], mesh.Vertices[tri[1]], mesh.Vertices[tri[2]]
		normal := b.Sub(a).Cross(c.Sub(a))
		if normal.Length() < 1e-9 {
			continue
		}
		normal = normal.Normalize()
		for _, v := range []math.Vec3{a, b, c} {
			out = append(out, v.X, v.Y, v.Z, normal.X, normal.Y, normal.Z)
		}
	}
	return out
}
