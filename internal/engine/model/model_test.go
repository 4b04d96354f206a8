package model

import (
	"errors"
	"testing"

	"github.com/Faultbox/tesseract/internal/pluginapi"
	"github.com/Faultbox/tesseract/pkg/math"
)

var _ pluginapi.Model = (*Model)(nil)

func TestCreateMaterial(t *testing.T) {
	m := New()

	mat, err := m.CreateMaterial(2, "Default")
	if err != nil {
		t.Fatalf("CreateMaterial() error = %v", err)
	}
	mat.SetDiffuseColor([3]float32{0, 0, 1})
	mat.SetReflectionIndex(0.5)
	mat.SetProperties("default", pluginapi.PropertyMap{"shading_mode": int(pluginapi.ShadingDiffuse)})

	got := m.Material(2)
	if got == nil {
		t.Fatal("Material(2) = nil")
	}
	if got.Name != "Default" {
		t.Errorf("Name = %q, want %q", got.Name, "Default")
	}
	if got.DiffuseColor != [3]float32{0, 0, 1} {
		t.Errorf("DiffuseColor = %v", got.DiffuseColor)
	}
	if got.Opacity() != 0.5 {
		t.Errorf("Opacity() = %v, want 0.5", got.Opacity())
	}
	if got.ShadingMode() != pluginapi.ShadingDiffuse {
		t.Errorf("ShadingMode() = %v, want %v", got.ShadingMode(), pluginapi.ShadingDiffuse)
	}

	if _, err := m.CreateMaterial(2, "Again"); !errors.Is(err, pluginapi.ErrMaterialCreate) {
		t.Errorf("duplicate CreateMaterial() error = %v, want %v", err, pluginapi.ErrMaterialCreate)
	}
}

func TestMaterialIDsSorted(t *testing.T) {
	m := New()
	for _, id := range []pluginapi.MaterialID{2, 0, 1} {
		if _, err := m.CreateMaterial(id, "Default"); err != nil {
			t.Fatalf("CreateMaterial(%d) error = %v", id, err)
		}
	}
	ids := m.MaterialIDs()
	for i, id := range ids {
		if int(id) != i {
			t.Errorf("MaterialIDs()[%d] = %d", i, id)
		}
	}
}

func TestCollectionsAreKeyedByMaterial(t *testing.T) {
	m := New()
	m.AddSphere(0, pluginapi.Sphere{Radius: 1})
	m.AddSphere(1, pluginapi.Sphere{Radius: 2})
	m.AddCylinder(1, pluginapi.Cylinder{Radius: 3})

	if len(m.Spheres(0)) != 1 || len(m.Spheres(1)) != 1 {
		t.Fatalf("spheres per material = %d, %d", len(m.Spheres(0)), len(m.Spheres(1)))
	}

	m.ClearSpheres(0)
	if len(m.Spheres(0)) != 0 {
		t.Error("ClearSpheres(0) left entries")
	}
	if len(m.Spheres(1)) != 1 {
		t.Error("ClearSpheres(0) touched material 1")
	}

	m.ClearCylinders(1)
	m.ClearCylinders(7) // never populated
	if len(m.Cylinders(1)) != 0 {
		t.Error("ClearCylinders(1) left entries")
	}
}

func TestTriangleMeshCreatedOnDemand(t *testing.T) {
	m := New()
	if _, ok := m.Mesh(2); ok {
		t.Fatal("Mesh(2) exists before first access")
	}

	mesh := m.TriangleMesh(2)
	mesh.Vertices = append(mesh.Vertices, math.Vec3{X: 1})
	mesh.Indices = append(mesh.Indices, [3]uint32{0, 0, 0})

	again := m.TriangleMesh(2)
	if again != mesh {
		t.Error("TriangleMesh returned a different mesh on second access")
	}

	again.Clear()
	if len(mesh.Vertices) != 0 || len(mesh.Indices) != 0 {
		t.Error("Clear() left data")
	}
}

func TestBounds(t *testing.T) {
	m := New()
	if !m.Bounds().Empty() {
		t.Fatal("empty model should have empty bounds")
	}

	m.AddSphere(0, pluginapi.Sphere{Center: math.Vec3{X: 1, Y: 1, Z: 1}, Radius: 0.5})
	m.AddCylinder(1, pluginapi.Cylinder{
		Center: math.Vec3{X: -1, Y: 0, Z: 0},
		Up:     math.Vec3{X: 0, Y: -2, Z: 0},
		Radius: 0,
	})

	b := m.Bounds()
	wantMin := math.Vec3{X: -1, Y: -2, Z: 0}
	wantMax := math.Vec3{X: 1.5, Y: 1.5, Z: 1.5}
	if b.Min != wantMin || b.Max != wantMax {
		t.Errorf("Bounds() = %+v, want min %v max %v", b, wantMin, wantMax)
	}
	if got := b.Center(); got != (math.Vec3{X: 0.25, Y: -0.25, Z: 0.75}) {
		t.Errorf("Center() = %v", got)
	}
}

func TestBoundsUnion(t *testing.T) {
	a := emptyBounds().Extend(math.Vec3{}, 1)
	if got := a.Union(emptyBounds()); got != a {
		t.Errorf("Union(empty) = %+v, want %+v", got, a)
	}
	if got := emptyBounds().Union(a); got != a {
		t.Errorf("empty.Union(a) = %+v, want %+v", got, a)
	}
}
