package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Faultbox/tesseract/internal/host"
	"github.com/Faultbox/tesseract/internal/plugin/hypercube"
	"github.com/Faultbox/tesseract/internal/tesseract"
)

func newHost(t *testing.T) *host.Host {
	t.Helper()
	h := host.New()
	if err := h.Load(hypercube.Name); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return h
}

func TestSnapshot(t *testing.T) {
	h := newHost(t)
	f := Snapshot(h.World(), 0, "degrees")

	if len(f.Models) != 1 || f.Models[0].Name != hypercube.ModelName {
		t.Fatalf("models = %+v", f.Models)
	}
	mats := f.Models[0].Materials
	if len(mats) != 3 {
		t.Fatalf("materials = %d, want 3", len(mats))
	}
	if len(mats[tesseract.VertexMaterial].Spheres) != 16 {
		t.Errorf("spheres = %d, want 16", len(mats[tesseract.VertexMaterial].Spheres))
	}
	if len(mats[tesseract.EdgeMaterial].Cylinders) != 32 {
		t.Errorf("cylinders = %d, want 32", len(mats[tesseract.EdgeMaterial].Cylinders))
	}
	mesh := mats[tesseract.FaceMaterial].Mesh
	if mesh == nil || len(mesh.Vertices) != 32 || len(mesh.Indices) != 16 {
		t.Errorf("mesh = %+v", mesh)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	h := newHost(t)
	before := Snapshot(h.World(), 0, "")

	if err := h.SetFrame(90); err != nil {
		t.Fatalf("SetFrame() error = %v", err)
	}

	got := before.Models[0].Materials[tesseract.VertexMaterial].Spheres[0].Center
	if got != tesseract.Corners[0] {
		t.Errorf("snapshot changed after rebuild: slot 0 = %v", got)
	}
}

func TestWriteAndDecode(t *testing.T) {
	h := newHost(t)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, frame := range []int{0, 90, 180} {
		if err := h.SetFrame(frame); err != nil {
			t.Fatalf("SetFrame(%d) error = %v", frame, err)
		}
		if err := w.Write(Snapshot(h.World(), frame, "degrees")); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if w.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", w.Frames())
	}
	if !strings.Contains(buf.String(), "name: Tesseract") {
		t.Error("output does not name the model")
	}

	frames, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("decoded %d frames, want 3", len(frames))
	}

	slot0 := frames[1].Models[0].Materials[tesseract.VertexMaterial].Spheres[0]
	if slot0.Center != tesseract.Corners[8] {
		t.Errorf("frame 90 slot 0 = %v, want %v", slot0.Center, tesseract.Corners[8])
	}
	if slot0.Radius != tesseract.VertexRadius {
		t.Errorf("frame 90 radius = %v, want %v", slot0.Radius, tesseract.VertexRadius)
	}
	if frames[2].Frame != 180 || frames[2].Unit != "degrees" {
		t.Errorf("frame header = %d %q", frames[2].Frame, frames[2].Unit)
	}
}
