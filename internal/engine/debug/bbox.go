// Package debug provides debug visualization utilities.
package debug

import "github.com/Faultbox/tesseract/internal/engine/model"

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// DefaultBBoxPadding is the default padding around a model's bounds.
const DefaultBBoxPadding = 0.05

// GenerateBBoxWireframeVertices creates line vertices for a wireframe bounding box.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
func GenerateBBoxWireframeVertices(minX, minY, minZ, maxX, maxY, maxZ float32) []float32 {
	return []float32{
		// Bottom face
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// GenerateBoundsWireframe creates wireframe vertices around b, expanded by
// padding on all sides. Empty bounds produce no vertices.
func GenerateBoundsWireframe(b model.Bounds, padding float32) []float32 {
	if b.Empty() {
		return nil
	}
	return GenerateBBoxWireframeVertices(
		b.Min.X-padding, b.Min.Y-padding, b.Min.Z-padding,
		b.Max.X+padding, b.Max.Y+padding, b.Max.Z+padding,
	)
}
