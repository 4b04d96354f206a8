// Package tesseract generates the animated hypercube geometry: sixteen
// vertices interpolated around a closed loop from two nested cubes, and the
// spheres, cylinders and face mesh derived from them.
package tesseract

import (
	"github.com/Faultbox/tesseract/internal/pluginapi"
	"github.com/Faultbox/tesseract/pkg/math"
)

// Material ids of the three primitive collections.
const (
	VertexMaterial pluginapi.MaterialID = 0
	EdgeMaterial   pluginapi.MaterialID = 1
	FaceMaterial   pluginapi.MaterialID = 2
)

// Primitive radii.
const (
	VertexRadius float32 = 0.1
	EdgeRadius   float32 = 0.05
)

// Table sizes.
const (
	VertexCount = 16
	EdgeCount   = 32
	// FaceCount is the number of quads; each covers four consecutive edges.
	FaceCount = EdgeCount / 4
)

// Corners holds the inner cube (0-7, half-unit extent) followed by the outer
// cube (8-15, unit extent).
var Corners = [VertexCount]math.Vec3{
	{X: -0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5},
	{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
	{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
}

// Edges connects output vertices. Groups of four consecutive edges outline a
// face; the first index of each edge in a group is a quad corner.
var Edges = [EdgeCount][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 8}, {1, 9}, {2, 10}, {3, 11},
	{4, 12}, {5, 13}, {6, 14}, {7, 15},
	{8, 9}, {9, 10}, {10, 11}, {11, 8},
	{8, 12}, {9, 13}, {10, 14}, {11, 15},
	{12, 13}, {13, 14}, {14, 15}, {15, 12},
}

// slotQuads lists, per output vertex, the four corners it travels through.
// The order is significant: it encodes the unfolding motion.
var slotQuads = [VertexCount][4]int{
	{8, 9, 1, 0},
	{0, 8, 9, 1},
	{3, 11, 10, 2},
	{11, 10, 2, 3},
	{12, 13, 5, 4},
	{4, 12, 13, 5},
	{7, 15, 14, 6},
	{15, 14, 6, 7},
	{9, 1, 0, 8},
	{1, 0, 8, 9},
	{2, 3, 11, 10},
	{10, 2, 3, 11},
	{13, 5, 4, 12},
	{5, 4, 12, 13},
	{6, 7, 15, 14},
	{14, 6, 7, 15},
}

// SlotQuad returns the corner indices output vertex slot travels through.
func SlotQuad(slot int) [4]int {
	return slotQuads[slot]
}
