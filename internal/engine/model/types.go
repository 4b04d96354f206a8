// Package model provides the in-memory model container: materials and the
// sphere, cylinder and triangle mesh collections keyed by material id.
package model

import "github.com/Faultbox/tesseract/pkg/math"

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// emptyBounds is inverted so the first Extend sets both corners.
func emptyBounds() Bounds {
	return Bounds{
		Min: math.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
		Max: math.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
	}
}

// Empty reports whether nothing has been added to the box.
func (b Bounds) Empty() bool {
	return b.Min.X > b.Max.X
}

// Extend grows the box to contain p padded by r on every axis.
func (b Bounds) Extend(p math.Vec3, r float32) Bounds {
	pad := math.Vec3{X: r, Y: r, Z: r}
	b.Min = b.Min.Min(p.Sub(pad))
	b.Max = b.Max.Max(p.Add(pad))
	return b
}

// Union returns the box covering both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	if other.Empty() {
		return b
	}
	if b.Empty() {
		return other
	}
	return Bounds{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}
