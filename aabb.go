package slicer

import "math"

// AABB is an axis-aligned bounding box in 3D.
type AABB struct {
	Min, Max Vec3
}

// EmptyAABB returns a box that contains no points: Min is +Inf in every
// component, Max is -Inf, so the first GrowPoint/Union establishes real
// bounds.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: Vec3{X: inf, Y: inf, Z: inf},
		Max: Vec3{X: -inf, Y: -inf, Z: -inf},
	}
}

// IsEmpty reports whether the box has never been grown.
func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// GrowPoint returns the box enlarged to also enclose p.
func (b AABB) GrowPoint(p Vec3) AABB {
	return AABB{
		Min: Vec3{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)},
		Max: Vec3{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)},
	}
}

// Union returns the smallest box enclosing both b and other.
func (b AABB) Union(other AABB) AABB {
	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}
	return AABB{
		Min: Vec3{X: math.Min(b.Min.X, other.Min.X), Y: math.Min(b.Min.Y, other.Min.Y), Z: math.Min(b.Min.Z, other.Min.Z)},
		Max: Vec3{X: math.Max(b.Max.X, other.Max.X), Y: math.Max(b.Max.Y, other.Max.Y), Z: math.Max(b.Max.Z, other.Max.Z)},
	}
}

// Intersects reports whether b and other overlap in all three axes.
func (b AABB) Intersects(other AABB) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// ContainsEpsilon reports whether p lies within b, inflated by eps on
// every face.
func (b AABB) ContainsEpsilon(p Vec3, eps float64) bool {
	return p.X >= b.Min.X-eps && p.X <= b.Max.X+eps &&
		p.Y >= b.Min.Y-eps && p.Y <= b.Max.Y+eps &&
		p.Z >= b.Min.Z-eps && p.Z <= b.Max.Z+eps
}

// MinAt returns the minimum bound along axis.
func (b AABB) MinAt(axis Axis) float64 { return b.Min.At(axis) }

// MaxAt returns the maximum bound along axis.
func (b AABB) MaxAt(axis Axis) float64 { return b.Max.At(axis) }

// CountVerticesIn reports how many of a, b2, c lie within box (used by the
// outline extractor's BVH-pruning heuristic: only descend into subtrees
// whose box approximately contains at least two of a triangle's
// vertices).
func (box AABB) CountVerticesIn(a, b2, c Vec3, eps float64) int {
	n := 0
	if box.ContainsEpsilon(a, eps) {
		n++
	}
	if box.ContainsEpsilon(b2, eps) {
		n++
	}
	if box.ContainsEpsilon(c, eps) {
		n++
	}
	return n
}

// AABB2 is an axis-aligned bounding box in 2D, used for the horizontal
// toolpath projection of a 3D box (spec.md section 4.8).
type AABB2 struct {
	Min, Max Point2
}

// ApproxContains reports whether p lies within the box, using the same
// union-overlap style epsilon comparison spec.md section 4.7 specifies
// for stride-merge AABB overlap: approximately-greater-or-equal /
// approximately-less-or-equal rather than a strict inequality.
func (b AABB2) ApproxContains(p Point2, eps float64) bool {
	return (p.X > b.Min.X || relativeEqEps(p.X, b.Min.X, eps)) &&
		(p.X < b.Max.X || relativeEqEps(p.X, b.Max.X, eps)) &&
		(p.Y > b.Min.Y || relativeEqEps(p.Y, b.Min.Y, eps)) &&
		(p.Y < b.Max.Y || relativeEqEps(p.Y, b.Max.Y, eps))
}
