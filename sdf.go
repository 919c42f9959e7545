package slicer

import "math"

// SDF3 is a signed distance field in 3D: negative inside, positive
// outside, zero on the boundary. Only the two primitives the occlusion
// tracer needs are implemented — general composition (union, intersection,
// onion, arbitrary transforms) is out of scope per spec.md's Non-goals.
type SDF3 interface {
	Distance(p Vec3) float64
}

// InfiniteCone is the signed distance field of an infinite cone with apex
// at the origin, axis +Z, and half-angle angle. Ported from the "q, d"
// formulation in original_source's sdf.rs (itself from Inigo Quilez's
// distance-function notes): negative inside the cone.
type InfiniteCone struct {
	sinA, cosA float64
}

// NewInfiniteCone builds a cone SDF for the given half-angle, in radians.
func NewInfiniteCone(angle float64) InfiniteCone {
	return InfiniteCone{sinA: math.Sin(angle), cosA: math.Cos(angle)}
}

// Distance evaluates the cone SDF at p.
func (c InfiniteCone) Distance(p Vec3) float64 {
	qx := math.Hypot(p.X, p.Y)
	qz := p.Z
	// Project q onto the direction of the cone's surface line (sinA, cosA)
	// in the (radial, z) half-plane, clamped to the forward half.
	proj := qx*c.sinA + qz*c.cosA
	if proj < 0 {
		proj = 0
	}
	dx := qx - proj*c.sinA
	dz := qz - proj*c.cosA
	d := math.Hypot(dx, dz)
	if qx*c.cosA-qz*c.sinA > 0 {
		return d
	}
	return -d
}

// Translated wraps an SDF3 to be evaluated relative to an offset apex,
// mirroring original_source's SdfTransform/translate modifier — the only
// modifier the occlusion tracer needs.
type Translated struct {
	SDF    SDF3
	Offset Vec3
}

// Translate returns sdf re-centered at offset.
func Translate(sdf SDF3, offset Vec3) Translated {
	return Translated{SDF: sdf, Offset: offset}
}

// Distance evaluates the wrapped SDF at p, translated into the wrapped
// SDF's local space.
func (t Translated) Distance(p Vec3) float64 {
	return t.SDF.Distance(p.Sub(t.Offset))
}
