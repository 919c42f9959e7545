package slicer

import "math"

// Vec3 represents a point or displacement in 3D. The core doesn't
// distinguish position from direction the way gg's Vec2/Point pair does
// for 2D screen space — every geometric quantity here (vertices, normals,
// polyline points) is a bare Vec3.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience constructor.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns the vector scaled by a scalar.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v x w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Distance returns the Euclidean distance between two points.
func (v Vec3) Distance(w Vec3) float64 {
	return v.Sub(w).Length()
}

// Normalize returns a unit vector in the same direction, or the zero
// vector if v has zero length.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return v.Scale(1 / length)
}

// Lerp linearly interpolates between v and w; t=0 returns v, t=1 returns w.
func (v Vec3) Lerp(w Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

// Angle returns the unsigned angle between v and w, in radians.
func (v Vec3) Angle(w Vec3) float64 {
	denom := v.Length() * w.Length()
	if denom == 0 {
		return 0
	}
	cos := v.Dot(w) / denom
	// Clamp for float error before acos.
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// At returns the coordinate of v along the given axis.
func (v Vec3) At(axis Axis) float64 {
	switch axis {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// With returns a copy of v with the coordinate along axis replaced by d.
func (v Vec3) With(axis Axis, d float64) Vec3 {
	switch axis {
	case AxisX:
		v.X = d
	case AxisY:
		v.Y = d
	default:
		v.Z = d
	}
	return v
}

// ApproxEqual reports whether v and w are equal component-wise within a
// relative-epsilon tolerance.
func (v Vec3) ApproxEqual(w Vec3, eps float64) bool {
	return relativeEqEps(v.X, w.X, eps) &&
		relativeEqEps(v.Y, w.Y, eps) &&
		relativeEqEps(v.Z, w.Z, eps)
}

// Point2 is a 2D point, used for the horizontal-plane toolpath projection
// in occlusion testing (spec.md section 4.8) where a full Vec3 would carry
// an unused Z.
type Point2 struct {
	X, Y float64
}
