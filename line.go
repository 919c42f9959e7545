package slicer

// Line3 is an oriented pair of points in 3D. For lines produced by planar
// slicing, the interior of the shape lies to the right of travel from
// Start to End.
type Line3 struct {
	Start, End Vec3
}

// IsDegenerate reports whether Start and End are the same point within
// eps, per spec.md's "degenerate lines (start ~= end) are dropped before
// ring assembly."
func (l Line3) IsDegenerate(eps float64) bool {
	return l.Start.ApproxEqual(l.End, eps)
}
