package slicer

import "log/slog"

// SlicePath is a polyline assembled from planar-slice segments: either a
// closed ring (Points[0] approximately equals the last point) or an open
// path left over when the segments couldn't be fully chained.
type SlicePath struct {
	Points []Vec3
	Closed bool
	AABB   AABB
}

// FindPaths assembles unordered slice segments into rings (and, when
// segments can't be fully chained, open paths), per spec.md section 4.4.
// Degenerate segments (Start ~= End within eps) are dropped first. Each
// seed segment grows from both ends at once — a "two-ended frontier"
// — repeatedly pulling in any remaining segment whose endpoint matches
// the current head or tail within eps, until the frontier meets itself
// (a closed ring) or no remaining segment extends either end (an open
// path; logged at Warn, mirroring original_source's stuck-ring
// diagnostic).
func FindPaths(lines []Line3, eps float64, logger *slog.Logger) []SlicePath {
	remaining := make([]Line3, 0, len(lines))
	for _, ln := range lines {
		if !ln.IsDegenerate(eps) {
			remaining = append(remaining, ln)
		}
	}
	used := make([]bool, len(remaining))

	var paths []SlicePath
	for i := range remaining {
		if used[i] {
			continue
		}
		used[i] = true
		left := []Vec3{remaining[i].Start}
		right := []Vec3{remaining[i].End}
		closed := false

		for {
			tail := right[len(right)-1]
			head := left[len(left)-1]
			if len(left)+len(right) > 2 && tail.ApproxEqual(head, eps) {
				closed = true
				break
			}

			progress := false
			for j := range remaining {
				if used[j] {
					continue
				}
				ln := remaining[j]
				switch {
				case ln.Start.ApproxEqual(tail, eps):
					right = append(right, ln.End)
				case ln.End.ApproxEqual(tail, eps):
					right = append(right, ln.Start)
				case ln.End.ApproxEqual(head, eps):
					left = append(left, ln.Start)
				case ln.Start.ApproxEqual(head, eps):
					left = append(left, ln.End)
				default:
					continue
				}
				used[j] = true
				progress = true
				break
			}
			if !progress {
				break
			}
		}

		points := make([]Vec3, 0, len(left)+len(right))
		for k := len(left) - 1; k >= 0; k-- {
			points = append(points, left[k])
		}
		points = append(points, right...)

		if !closed && len(points) > 2 && points[0].ApproxEqual(points[len(points)-1], eps) {
			closed = true
		}
		if !closed && logger != nil {
			logger.Warn("slicer: unclosable ring", "points", len(points))
		}

		box := EmptyAABB()
		for _, p := range points {
			box = box.GrowPoint(p)
		}
		paths = append(paths, SlicePath{Points: points, Closed: closed, AABB: box})
	}
	return paths
}

// Reoriented returns p with its point order reversed if needed so that,
// projected onto the plane perpendicular to axis, the ring winds
// clockwise as seen from the positive axis direction (spec.md section
// 4.4/8's shared orientation convention: the trapezoidal sum over the two
// non-slice axes `(axis_a, axis_b)` is >= 0). Open paths are returned
// unchanged; reorientation only makes sense for closed rings, where
// winding direction is otherwise an accident of which segment FindPaths
// happened to seed from.
func (p SlicePath) Reoriented(axis Axis) SlicePath {
	if !p.Closed || len(p.Points) < 3 {
		return p
	}
	u, v := axis.Other()
	var trapezoidal float64
	n := len(p.Points)
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		trapezoidal += (b.At(u) - a.At(u)) * (b.At(v) + a.At(v))
	}
	if trapezoidal >= 0 {
		return p
	}
	reversed := make([]Vec3, n)
	for i, pt := range p.Points {
		reversed[n-1-i] = pt
	}
	return SlicePath{Points: reversed, Closed: p.Closed, AABB: p.AABB}
}
