package slicer

import "math"

// projectToolpath projects box's horizontal extent onto the plane z,
// inflated by the nozzle's conical approach angle, per spec.md section
// 4.8. Returns false if z is below the box (every vertex in box lies
// above z, so no part of box can occlude a point at that height).
func projectToolpath(box AABB, z, tanAlpha float64) (AABB2, bool) {
	if z < box.Min.Z {
		return AABB2{}, false
	}
	deltaTargetZ := z - box.Min.Z
	deltaZ := box.Max.Z - box.Min.Z
	var delta float64
	if deltaZ > 0 {
		delta = tanAlpha * (deltaTargetZ / deltaZ)
	}
	dx := (box.Max.X - box.Min.X) * delta
	dy := (box.Max.Y - box.Min.Y) * delta
	return AABB2{
		Min: Point2{X: box.Min.X - dx, Y: box.Min.Y - dy},
		Max: Point2{X: box.Max.X + dx, Y: box.Max.Y + dy},
	}, true
}

// toolpathIntersects is the BVH-pruning upper bound: does box's inflated
// projection at point's height approximately contain point's horizontal
// position?
func toolpathIntersects(box AABB, point Vec3, tanAlpha, eps float64) bool {
	projected, ok := projectToolpath(box, point.Z, tanAlpha)
	if !ok {
		return false
	}
	return projected.ApproxContains(Point2{X: point.X, Y: point.Y}, eps)
}

// Occluded reports whether point is occluded by surface: some triangle of
// surface has a vertex whose upward infinite-cone SDF (half-angle
// maxAngle) is negative at point, i.e. point sits above that vertex and
// within its conical reach.
func Occluded(surface *Mesh, point Vec3, maxAngle, eps float64) bool {
	if len(surface.Triangles) == 0 {
		return false
	}
	cone := NewInfiniteCone(maxAngle)
	tanAlpha := math.Tan(maxAngle)

	stack := make([]int, 0, 64)
	stack = append(stack, 0)
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := surface.BVH.Nodes[i]
		if node.IsLeaf() {
			tri := surface.Triangles[node.Triangle]
			if Translate(cone, tri.A).Distance(point) < 0 ||
				Translate(cone, tri.B).Distance(point) < 0 ||
				Translate(cone, tri.C).Distance(point) < 0 {
				return true
			}
			continue
		}
		if toolpathIntersects(node.LeftAABB, point, tanAlpha, eps) {
			stack = append(stack, node.Left)
		}
		if toolpathIntersects(node.RightAABB, point, tanAlpha, eps) {
			stack = append(stack, node.Right)
		}
	}
	return false
}
