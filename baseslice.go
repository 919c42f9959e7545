package slicer

import (
	"log/slog"
	"math"
)

// BaseSlice is the set of rings produced by intersecting the slicable
// mesh with a single plane perpendicular to axis.
type BaseSlice struct {
	D     float64
	Rings []SlicePath
}

// SliceBaseSlices walks mesh at layerHeight intervals along axis starting
// from its minimum bound, per spec.md section 4.3. The loop is half-open
// (i in [0, layerCount)): for a height-10 cube with layerHeight 1, that
// produces exactly 10 planes at d = 0..9, matching the worked example in
// spec.md section 8 rather than its inclusive prose — original_source's
// base_slices.rs uses the same (0..layer_count) range.
func SliceBaseSlices(mesh *Mesh, axis Axis, layerHeight, eps float64, logger *slog.Logger) []BaseSlice {
	if mesh.AABB.IsEmpty() {
		return nil
	}
	min := mesh.AABB.MinAt(axis)
	max := mesh.AABB.MaxAt(axis)
	layerCount := int(math.Floor((max-min)/layerHeight + eps))

	slices := make([]BaseSlice, 0, layerCount)
	for i := 0; i < layerCount; i++ {
		d := min + float64(i)*layerHeight
		lines := intersectPlane(mesh, axis, d, eps)
		rings := FindPaths(lines, eps, logger)
		for i := range rings {
			rings[i] = rings[i].Reoriented(axis)
		}
		slices = append(slices, BaseSlice{D: d, Rings: rings})
	}
	return slices
}

// intersectPlane collects every segment produced by slicing mesh's
// triangles with the plane axis=d, pruning the BVH descent to subtrees
// whose bounding box actually spans d along axis.
func intersectPlane(mesh *Mesh, axis Axis, d, eps float64) []Line3 {
	var lines []Line3
	if len(mesh.BVH.Nodes) == 0 {
		return lines
	}
	stack := []int{0}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := mesh.BVH.Nodes[i]
		if node.IsLeaf() {
			tri := mesh.Triangles[node.Triangle]
			if line, ok := tri.Intersect(axis, d, eps); ok {
				lines = append(lines, line)
			}
			continue
		}
		if spansPlane(node.LeftAABB, axis, d) {
			stack = append(stack, node.Left)
		}
		if spansPlane(node.RightAABB, axis, d) {
			stack = append(stack, node.Right)
		}
	}
	return lines
}

func spansPlane(box AABB, axis Axis, d float64) bool {
	return box.MinAt(axis) <= d && box.MaxAt(axis) >= d
}
