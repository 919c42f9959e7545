package slicer

import "log/slog"

// OutlineSurface extracts the boundary of a surface component: the edges
// that belong to exactly one triangle of the component, per spec.md
// section 4.5. An edge shared by two triangles is interior to the patch;
// an edge with no twin is part of its outline (the outer rim, and the rim
// of any hole).
//
// For each triangle the search for an edge's twin is pruned through the
// component's own BVH: only subtrees whose box contains at least two of
// the triangle's three vertices can possibly hold a matching triangle,
// mirroring AABB.CountVerticesIn's use elsewhere for the same style of
// connectivity pruning.
func OutlineSurface(surface *Mesh, eps float64, logger *slog.Logger) []SlicePath {
	var edges []Line3
	for ti, tri := range surface.Triangles {
		for _, e := range tri.edges() {
			if hasTwin(surface, ti, tri, e[0], e[1], eps) {
				continue
			}
			edges = append(edges, Line3{Start: e[0], End: e[1]})
		}
	}
	return FindPaths(edges, eps, logger)
}

// hasTwin reports whether some triangle other than surface.Triangles[self]
// has an edge matching (p, q) in either orientation. self's own vertices
// (not the edge's two endpoints) are what gate the BVH descent: a subtree
// can only hold a twin if its box contains at least two of self's three
// vertices.
func hasTwin(surface *Mesh, self int, tri Triangle, p, q Vec3, eps float64) bool {
	if len(surface.BVH.Nodes) == 0 {
		return false
	}
	stack := []int{0}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := surface.BVH.Nodes[i]
		if node.IsLeaf() {
			if node.Triangle == self {
				continue
			}
			other := surface.Triangles[node.Triangle]
			for _, e := range other.edges() {
				if (e[0].ApproxEqual(p, eps) && e[1].ApproxEqual(q, eps)) ||
					(e[0].ApproxEqual(q, eps) && e[1].ApproxEqual(p, eps)) {
					return true
				}
			}
			continue
		}
		if node.LeftAABB.CountVerticesIn(tri.A, tri.B, tri.C, eps) >= 2 {
			stack = append(stack, node.Left)
		}
		if node.RightAABB.CountVerticesIn(tri.A, tri.B, tri.C, eps) >= 2 {
			stack = append(stack, node.Right)
		}
	}
	return false
}
