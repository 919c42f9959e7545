package slicer

// SplitSurface partitions triangles into maximal connected components
// under vertex adjacency, per spec.md section 4.6. Components of size
// one (a triangle that shares no vertex with any other) are discarded —
// a lone surface triangle has no interior to stripe.
//
// Ported from original_source's split_surface.rs: pop a seed triangle,
// then repeatedly sweep the remaining triangles absorbing any that share
// a vertex with the growing component (pruned through the component's
// own BVH, descending only into subtrees whose box contains the
// candidate's vertex), looping until a full sweep absorbs nothing.
func SplitSurface(triangles []Triangle, eps float64) []*Mesh {
	remaining := append([]Triangle(nil), triangles...)
	var components []*Mesh

	for len(remaining) > 0 {
		component := []Triangle{remaining[0]}
		remaining = remaining[1:]
		compMesh := NewMesh(append([]Triangle(nil), component...))

		for {
			absorbedAny := false
			stillRemaining := remaining[:0:0]
			for _, cand := range remaining {
				if sharesPointWithMesh(compMesh, cand, eps) {
					component = append(component, cand)
					absorbedAny = true
				} else {
					stillRemaining = append(stillRemaining, cand)
				}
			}
			remaining = stillRemaining
			if !absorbedAny {
				break
			}
			compMesh = NewMesh(append([]Triangle(nil), component...))
		}

		if len(component) > 1 {
			components = append(components, NewMesh(component))
		}
	}
	return components
}

// sharesPointWithMesh reports whether cand shares a vertex with any
// triangle of mesh, descending mesh's BVH only into subtrees whose box
// contains at least one of cand's vertices.
func sharesPointWithMesh(mesh *Mesh, cand Triangle, eps float64) bool {
	if len(mesh.BVH.Nodes) == 0 {
		return false
	}
	stack := []int{0}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := mesh.BVH.Nodes[i]
		if node.IsLeaf() {
			if cand.SharesPoint(mesh.Triangles[node.Triangle], eps) {
				return true
			}
			continue
		}
		if hasPointInAABB(node.LeftAABB, cand, eps) {
			stack = append(stack, node.Left)
		}
		if hasPointInAABB(node.RightAABB, cand, eps) {
			stack = append(stack, node.Right)
		}
	}
	return false
}

func hasPointInAABB(box AABB, t Triangle, eps float64) bool {
	return box.CountVerticesIn(t.A, t.B, t.C, eps) > 0
}
