package slicer


// Triangle is a single facet of a mesh: three vertices in winding order,
// plus the precomputed outward normal and bounding box. bvhIndex is
// mutable scratch state the BVH builder stamps onto each triangle so a
// leaf node can be resolved back to "where did this triangle end up" —
// ported from original_source's BHShape::node_index convention.
type Triangle struct {
	A, B, C Vec3
	Normal  Vec3
	AABB    AABB

	bvhIndex int
}

// NewTriangle builds a Triangle from three vertices, computing its normal
// (via cross product, not normalized away — callers that need a unit
// normal call Normal.Normalize()) and bounding box.
func NewTriangle(a, b, c Vec3) Triangle {
	normal := b.Sub(a).Cross(c.Sub(a))
	box := EmptyAABB().GrowPoint(a).GrowPoint(b).GrowPoint(c)
	return Triangle{A: a, B: b, C: c, Normal: normal, AABB: box}
}

// BVHIndex returns the node index the BVH builder last stamped onto this
// triangle.
func (t Triangle) BVHIndex() int { return t.bvhIndex }

// SetBVHIndex stamps the node index the BVH builder assigned this
// triangle.
func (t *Triangle) SetBVHIndex(i int) { t.bvhIndex = i }

// Area returns the triangle's surface area.
func (t Triangle) Area() float64 {
	return t.Normal.Length() / 2
}

// HasPoint reports whether p coincides with one of the triangle's three
// vertices within eps.
func (t Triangle) HasPoint(p Vec3, eps float64) bool {
	return t.A.ApproxEqual(p, eps) || t.B.ApproxEqual(p, eps) || t.C.ApproxEqual(p, eps)
}

// SharesPoint reports whether t and other have any vertex in common
// within eps — the connectivity test split_surface uses to grow a
// surface component.
func (t Triangle) SharesPoint(other Triangle, eps float64) bool {
	return t.HasPoint(other.A, eps) || t.HasPoint(other.B, eps) || t.HasPoint(other.C, eps)
}

// edges returns the triangle's three directed edges in winding order.
func (t Triangle) edges() [3][2]Vec3 {
	return [3][2]Vec3{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

// SharesEdge reports whether t and other have an edge in common (either
// orientation) within eps. The outline extractor's hasTwin applies the
// same edge-matching rule one edge at a time: an edge that appears on only
// one triangle of a component is part of the component's outline.
func (t Triangle) SharesEdge(other Triangle, eps float64) bool {
	te := t.edges()
	oe := other.edges()
	for _, e1 := range te {
		for _, e2 := range oe {
			if (e1[0].ApproxEqual(e2[0], eps) && e1[1].ApproxEqual(e2[1], eps)) ||
				(e1[0].ApproxEqual(e2[1], eps) && e1[1].ApproxEqual(e2[0], eps)) {
				return true
			}
		}
	}
	return false
}

// Intersect slices t with the plane axis=d, returning the resulting
// segment if the plane crosses the triangle's interior. Ported from
// original_source's Triangle::intersect_z: walk the three vertices with
// last initialized to the final vertex (C), so every edge C-A, A-B, B-C
// is tested exactly once; a vertex within eps of the plane is emitted as a
// copy with its axis coordinate snapped to d exactly, a sign change
// between consecutive vertices contributes a lerp'd crossing point.
// Exactly two hits make a valid segment; any other count (0, 1, or — for
// a plane lying in the triangle — 3+) is not a crossing segment.
func (t Triangle) Intersect(axis Axis, d, eps float64) (Line3, bool) {
	points := [3]Vec3{t.A, t.B, t.C}
	var hits []Vec3
	last := t.C
	for _, p := range points {
		lastV, pV := last.At(axis), p.At(axis)
		switch {
		case relativeEqEps(pV, d, eps):
			hits = append(hits, p.With(axis, d))
		case (lastV < d) != (pV < d):
			frac := (d - lastV) / (pV - lastV)
			hits = append(hits, last.Lerp(p, frac))
		}
		last = p
	}
	if len(hits) != 2 {
		return Line3{}, false
	}
	return Line3{Start: hits[0], End: hits[1]}, true
}
