package slicer

// Mesh is a triangle soup plus its bounding volume hierarchy and overall
// bounding box, the unit every slicing stage operates over — both the
// full slicable mesh and each connected surface component produced by
// SplitSurface.
type Mesh struct {
	Triangles []Triangle
	BVH       BVH
	AABB      AABB
}

// NewMesh builds a Mesh over triangles, constructing its BVH and overall
// bounding box. triangles is reordered in place by the BVH build.
func NewMesh(triangles []Triangle) *Mesh {
	box := EmptyAABB()
	for _, t := range triangles {
		box = box.Union(t.AABB)
	}
	return &Mesh{
		Triangles: triangles,
		BVH:       BuildBVH(triangles),
		AABB:      box,
	}
}
