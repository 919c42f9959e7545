package slicer

import "sort"

// BVHNode is one node of a bounding volume hierarchy. Interior nodes
// store the AABB and child index of each child; leaf nodes store exactly
// one triangle index and leave the child fields at their zero value.
// Ported in structure from original_source's BVHNode (which in turn
// mirrors the bvh crate's flat node array), generalized to triangle
// indices instead of the original's generic shape trait.
type BVHNode struct {
	LeftAABB, RightAABB AABB
	Left, Right         int

	Triangle int
	Leaf     bool
}

// IsLeaf reports whether node is a leaf (carries a single triangle
// index) rather than an interior node.
func (n BVHNode) IsLeaf() bool { return n.Leaf }

// BVH is a bounding volume hierarchy over a slice of triangles, stored as
// a flat array of nodes with the root always at index 0.
type BVH struct {
	Nodes []BVHNode
}

// BuildBVH constructs a BVH over triangles, stamping each triangle's
// bvhIndex with the index of the leaf node that holds it. triangles is
// reordered in place (the BVH partitions the backing array directly,
// rather than holding a separate index permutation), so a triangle's
// final position in the slice is also the global index a leaf node
// records.
//
// The build is a top-down recursive median split along the longest axis
// of the running AABB, per spec.md section 4.2: every leaf holds exactly
// one triangle, never a binned group.
func BuildBVH(triangles []Triangle) BVH {
	b := &BVH{Nodes: make([]BVHNode, 0, 2*len(triangles)+1)}
	if len(triangles) == 0 {
		return *b
	}
	b.build(triangles, 0)
	return *b
}

// build recursively partitions triangles[lo:lo+len(span)] and returns the
// index of the node it created. span aliases the backing array of the
// full triangles slice passed to BuildBVH, so lo is span's offset within
// that full slice — the global index a leaf stamps onto its triangle.
func (b *BVH) build(span []Triangle, lo int) int {
	if len(span) == 1 {
		idx := len(b.Nodes)
		b.Nodes = append(b.Nodes, BVHNode{Leaf: true, Triangle: lo})
		span[0].SetBVHIndex(idx)
		return idx
	}

	box := EmptyAABB()
	for _, t := range span {
		box = box.Union(t.AABB)
	}
	axis := longestAxis(box)

	sort.SliceStable(span, func(i, j int) bool {
		return span[i].AABB.Min.At(axis) < span[j].AABB.Min.At(axis)
	})
	mid := len(span) / 2

	leftBox := EmptyAABB()
	for _, t := range span[:mid] {
		leftBox = leftBox.Union(t.AABB)
	}
	rightBox := EmptyAABB()
	for _, t := range span[mid:] {
		rightBox = rightBox.Union(t.AABB)
	}

	// Reserve this node's slot before recursing so the root always lands
	// at index 0.
	nodeIdx := len(b.Nodes)
	b.Nodes = append(b.Nodes, BVHNode{})

	left := b.build(span[:mid], lo)
	right := b.build(span[mid:], lo+mid)

	b.Nodes[nodeIdx] = BVHNode{
		LeftAABB:  leftBox,
		RightAABB: rightBox,
		Left:      left,
		Right:     right,
	}
	return nodeIdx
}

// longestAxis returns the axis along which box has the greatest extent.
func longestAxis(box AABB) Axis {
	dx := box.Max.X - box.Min.X
	dy := box.Max.Y - box.Min.Y
	dz := box.Max.Z - box.Min.Z
	switch {
	case dx >= dy && dx >= dz:
		return AxisX
	case dy >= dz:
		return AxisY
	default:
		return AxisZ
	}
}
