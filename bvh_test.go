package slicer

import "testing"

func TestBuildBVHSingleTriangleIsRootLeaf(t *testing.T) {
	tris := []Triangle{NewTriangle(V3(0, 0, 0), V3(1, 0, 0), V3(0, 1, 0))}
	bvh := BuildBVH(tris)

	if len(bvh.Nodes) != 1 {
		t.Fatalf("len(Nodes) = %d, want 1", len(bvh.Nodes))
	}
	if !bvh.Nodes[0].IsLeaf() {
		t.Error("single-triangle BVH root should be a leaf")
	}
	if tris[0].BVHIndex() != 0 {
		t.Errorf("triangle's bvhIndex = %d, want 0", tris[0].BVHIndex())
	}
}

func TestBuildBVHEveryLeafHoldsOneTriangle(t *testing.T) {
	var tris []Triangle
	for i := 0; i < 17; i++ {
		x := float64(i)
		tris = append(tris, NewTriangle(V3(x, 0, 0), V3(x+1, 0, 0), V3(x, 1, 0)))
	}
	bvh := BuildBVH(tris)

	leaves := 0
	seen := make(map[int]bool)
	for _, n := range bvh.Nodes {
		if n.IsLeaf() {
			leaves++
			if seen[n.Triangle] {
				t.Errorf("triangle %d referenced by more than one leaf", n.Triangle)
			}
			seen[n.Triangle] = true
		}
	}
	if leaves != len(tris) {
		t.Errorf("leaf count = %d, want %d (one leaf per triangle)", leaves, len(tris))
	}
	for i, tri := range tris {
		node := bvh.Nodes[tri.BVHIndex()]
		if !node.IsLeaf() || node.Triangle != i {
			t.Errorf("triangle %d's bvhIndex %d doesn't resolve back to itself", i, tri.BVHIndex())
		}
	}
}

func TestBuildBVHRootCoversAllTriangles(t *testing.T) {
	tris := []Triangle{
		NewTriangle(V3(0, 0, 0), V3(1, 0, 0), V3(0, 1, 0)),
		NewTriangle(V3(10, 10, 10), V3(11, 10, 10), V3(10, 11, 10)),
	}
	bvh := BuildBVH(tris)
	root := bvh.Nodes[0]
	if root.IsLeaf() {
		t.Fatal("root with two disjoint triangles should be an interior node")
	}
	union := root.LeftAABB.Union(root.RightAABB)
	for _, tri := range tris {
		if !union.ContainsEpsilon(tri.AABB.Min, 0) || !union.ContainsEpsilon(tri.AABB.Max, 0) {
			t.Errorf("root bounds don't cover triangle AABB %v", tri.AABB)
		}
	}
}
