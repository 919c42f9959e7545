package slicer

import "testing"

func TestSplitSurfaceMergesConnectedTriangles(t *testing.T) {
	// Two triangles sharing an edge, and a third sharing a vertex with the
	// second, should end up in the same component.
	tris := []Triangle{
		NewTriangle(V3(0, 0, 0), V3(1, 0, 0), V3(0, 1, 0)),
		NewTriangle(V3(1, 0, 0), V3(0, 1, 0), V3(1, 1, 0)),
		NewTriangle(V3(1, 1, 0), V3(2, 1, 0), V3(1, 2, 0)),
	}
	components := SplitSurface(tris, 1e-9)
	if len(components) != 1 {
		t.Fatalf("len(components) = %d, want 1", len(components))
	}
	if len(components[0].Triangles) != 3 {
		t.Errorf("component has %d triangles, want 3", len(components[0].Triangles))
	}
}

func TestSplitSurfaceDiscardsIsolatedSingletons(t *testing.T) {
	tris := []Triangle{
		NewTriangle(V3(0, 0, 0), V3(1, 0, 0), V3(0, 1, 0)),
		// Disjoint, shares no vertex with anything.
		NewTriangle(V3(100, 100, 100), V3(101, 100, 100), V3(100, 101, 100)),
	}
	components := SplitSurface(tris, 1e-9)
	if len(components) != 0 {
		t.Fatalf("len(components) = %d, want 0 (both triangles are isolated singletons)", len(components))
	}
}

func TestSplitSurfaceTwoDisjointComponents(t *testing.T) {
	tris := []Triangle{
		NewTriangle(V3(0, 0, 0), V3(1, 0, 0), V3(0, 1, 0)),
		NewTriangle(V3(1, 0, 0), V3(0, 1, 0), V3(1, 1, 0)),

		NewTriangle(V3(10, 10, 0), V3(11, 10, 0), V3(10, 11, 0)),
		NewTriangle(V3(11, 10, 0), V3(10, 11, 0), V3(11, 11, 0)),
	}
	components := SplitSurface(tris, 1e-9)
	if len(components) != 2 {
		t.Fatalf("len(components) = %d, want 2", len(components))
	}
	for _, c := range components {
		if len(c.Triangles) != 2 {
			t.Errorf("component has %d triangles, want 2", len(c.Triangles))
		}
	}
}
