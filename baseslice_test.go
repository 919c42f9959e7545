package slicer

import "testing"

func TestSliceBaseSlicesHeightTenCube(t *testing.T) {
	tris := buildBoxTriangles(V3(0, 0, 0), V3(1, 1, 10))
	mesh := NewMesh(tris)

	slices := SliceBaseSlices(mesh, AxisZ, 1, 1e-6, nil)
	if len(slices) != 10 {
		t.Fatalf("len(slices) = %d, want 10 (half-open loop over a height-10 cube)", len(slices))
	}
	for i, s := range slices {
		if want := float64(i); s.D != want {
			t.Errorf("slices[%d].D = %v, want %v", i, s.D, want)
		}
		if len(s.Rings) != 1 {
			t.Fatalf("slices[%d] has %d rings, want 1", i, len(s.Rings))
		}
		if !s.Rings[0].Closed {
			t.Errorf("slices[%d] ring should close", i)
		}
		if len(s.Rings[0].Points) < 4 {
			t.Errorf("slices[%d] ring has %d points, want at least 4", i, len(s.Rings[0].Points))
		}
	}
}

func TestSliceBaseSlicesEmptyMeshProducesNoSlices(t *testing.T) {
	mesh := NewMesh(nil)
	slices := SliceBaseSlices(mesh, AxisZ, 1, 1e-6, nil)
	if len(slices) != 0 {
		t.Errorf("len(slices) = %d, want 0 for an empty mesh", len(slices))
	}
}
