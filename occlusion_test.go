package slicer

import (
	"math"
	"testing"
)

func TestInfiniteConeDistanceSign(t *testing.T) {
	cone := NewInfiniteCone(math.Pi / 4) // 45 degrees

	tests := []struct {
		name     string
		p        Vec3
		negative bool
	}{
		{"directly above apex", V3(0, 0, 5), true},
		{"within cone reach", V3(1, 0, 5), true},
		{"outside cone reach", V3(10, 0, 5), false},
		{"below apex", V3(0, 0, -5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := cone.Distance(tt.p)
			if got := d < 0; got != tt.negative {
				t.Errorf("Distance(%v) = %v, want negative=%v", tt.p, d, tt.negative)
			}
		})
	}
}

func TestTranslatedConeRecentersApex(t *testing.T) {
	cone := NewInfiniteCone(math.Pi / 6)
	apex := V3(5, 5, 5)
	translated := Translate(cone, apex)

	if d := translated.Distance(apex.Add(V3(0, 0, 1))); d >= 0 {
		t.Errorf("point just above the translated apex should be inside (negative), got %v", d)
	}
	if d := translated.Distance(apex.Sub(V3(0, 0, 1))); d < 0 {
		t.Errorf("point below the translated apex should be outside (non-negative), got %v", d)
	}
}

func TestOccludedPointDirectlyAboveSurface(t *testing.T) {
	tris := []Triangle{NewTriangle(V3(0, 0, 0), V3(10, 0, 0), V3(0, 10, 0))}
	surface := NewMesh(tris)

	above := V3(1, 1, 1)
	if !Occluded(surface, above, math.Pi/3, 1e-9) {
		t.Error("a point close above a flat surface should be occluded")
	}

	farAbove := V3(1000, 1000, 100)
	if Occluded(surface, farAbove, math.Pi/12, 1e-9) {
		t.Error("a point far outside the cone's horizontal reach should not be occluded")
	}

	below := V3(1, 1, -1)
	if Occluded(surface, below, math.Pi/3, 1e-9) {
		t.Error("a point below the surface should never be occluded")
	}
}

func TestOccludedEmptySurface(t *testing.T) {
	surface := NewMesh(nil)
	if Occluded(surface, V3(0, 0, 0), math.Pi/4, 1e-9) {
		t.Error("an empty surface should never occlude anything")
	}
}

func TestProjectToolpathBelowBoxReturnsFalse(t *testing.T) {
	box := AABB{Min: V3(0, 0, 5), Max: V3(1, 1, 10)}
	if _, ok := projectToolpath(box, 1, 1); ok {
		t.Error("projecting at a z below the box's minimum should fail")
	}
}
