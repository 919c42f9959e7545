package slicer

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -1, 2)

	if got := a.Add(b); got != (Vec3{5, 1, 5}) {
		t.Errorf("Add() = %v, want {5 1 5}", got)
	}
	if got := a.Sub(b); got != (Vec3{-3, 3, 1}) {
		t.Errorf("Sub() = %v, want {-3 3 1}", got)
	}
	if got := a.Dot(b); got != 4-2+6 {
		t.Errorf("Dot() = %v, want 8", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)
	got := x.Cross(y)
	want := V3(0, 0, 1)
	if !got.ApproxEqual(want, 1e-9) {
		t.Errorf("Cross(x, y) = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := V3(3, 4, 0)
	got := v.Normalize()
	if math.Abs(got.Length()-1) > 1e-9 {
		t.Errorf("Normalize() length = %v, want 1", got.Length())
	}

	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize() of zero vector = %v, want zero", got)
	}
}

func TestVec3Angle(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Vec3
		want      float64
		tolerance float64
	}{
		{"parallel", V3(1, 0, 0), V3(2, 0, 0), 0, 1e-9},
		{"perpendicular", V3(1, 0, 0), V3(0, 1, 0), math.Pi / 2, 1e-9},
		{"opposite", V3(0, 0, 1), V3(0, 0, -1), math.Pi, 1e-9},
		{"zero vector", Vec3{}, V3(1, 0, 0), 0, 1e-9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Angle(tt.b)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Angle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRelativeEqEps(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		eps  float64
		want bool
	}{
		{"exactly equal", 1.0, 1.0, 1e-6, true},
		{"both zero", 0, 0, 1e-6, true},
		{"within relative tolerance", 1000000, 1000000.5, 1e-6, true},
		{"outside relative tolerance", 1000000, 1000002, 1e-6, false},
		{"small values outside eps", 1e-3, 2e-3, 1e-6, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relativeEqEps(tt.a, tt.b, tt.eps); got != tt.want {
				t.Errorf("relativeEqEps(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.eps, got, tt.want)
			}
		})
	}
}
