package slicer

import "math"

// relativeEqEps reports whether a and b are equal up to a tolerance scaled
// by their magnitude, per spec.md's "relative-epsilon comparison
// throughout." Equal exactly, or within eps of the larger operand's
// magnitude.
func relativeEqEps(a, b, eps float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}
	return diff <= largest*eps
}
