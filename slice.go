package slicer

// SliceKind tags an OutputSlice as a closed ring or an open path.
type SliceKind int

const (
	// SliceKindRing is a closed loop: any closed SlicePath, including a
	// surface component's outline when that outline closes on itself.
	SliceKindRing SliceKind = iota
	// SliceKindPath is an open polyline: any SlicePath that didn't close,
	// plus every surface stripe path (SurfacePath is inherently open).
	SliceKindPath
)

// OutputSlice is one printable polyline in the final result, its points
// flattened the same way Options.Positions is: a flat sequence of
// x, y, z triples.
type OutputSlice struct {
	Kind   SliceKind
	Points []float32
}

// Result is the complete output of Run: the ordered sequence of polylines
// to print, plus an optional raw dump of each surface component's
// triangles when the caller asked for WithSurfaceVisualization.
type Result struct {
	Slices   []OutputSlice
	Surfaces [][]float32
}

// flattenPoints converts a Vec3 polyline into the flat x, y, z float32
// layout OutputSlice and Options both use.
func flattenPoints(points []Vec3) []float32 {
	out := make([]float32, 0, len(points)*3)
	for _, p := range points {
		out = append(out, float32(p.X), float32(p.Y), float32(p.Z))
	}
	return out
}

// toOutputSlice converts a scheduled SlicePath into its OutputSlice,
// tagging it Ring or Path purely by whether it closed.
func toOutputSlice(sp SlicePath) OutputSlice {
	kind := SliceKindPath
	if sp.Closed {
		kind = SliceKindRing
	}
	return OutputSlice{Kind: kind, Points: flattenPoints(sp.Points)}
}

// flattenSurface dumps a surface component's raw triangles as a flat
// x, y, z triple sequence, three vertices per triangle, for
// visualization — not used by the print path itself.
func flattenSurface(mesh *Mesh) []float32 {
	out := make([]float32, 0, len(mesh.Triangles)*9)
	for _, t := range mesh.Triangles {
		out = append(out,
			float32(t.A.X), float32(t.A.Y), float32(t.A.Z),
			float32(t.B.X), float32(t.B.Y), float32(t.B.Z),
			float32(t.C.X), float32(t.C.Y), float32(t.C.Z),
		)
	}
	return out
}
