package slicer

// buildBoxTriangles returns the 12 triangles (2 per face, consistent
// outward winding) of an axis-aligned box spanning min to max. Shared by
// several tests that need a simple watertight solid.
func buildBoxTriangles(min, max Vec3) []Triangle {
	x0, y0, z0 := min.X, min.Y, min.Z
	x1, y1, z1 := max.X, max.Y, max.Z

	v := func(x, y, z float64) Vec3 { return V3(x, y, z) }
	quad := func(a, b, c, d Vec3) []Triangle {
		return []Triangle{NewTriangle(a, b, c), NewTriangle(a, c, d)}
	}

	var tris []Triangle
	// -Z (bottom), outward normal -Z
	tris = append(tris, quad(v(x0, y0, z0), v(x0, y1, z0), v(x1, y1, z0), v(x1, y0, z0))...)
	// +Z (top), outward normal +Z
	tris = append(tris, quad(v(x0, y0, z1), v(x1, y0, z1), v(x1, y1, z1), v(x0, y1, z1))...)
	// -Y
	tris = append(tris, quad(v(x0, y0, z0), v(x1, y0, z0), v(x1, y0, z1), v(x0, y0, z1))...)
	// +Y
	tris = append(tris, quad(v(x0, y1, z0), v(x0, y1, z1), v(x1, y1, z1), v(x1, y1, z0))...)
	// -X
	tris = append(tris, quad(v(x0, y0, z0), v(x0, y0, z1), v(x0, y1, z1), v(x0, y1, z0))...)
	// +X
	tris = append(tris, quad(v(x1, y0, z0), v(x1, y1, z0), v(x1, y1, z1), v(x1, y0, z1))...)
	return tris
}

// flattenTriangles is the inverse of buildTriangles: turns a triangle
// slice into the flat Positions layout Options expects.
func flattenTriangles(tris []Triangle) []float32 {
	out := make([]float32, 0, len(tris)*9)
	for _, t := range tris {
		for _, p := range []Vec3{t.A, t.B, t.C} {
			out = append(out, float32(p.X), float32(p.Y), float32(p.Z))
		}
	}
	return out
}
