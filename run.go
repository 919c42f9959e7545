package slicer

import "math"

// stripeAxis is the horizontal axis surface components are striped
// along. spec.md doesn't expose this as a configurable knob, so it's
// fixed at X; a surface's own connectivity (not the stride direction)
// determines the shape of its stripe paths.
const stripeAxis = AxisX

// Run executes the full non-planar slicing pipeline described in
// spec.md: classify triangles, split the surface triangles into
// connected components, slice the whole mesh into base-slice wall rings,
// and schedule wall rings against surface components so that occluded
// wall points wait for their blocking surface.
//
// Run never returns a raw panic: assertf failures are recovered into a
// *ValidationError return value. Any other panic indicates an internal
// bug and is allowed to propagate.
func Run(opts Options, runOpts ...RunOption) (result Result, err error) {
	cfg := defaultRunConfig()
	for _, o := range runOpts {
		o(&cfg)
	}

	defer func() {
		if r := recover(); r != nil {
			if ve, ok := r.(*ValidationError); ok {
				err = ve
				return
			}
			panic(r)
		}
	}()

	validateOptions(opts)

	triangles := buildTriangles(opts.Positions, cfg.epsilon, cfg.logger)
	cfg.logger.Info("slicer: triangles loaded", "count", len(triangles))

	slicable := NewMesh(append([]Triangle(nil), triangles...))

	var surfaceTriangles []Triangle
	up := V3(0, 0, 1)
	for _, t := range triangles {
		if a := t.Normal.Angle(up); a <= opts.MaxAngle || relativeEqEps(a, opts.MaxAngle, cfg.epsilon) {
			surfaceTriangles = append(surfaceTriangles, t)
		}
	}

	components := SplitSurface(surfaceTriangles, cfg.epsilon)
	components = filterMinArea(components, opts.NozzleDiameter)
	cfg.logger.Debug("slicer: surface components", "count", len(components))

	baseSlices := SliceBaseSlices(slicable, AxisZ, opts.LayerHeight, cfg.epsilon, cfg.logger)
	cfg.logger.Debug("slicer: base slices", "count", len(baseSlices))

	scheduled := Schedule(baseSlices, components, stripeAxis, opts.NozzleDiameter, opts.MaxAngle, cfg.epsilon, cfg.logger)
	scheduled = filterShortPaths(scheduled, opts.MinSurfacePathLength)

	slices := make([]OutputSlice, 0, len(scheduled))
	for _, sp := range scheduled {
		slices = append(slices, toOutputSlice(sp))
	}
	result.Slices = slices

	if cfg.includeSurfaceVisual {
		for _, c := range components {
			result.Surfaces = append(result.Surfaces, flattenSurface(c))
		}
	}

	cfg.logger.Info("slicer: done", "slices", len(slices))
	return result, nil
}

// validateOptions checks the mandatory invariants of Options, panicking
// with a *ValidationError (via assertf) on the first violation.
func validateOptions(opts Options) {
	if len(opts.Positions)%9 != 0 {
		assertf("Positions", "length %d is not a multiple of 9", len(opts.Positions))
	}
	if opts.LayerHeight <= 0 {
		assertf("LayerHeight", "must be strictly positive, got %v", opts.LayerHeight)
	}
	if opts.MaxAngle < 0 || opts.MaxAngle > math.Pi {
		assertf("MaxAngle", "must be within [0, pi] radians, got %v", opts.MaxAngle)
	}
	if opts.NozzleDiameter <= 0 {
		assertf("NozzleDiameter", "must be strictly positive, got %v", opts.NozzleDiameter)
	}
	if opts.MinSurfacePathLength < 0 {
		assertf("MinSurfacePathLength", "must be non-negative, got %v", opts.MinSurfacePathLength)
	}
}

// buildTriangles parses Options.Positions into Triangles, skipping
// degenerate (zero-area) triangles rather than rejecting the whole input,
// per spec.md section 8's degenerate-triangle scenario.
func buildTriangles(positions []float32, eps float64, logger interface {
	Warn(string, ...any)
}) []Triangle {
	n := len(positions) / 9
	triangles := make([]Triangle, 0, n)
	for i := 0; i < n; i++ {
		base := i * 9
		a := V3(float64(positions[base+0]), float64(positions[base+1]), float64(positions[base+2]))
		b := V3(float64(positions[base+3]), float64(positions[base+4]), float64(positions[base+5]))
		c := V3(float64(positions[base+6]), float64(positions[base+7]), float64(positions[base+8]))
		tri := NewTriangle(a, b, c)
		if tri.Area() <= eps {
			if logger != nil {
				logger.Warn("slicer: degenerate triangle skipped", "index", i)
			}
			continue
		}
		triangles = append(triangles, tri)
	}
	return triangles
}

// filterMinArea discards surface components whose total area is smaller
// than a circle of the nozzle's diameter — too small to stripe
// meaningfully, per Options.NozzleDiameter's doc comment.
func filterMinArea(components []*Mesh, nozzleDiameter float64) []*Mesh {
	minArea := math.Pi * (nozzleDiameter / 2) * (nozzleDiameter / 2)
	out := components[:0:0]
	for _, c := range components {
		var area float64
		for _, t := range c.Triangles {
			area += t.Area()
		}
		if area >= minArea {
			out = append(out, c)
		}
	}
	return out
}

// filterShortPaths discards open SlicePaths (surface stripe paths, and
// any split wall fragment) whose accumulated length is below threshold.
// Closed rings are never filtered — a wall ring's length isn't subject to
// MinSurfacePathLength.
func filterShortPaths(paths []SlicePath, threshold float64) []SlicePath {
	if threshold <= 0 {
		return paths
	}
	out := paths[:0:0]
	for _, p := range paths {
		if p.Closed {
			out = append(out, p)
			continue
		}
		if pathLength(p.Points) >= threshold {
			out = append(out, p)
		}
	}
	return out
}

// pathLength sums the Euclidean length of consecutive points.
func pathLength(points []Vec3) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += points[i-1].Distance(points[i])
	}
	return total
}
