package slicer

import (
	"log/slog"
	"math"
	"sort"
)

// SurfacePath is a single non-planar toolpath across a surface component,
// built by chaining stride segments end to end (spec.md section 4.7).
type SurfacePath struct {
	Points []Vec3
}

// stride holds the merged path segments produced by slicing a surface
// mesh at one stripe plane, perpendicular to the stride axis.
type stride struct {
	index int
	paths []SlicePath
}

// SurfacePathIterator walks a surface component's stride segments,
// yielding one SurfacePath per call to Next until every segment has been
// consumed. Ported from original_source's SurfacePathIterator
// (slice_path.rs): strides are prepared eagerly (sliced, sorted, and
// merged) up front; Next greedily extends a chain across consecutive
// strides, picking whichever remaining candidate is geometrically
// nearest.
type SurfacePathIterator struct {
	strides []stride
	hAxis   Axis
	eps     float64
	cur     int
}

// horizontalComplement returns the horizontal axis that isn't strideAxis
// — the axis surface paths are sorted and merged along within each
// stride.
func horizontalComplement(strideAxis Axis) Axis {
	if strideAxis == AxisX {
		return AxisY
	}
	return AxisX
}

// NewSurfacePathIterator prepares every stride of surface along
// strideAxis, spaced nozzleDiameter apart, ready for Next to chain
// across.
func NewSurfacePathIterator(surface *Mesh, strideAxis Axis, nozzleDiameter, eps float64, logger *slog.Logger) *SurfacePathIterator {
	hAxis := horizontalComplement(strideAxis)
	strides := prepareStrides(surface, strideAxis, hAxis, nozzleDiameter, eps, logger)
	return &SurfacePathIterator{strides: strides, hAxis: hAxis, eps: eps}
}

// prepareStrides slices surface at nozzleDiameter-spaced planes along
// strideAxis, discards any closed loop FindPaths returns for a stride (a
// hole or island on the strip, not a chainable path), then within each
// stride sorts the remaining open segments by their starting point's
// hAxis coordinate and merges any whose tail and head fall within
// nozzleDiameter of each other.
func prepareStrides(surface *Mesh, strideAxis, hAxis Axis, nozzleDiameter, eps float64, logger *slog.Logger) []stride {
	if surface.AABB.IsEmpty() {
		return nil
	}
	min := surface.AABB.MinAt(strideAxis)
	max := surface.AABB.MaxAt(strideAxis)
	count := int(math.Ceil((max-min)/nozzleDiameter - eps))
	if count < 1 {
		count = 1
	}

	strides := make([]stride, 0, count)
	for i := 0; i < count; i++ {
		d := min + float64(i)*nozzleDiameter
		lines := intersectPlane(surface, strideAxis, d, eps)
		paths := FindPaths(lines, eps, logger)
		paths = discardClosed(paths)
		if len(paths) == 0 {
			continue
		}
		sort.SliceStable(paths, func(a, b int) bool {
			return paths[a].Points[0].At(hAxis) < paths[b].Points[0].At(hAxis)
		})
		paths = mergeAdjacent(paths, hAxis, nozzleDiameter, eps)
		strides = append(strides, stride{index: i, paths: paths})
	}
	return strides
}

// discardClosed drops closed loops from a stride's paths: a hole or
// island on a surface strip is an isolated feature, not a candidate for
// the chainer, per spec.md section 4.7 step 1.
func discardClosed(paths []SlicePath) []SlicePath {
	open := paths[:0]
	for _, p := range paths {
		if !p.Closed {
			open = append(open, p)
		}
	}
	return open
}

// mergeAdjacent repeatedly joins consecutive path segments (sorted along
// hAxis) whose tail and head lie within width of each other, until a full
// pass makes no further merge.
func mergeAdjacent(paths []SlicePath, hAxis Axis, width, eps float64) []SlicePath {
	for {
		merged := false
		out := make([]SlicePath, 0, len(paths))
		skip := make([]bool, len(paths))
		for i := 0; i < len(paths); i++ {
			if skip[i] {
				continue
			}
			cur := paths[i]
			for j := i + 1; j < len(paths); j++ {
				if skip[j] {
					continue
				}
				tail := cur.Points[len(cur.Points)-1]
				head := paths[j].Points[0]
				if tail.Distance(head) <= width {
					cur = SlicePath{Points: append(append([]Vec3{}, cur.Points...), paths[j].Points[1:]...), AABB: cur.AABB.Union(paths[j].AABB)}
					skip[j] = true
					merged = true
				}
			}
			out = append(out, cur)
		}
		paths = out
		if !merged {
			return paths
		}
		sort.SliceStable(paths, func(a, b int) bool {
			return paths[a].Points[0].At(hAxis) < paths[b].Points[0].At(hAxis)
		})
	}
}

// Next returns the next chained surface path, extending across as many
// consecutive strides as a geometrically adjacent segment can be found
// in, or false once every stride is exhausted.
func (it *SurfacePathIterator) Next() (SurfacePath, bool) {
	for it.cur < len(it.strides) && len(it.strides[it.cur].paths) == 0 {
		it.cur++
	}
	if it.cur >= len(it.strides) {
		return SurfacePath{}, false
	}

	s := &it.strides[it.cur]
	chain := s.paths[len(s.paths)-1]
	s.paths = s.paths[:len(s.paths)-1]

	prevIndex := s.index
	for k := it.cur + 1; k < len(it.strides); k++ {
		next := &it.strides[k]
		if next.index != prevIndex+1 {
			break
		}
		candIdx, ok := nearestOverlapping(next.paths, chain, it.hAxis, it.eps)
		if !ok {
			break
		}
		cand := next.paths[candIdx]
		next.paths = append(next.paths[:candIdx], next.paths[candIdx+1:]...)
		chain = joinNearestEnds(chain, cand)
		prevIndex = next.index
	}

	return SurfacePath{Points: chain.Points}, true
}

// nearestOverlapping finds the candidate among paths whose horizontal
// extent along hAxis overlaps chain's, and whose nearest endpoint to
// chain is closest, per spec.md section 4.7's stride-merge rule.
func nearestOverlapping(paths []SlicePath, chain SlicePath, hAxis Axis, eps float64) (int, bool) {
	chainLo := chain.AABB.MinAt(hAxis)
	chainHi := chain.AABB.MaxAt(hAxis)

	best := -1
	bestDist := math.Inf(1)
	for i, cand := range paths {
		lo := cand.AABB.MinAt(hAxis)
		hi := cand.AABB.MaxAt(hAxis)
		overlaps := (hi > chainLo || relativeEqEps(hi, chainLo, eps)) &&
			(lo < chainHi || relativeEqEps(lo, chainHi, eps))
		if !overlaps {
			continue
		}
		d := nearestEndDistance(chain, cand)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// nearestEndDistance returns the smallest distance between either end of
// a and either end of b.
func nearestEndDistance(a, b SlicePath) float64 {
	aStart, aEnd := a.Points[0], a.Points[len(a.Points)-1]
	bStart, bEnd := b.Points[0], b.Points[len(b.Points)-1]
	d := aEnd.Distance(bStart)
	if v := aEnd.Distance(bEnd); v < d {
		d = v
	}
	if v := aStart.Distance(bStart); v < d {
		d = v
	}
	if v := aStart.Distance(bEnd); v < d {
		d = v
	}
	return d
}

// joinNearestEnds appends all of b's points after a's end, first reversing
// b when its end lies nearer to a's end than its start does; a is never
// reversed. The result's AABB is the union of both.
func joinNearestEnds(a, b SlicePath) SlicePath {
	aEnd := a.Points[len(a.Points)-1]
	bStart, bEnd := b.Points[0], b.Points[len(b.Points)-1]
	box := a.AABB.Union(b.AABB)

	if aEnd.Distance(bEnd) < aEnd.Distance(bStart) {
		b = reversePath(b)
	}
	points := append(append([]Vec3{}, a.Points...), b.Points...)
	return SlicePath{Points: points, AABB: box}
}

func reversePath(p SlicePath) SlicePath {
	n := len(p.Points)
	reversed := make([]Vec3, n)
	for i, pt := range p.Points {
		reversed[n-1-i] = pt
	}
	return SlicePath{Points: reversed, Closed: p.Closed}
}
