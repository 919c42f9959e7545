package slicer

import (
	"container/list"
	"log/slog"
	"sort"
)

// surfaceState tracks one surface component's scheduling lifecycle: the
// points of each wall it has occluded so far, carried until the surface
// itself is emitted.
type surfaceState struct {
	mesh      *Mesh
	minZ      float64
	heldWalls []SlicePath
}

// Schedule interleaves wall rings (from baseSlices) with surface
// components, per spec.md section 4.9. Surfaces move through three
// disjoint sets as the wall deque drains: pending (not yet activated,
// ordered by min.z ascending), active (activated, each accumulating its
// own held_walls), and emitted. A surface activates once some wall's top
// reaches its own minimum z, and stays active — holding whichever wall
// points its occlusion cone blocks — until a later wall's bottom clears
// its own maximum z; only then is it emitted, with its held points
// re-queued at the front of the wall deque for reprocessing (original_source's
// scheduler re-queue rule), since the overhang that was blocking them is
// gone.
func Schedule(baseSlices []BaseSlice, components []*Mesh, strideAxis Axis, nozzleDiameter, maxAngle, eps float64, logger *slog.Logger) []SlicePath {
	pending := make([]*surfaceState, len(components))
	for i, m := range components {
		pending[i] = &surfaceState{mesh: m, minZ: m.AABB.Min.Z}
	}
	sort.SliceStable(pending, func(i, j int) bool { return pending[i].minZ < pending[j].minZ })

	deque := list.New()
	for _, bs := range baseSlices {
		for _, ring := range bs.Rings {
			deque.PushBack(ring)
		}
	}

	var active []*surfaceState
	var output []SlicePath

	emit := func(s *surfaceState) {
		output = append(output, OutlineSurface(s.mesh, eps, logger)...)
		it := NewSurfacePathIterator(s.mesh, strideAxis, nozzleDiameter, eps, logger)
		for {
			sp, ok := it.Next()
			if !ok {
				break
			}
			output = append(output, SlicePath{Points: sp.Points})
		}
		for _, held := range s.heldWalls {
			deque.PushFront(held)
		}
	}

	for deque.Len() > 0 {
		front := deque.Front()
		deque.Remove(front)
		w := front.Value.(SlicePath)

		// Step 2: activate every pending surface whose min.z has been
		// reached by this wall's top.
		for len(pending) > 0 && pending[0].minZ <= w.AABB.Max.Z+eps {
			active = append(active, pending[0])
			pending = pending[1:]
		}

		// Step 3: deactivate (emit) every active surface this wall has
		// already cleared.
		stillActive := active[:0:0]
		for _, s := range active {
			if s.mesh.AABB.Max.Z < w.AABB.Min.Z-eps {
				emit(s)
			} else {
				stillActive = append(stillActive, s)
			}
		}
		active = stillActive

		// Step 4: split w's points between whichever still-active
		// surfaces occlude them, in order, and whatever remains free.
		remaining := w.Points
		for _, s := range active {
			var free, held []Vec3
			for _, p := range remaining {
				if Occluded(s.mesh, p, maxAngle, eps) {
					held = append(held, p)
				} else {
					free = append(free, p)
				}
			}
			if len(held) > 0 {
				s.heldWalls = append(s.heldWalls, SlicePath{Points: held, AABB: w.AABB})
			}
			remaining = free
		}

		// Step 5: whatever's left of w is emitted now.
		if len(remaining) > 0 {
			closed := w.Closed && len(remaining) == len(w.Points)
			output = append(output, SlicePath{Points: remaining, Closed: closed})
		}
	}

	// The wall deque is exhausted: drain every surface still active, and
	// any surface no wall ever reached (its min.z lies above every wall's
	// top) along with it, so nothing silently goes unprinted. No surface
	// is left to occlude them, so the held walls each emission re-queues
	// are output right after that surface.
	active = append(active, pending...)
	pending = nil
	for _, s := range active {
		emit(s)
		for deque.Len() > 0 {
			front := deque.Front()
			deque.Remove(front)
			output = append(output, front.Value.(SlicePath))
		}
	}

	return output
}
