// Package slicer is the core of a non-planar 3D-printer slicer.
//
// # Overview
//
// Given a watertight triangle mesh (the part) and a small options record,
// the core produces a sequence of planar wall rings and non-planar surface
// paths ordered so that a wall segment sitting in the overhang "shadow" of
// a downward-facing surface is never printed before that surface.
//
// # Quick Start
//
//	import "github.com/nonplanar/slicer"
//
//	result, err := slicer.Run(slicer.Options{
//		Positions:            positions, // flat xyzxyzxyz..., one triangle per 9 floats
//		LayerHeight:          0.2,
//		MaxAngle:             0.35, // radians
//		NozzleDiameter:       0.4,
//		MinSurfacePathLength: 1.0,
//	})
//
// # Architecture
//
// The package is organized into:
//   - Geometry primitives: Vec3, AABB, Line3, Triangle, Axis
//   - Spatial index: Mesh, BVH
//   - Planar slicing: BaseSlice, SlicePath (ring assembly), outline
//     extraction
//   - Surface handling: connected-component splitting, the
//     SurfacePathIterator
//   - Occlusion: the infinite-cone SDF and its BVH-pruned traversal
//   - Ordering: the dependency scheduler (Schedule)
//
// # Concurrency
//
// The core is single-threaded and non-suspending: Run performs no I/O, no
// goroutines, and returns synchronously. Cancellation is a host concern —
// run Run on a cancellable goroutine and discard the result.
//
// # Scope
//
// Out of scope: binary marshalling of the result for a host boundary,
// CLI/config loading, progress reporting to a UI, gcode emission, and mesh
// repair. Run accepts a flat triangle soup and returns typed polylines;
// everything past that is a host concern.
package slicer
