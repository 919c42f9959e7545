package slicer

import "log/slog"

// DefaultEpsilon is the relative-epsilon tolerance used throughout the
// core (vertex matching, ring closure, stride merging) unless overridden
// with WithEpsilon. Positions arrive as float32, so a tolerance looser
// than float32 machine epsilon is used to absorb round-tripping error.
const DefaultEpsilon = 1e-6

// Options is the input record for Run. It is a plain struct rather than a
// functional-options type: every field is mandatory and part of the
// slicing contract.
type Options struct {
	// Positions is a flat sequence of vertex coordinates, length a
	// multiple of 9. Every nine floats form one triangle: v0.xyz, v1.xyz,
	// v2.xyz.
	Positions []float32

	// LayerHeight is the planar slicing step, strictly positive, in the
	// mesh's units.
	LayerHeight float64

	// MaxAngle is the threshold, in radians, for classifying a triangle
	// as a surface triangle: its normal's angle to +Z must be <=
	// MaxAngle (inclusive, within DefaultEpsilon/WithEpsilon).
	MaxAngle float64

	// NozzleDiameter is strictly positive. It is used both as the
	// surface stripe width and as the unit of the minimum-area filter
	// (pi*(d/2)^2) applied when splitting surfaces.
	NozzleDiameter float64

	// MinSurfacePathLength is the non-negative accumulated-length
	// threshold below which a stripe sub-path is discarded.
	MinSurfacePathLength float64
}

// runConfig holds the ambient knobs that Run itself doesn't need to expose
// on Options because they aren't part of the slicing contract.
type runConfig struct {
	logger               *slog.Logger
	epsilon              float64
	includeSurfaceVisual bool
}

func defaultRunConfig() runConfig {
	return runConfig{
		logger:  Logger(),
		epsilon: DefaultEpsilon,
	}
}

// RunOption configures ambient behavior of a single Run call.
type RunOption func(*runConfig)

// WithLogger scopes a logger to a single Run call without mutating the
// package-level logger installed via SetLogger.
func WithLogger(l *slog.Logger) RunOption {
	return func(c *runConfig) {
		if l == nil {
			l = newNopLogger()
		}
		c.logger = l
	}
}

// WithEpsilon overrides the relative-epsilon tolerance used for vertex
// matching, ring closure, and stride merging. The zero value is rejected
// silently in favor of DefaultEpsilon.
func WithEpsilon(eps float64) RunOption {
	return func(c *runConfig) {
		if eps > 0 {
			c.epsilon = eps
		}
	}
}

// WithSurfaceVisualization additionally emits each surface component's
// raw triangulation as a Surface-tagged output entry, for hosts that want
// to visualize the surfaces the scheduler reasoned about. Off by default
// since most hosts only need the Ring/Path toolpath output.
func WithSurfaceVisualization(on bool) RunOption {
	return func(c *runConfig) {
		c.includeSurfaceVisual = on
	}
}
