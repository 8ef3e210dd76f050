package xycut

// Config holds tunable parameters for the reading-order engine. All
// fields have sensible defaults via [DefaultConfig]; the numeric
// constants fixed by the algorithm itself (median multiplier, overlap
// count, isolation radius, density ratio cutoff, and so on) are not
// exposed here because they are part of the algorithm's definition,
// not deployment tuning.
type Config struct {
	// MinCutThreshold is the minimum gap width, in coordinate units,
	// to accept a projection cut. Default: 15.0.
	MinCutThreshold float64

	// HistogramResolutionScale is the number of histogram bins per
	// coordinate unit; bin width is 1/scale. Default: 0.5 (one bin per
	// two units).
	HistogramResolutionScale float64

	// SameRowTolerance is the maximum difference in center-Y below
	// which two elements are grouped into the same row during the
	// projection fallback sort. Default: 10.0.
	SameRowTolerance float64

	// Tracer receives diagnostic events during segmentation and
	// re-insertion. Default: a no-op tracer.
	Tracer Tracer
}

// DefaultConfig returns the engine's default configuration.
func DefaultConfig() Config {
	return Config{
		MinCutThreshold:          15.0,
		HistogramResolutionScale: 0.5,
		SameRowTolerance:         10.0,
		Tracer:                   noopTracer{},
	}
}

func (c Config) tracer() Tracer {
	if c.Tracer == nil {
		return noopTracer{}
	}
	return c.Tracer
}
