package xycut

// Tracer receives diagnostic events from the segmenter and re-insertion
// engine. It is an optional, opt-in ambient hook: the default engine
// uses a no-op implementation and pays no cost for tracing it doesn't
// need. Implement it to log or collect cut and insertion decisions,
// e.g. for debugging a layout the engine orders unexpectedly.
type Tracer interface {
	// CutAttempted reports a projection-segmenter cut attempt. axis is
	// "horizontal" or "vertical"; accepted reports whether a
	// qualifying gap was found and the region was split.
	CutAttempted(axis string, elementCount int, gapWidth float64, accepted bool)

	// ElementInserted reports a re-insertion decision: the masked
	// element id, the anchor id it was placed next to (after it for
	// "iou"; before or after it for "spanning" and "column", depending
	// on whether the element sits above the anchor), and the rule that
	// decided it ("iou", "spanning", or "column").
	ElementInserted(maskedID, anchorID int, rule string)
}

// noopTracer discards every event. It is the zero-cost default.
type noopTracer struct{}

func (noopTracer) CutAttempted(axis string, elementCount int, gapWidth float64, accepted bool) {}
func (noopTracer) ElementInserted(maskedID, anchorID int, rule string)                         {}
