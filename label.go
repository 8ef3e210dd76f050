package xycut

// SemanticLabel classifies a page element for masking and re-insertion
// purposes. The numeric values are listed in re-insertion priority
// order (a lower value is never processed later), but the priority
// itself comes from [SemanticLabel.Priority]: HorizontalTitle and
// VerticalTitle have different values and share one priority tier.
type SemanticLabel int

const (
	// CrossLayout is an element that spans multiple columns.
	CrossLayout SemanticLabel = iota
	// HorizontalTitle is a horizontally laid section or page title.
	HorizontalTitle
	// VerticalTitle is a vertically laid title (rare).
	VerticalTitle
	// Vision is a figure, table, or image.
	Vision
	// Regular is body text.
	Regular
)

// String returns a human-readable name for the label.
func (l SemanticLabel) String() string {
	switch l {
	case CrossLayout:
		return "cross-layout"
	case HorizontalTitle:
		return "horizontal-title"
	case VerticalTitle:
		return "vertical-title"
	case Vision:
		return "vision"
	case Regular:
		return "regular"
	default:
		return "unknown"
	}
}

// Priority returns the label's re-insertion priority: CrossLayout
// first, then titles, then figures/tables, then everything else.
// Horizontal and vertical titles share a priority tier.
func (l SemanticLabel) Priority() int {
	switch l {
	case CrossLayout:
		return 0
	case HorizontalTitle, VerticalTitle:
		return 1
	case Vision:
		return 2
	default:
		return 3
	}
}

// distanceWeights holds the per-label multipliers μ applied to the
// base weight vector w_base = [h^2, h, 1, 1/h] in the four-component
// distance metric.
type distanceWeights struct {
	mu1, mu2, mu3, mu4 float64
}

var labelWeights = map[SemanticLabel]distanceWeights{
	CrossLayout:      {mu1: 1.0, mu2: 1.0, mu3: 0.1, mu4: 1.0},
	HorizontalTitle:  {mu1: 1.0, mu2: 0.1, mu3: 0.1, mu4: 1.0},
	VerticalTitle:    {mu1: 0.2, mu2: 0.1, mu3: 1.0, mu4: 1.0},
	Vision:           {mu1: 1.0, mu2: 1.0, mu3: 1.0, mu4: 0.1},
	Regular:          {mu1: 1.0, mu2: 1.0, mu3: 1.0, mu4: 0.1},
}

func weightsFor(l SemanticLabel) distanceWeights {
	if w, ok := labelWeights[l]; ok {
		return w
	}
	return labelWeights[Regular]
}
