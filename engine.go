package xycut

import (
	"fmt"

	"github.com/tsawler/xycut/geometry"
)

// Engine computes reading order for a page of labeled rectangles. It
// holds only its configuration; Compute allocates all working state
// per call and is safe to call concurrently on disjoint inputs.
type Engine struct {
	config Config
}

// NewEngine creates an Engine with default configuration.
func NewEngine() *Engine {
	return &Engine{config: DefaultConfig()}
}

// NewEngineWithConfig creates an Engine with custom configuration.
func NewEngineWithConfig(config Config) *Engine {
	return &Engine{config: config}
}

// Compute returns the input elements' ids in reading order. The page
// rectangle is given as (xMin, yMin, xMax, yMax) and encloses every
// element.
//
// An empty elements slice returns (nil, nil). Every other error case
// (an invalid rectangle, or a duplicate id) is reported before any
// phase of the algorithm runs; no partial results are ever returned.
func (e *Engine) Compute(elements []Element, xMin, yMin, xMax, yMax float64) ([]int, error) {
	if len(elements) == 0 {
		return nil, nil
	}

	views, err := validateAndSnapshot(elements)
	if err != nil {
		return nil, err
	}

	page := geometry.New(xMin, yMin, xMax, yMax)

	masked, regular := classify(views, page)

	regularOrder := segment(regular, crossLayoutOnly(masked), page, e.config)
	if len(masked) == 0 {
		return regularOrder, nil
	}

	return reinsert(regularOrder, regular, masked, page, e.config), nil
}

// validateAndSnapshot copies every caller Element into an elementView
// and rejects invalid rectangles or duplicate ids before the algorithm
// sees any of it.
func validateAndSnapshot(elements []Element) ([]elementView, error) {
	views := make([]elementView, len(elements))
	seen := make(map[int]bool, len(elements))

	for i, el := range elements {
		v, err := newElementView(el)
		if err != nil {
			return nil, fmt.Errorf("xycut: element %d: %w", el.ID(), err)
		}
		if seen[v.id] {
			return nil, fmt.Errorf("xycut: element %d: %w", v.id, ErrDuplicateID)
		}
		seen[v.id] = true

		views[i] = v
	}

	return views, nil
}

func crossLayoutOnly(masked []elementView) []elementView {
	var out []elementView
	for _, m := range masked {
		if m.label == CrossLayout {
			out = append(out, m)
		}
	}
	return out
}
