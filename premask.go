package xycut

import (
	"math"
	"sort"

	"github.com/tsawler/xycut/geometry"
)

// Numeric constants fixed by the algorithm, not exposed for tuning.
const (
	medianWidthMultiplier  = 1.3
	crossLayoutMinOverlaps = 2
	isolationRadiusUnits   = 50.0
	centralRatioCutoff     = 0.2
)

// classify partitions elements into masked and regular sets by
// applying the mask hint, cross-layout promotion, and geometric
// isolation rules in order. It returns two new slices; the input slice
// is left untouched, and neither output aliases the other.
func classify(elements []elementView, page geometry.Rectangle) (masked, regular []elementView) {
	if len(elements) == 0 {
		return nil, nil
	}

	medianWidth := medianWidthOf(elements)
	widthThreshold := medianWidthMultiplier * medianWidth

	pageCX, pageCY := page.CenterX(), page.CenterY()
	pageDiagonal := page.Diagonal()

	for i := range elements {
		e := elements[i]

		// Rule 1: explicit mask hint.
		if e.shouldMaskHint {
			e.masked = true
		}

		// Rule 2: cross-layout promotion (Eq 1-2). Overrides any prior
		// label, explicit or not.
		if e.width() > widthThreshold && countHorizontalOverlaps(e, elements) >= crossLayoutMinOverlaps {
			e.masked = true
			e.label = CrossLayout
		}

		// Rule 3: geometric isolation (Eq 3), only if not already masked
		// and only for the label classes the rule applies to.
		if !e.masked && isIsolationCandidate(e.label) {
			cx, cy := e.centerX(), e.centerY()
			dx, dy := cx-pageCX, cy-pageCY
			distRatio := 0.0
			if pageDiagonal > 0 {
				distRatio = math.Sqrt(dx*dx+dy*dy) / pageDiagonal
			}

			if distRatio <= centralRatioCutoff && !hasNearbyText(e, elements) {
				e.masked = true
			}
		}

		if e.masked {
			masked = append(masked, e)
		} else {
			regular = append(regular, e)
		}
	}

	return masked, regular
}

func isIsolationCandidate(l SemanticLabel) bool {
	return l == Vision || l == HorizontalTitle || l == VerticalTitle
}

// countHorizontalOverlaps counts other elements whose horizontal span
// overlaps e's.
func countHorizontalOverlaps(e elementView, all []elementView) int {
	count := 0
	for _, other := range all {
		if other.id == e.id {
			continue
		}
		if geometry.HorizontalOverlap(e.rect, other.rect) {
			count++
		}
	}
	return count
}

// hasNearbyText reports whether any Regular-labeled element lies
// within isolationRadiusUnits of e's boundary, edge-to-edge rather than
// center-to-center, so a large isolated figure isn't disqualified by a
// caption sitting just past its own edge.
func hasNearbyText(e elementView, all []elementView) bool {
	for _, other := range all {
		if other.id == e.id || other.label != Regular {
			continue
		}
		if geometry.Distance(e.rect, other.rect) < isolationRadiusUnits {
			return true
		}
	}
	return false
}

// medianWidthOf returns the median width across elements, using the
// exact middle for an odd count or the mean of the two middles for an
// even count.
func medianWidthOf(elements []elementView) float64 {
	if len(elements) == 0 {
		return 0
	}

	widths := make([]float64, len(elements))
	for i, e := range elements {
		widths[i] = e.width()
	}
	sort.Float64s(widths)

	n := len(widths)
	if n%2 == 1 {
		return widths[n/2]
	}
	return (widths[n/2-1] + widths[n/2]) / 2
}
