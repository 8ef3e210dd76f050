package xycut

import (
	"math"
	"sort"

	"github.com/tsawler/xycut/geometry"
)

// densityRatioCutoff and largeGroupCutoff are the fixed thresholds
// used to choose the initial cut axis.
const (
	densityRatioCutoff = 0.9
	largeGroupCutoff   = 10
)

// cutAxis is the projection axis a recursive cut operates on.
// axisVertical splits left/right using an x-projection histogram
// (separating columns); axisHorizontal splits top/bottom using a
// y-projection histogram (separating rows).
type cutAxis int

const (
	axisHorizontal cutAxis = iota
	axisVertical
)

func (a cutAxis) toggled() cutAxis {
	if a == axisHorizontal {
		return axisVertical
	}
	return axisHorizontal
}

// segment orders the regular set via density-driven recursive
// projection segmentation and returns a flat ordered list of ids.
// crossLayout is the subset of masked elements with effective label
// CrossLayout, used only to compute the density ratio that picks the
// initial axis.
func segment(regular, crossLayout []elementView, region geometry.Rectangle, cfg Config) []int {
	if len(regular) == 0 {
		return nil
	}

	initial := axisHorizontal
	if densityRatio(crossLayout, regular) > densityRatioCutoff || len(regular) > largeGroupCutoff {
		initial = axisVertical
	}

	return cut(region, regular, initial, cfg)
}

// densityRatio computes τ_d = S_c / max(S_s, ε), the ratio of total
// width/height "stretch" of cross-layout elements to the rest. Returns
// +Inf when S_s is zero.
func densityRatio(crossLayout, rest []elementView) float64 {
	sc := stretchSum(crossLayout)
	ss := stretchSum(rest)
	if ss == 0 {
		return math.Inf(1)
	}
	const epsilon = 1e-9
	return sc / math.Max(ss, epsilon)
}

func stretchSum(elements []elementView) float64 {
	const epsilon = 1e-9
	total := 0.0
	for _, e := range elements {
		h := e.height()
		if h <= 0 {
			h = epsilon
		}
		total += e.width() / h
	}
	return total
}

// cut recursively segments elements within region along axis:
// project onto the axis, find the widest qualifying whitespace gap,
// split there, and recurse on each half with the axis toggled. Falls
// back to a row/column sort when no gap qualifies.
func cut(region geometry.Rectangle, elements []elementView, axis cutAxis, cfg Config) []int {
	if len(elements) == 0 {
		return nil
	}
	if len(elements) == 1 {
		return []int{elements[0].id}
	}

	binWidth := 1.0 / cfg.HistogramResolutionScale
	lo, hi := axisRange(region, axis)
	numBins := int(math.Ceil((hi - lo) / binWidth))
	if numBins < 1 {
		numBins = 1
	}

	histogram := buildHistogram(elements, axis, lo, binWidth, numBins)
	minGapBins := int(math.Ceil(cfg.MinCutThreshold / binWidth))

	regionCenter := (lo + hi) / 2
	gapStart, gapLen, found := widestGap(histogram, minGapBins, lo, binWidth, regionCenter)

	tracer := cfg.tracer()

	if !found {
		tracer.CutAttempted(axisName(axis), len(elements), 0, false)
		return fallbackSort(elements, cfg.SameRowTolerance)
	}

	gapWidth := float64(gapLen) * binWidth
	midpoint := lo + (float64(gapStart)+float64(gapLen)/2)*binWidth

	before, after := splitAt(elements, axis, midpoint)
	if len(before) == 0 || len(after) == 0 {
		// Degenerate split (all elements land on one side); fall back
		// rather than recursing forever on an unchanged set.
		tracer.CutAttempted(axisName(axis), len(elements), gapWidth, false)
		return fallbackSort(elements, cfg.SameRowTolerance)
	}
	tracer.CutAttempted(axisName(axis), len(elements), gapWidth, true)

	beforeRegion, afterRegion := splitRegion(region, axis, midpoint)

	result := cut(beforeRegion, before, axis.toggled(), cfg)
	result = append(result, cut(afterRegion, after, axis.toggled(), cfg)...)
	return result
}

func axisName(a cutAxis) string {
	if a == axisVertical {
		return "vertical"
	}
	return "horizontal"
}

// axisRange returns the region's coordinate range along axis: the X
// range for a vertical cut, the Y range for a horizontal cut.
func axisRange(region geometry.Rectangle, axis cutAxis) (lo, hi float64) {
	if axis == axisVertical {
		return region.X1, region.X2
	}
	return region.Y1, region.Y2
}

func elementSpan(e elementView, axis cutAxis) (lo, hi float64) {
	if axis == axisVertical {
		return e.rect.X1, e.rect.X2
	}
	return e.rect.Y1, e.rect.Y2
}

func elementAxisCenter(e elementView, axis cutAxis) float64 {
	if axis == axisVertical {
		return e.centerX()
	}
	return e.centerY()
}

// buildHistogram counts, for each bin, how many elements' projected
// span on axis covers that bin.
func buildHistogram(elements []elementView, axis cutAxis, lo, binWidth float64, numBins int) []int {
	histogram := make([]int, numBins)
	for _, e := range elements {
		spanLo, spanHi := elementSpan(e, axis)
		startBin := int(math.Floor((spanLo - lo) / binWidth))
		endBin := int(math.Ceil((spanHi - lo) / binWidth))
		if startBin < 0 {
			startBin = 0
		}
		if endBin > numBins {
			endBin = numBins
		}
		for b := startBin; b < endBin; b++ {
			histogram[b]++
		}
	}
	return histogram
}

// widestGap finds the widest maximal run of zero bins with length at
// least minGapBins, breaking ties by proximity of the gap's midpoint
// to regionCenter.
func widestGap(histogram []int, minGapBins int, lo, binWidth, regionCenter float64) (start, length int, found bool) {
	bestStart, bestLen := -1, 0
	bestDist := math.Inf(1)

	runStart := -1
	consider := func(s, l int) {
		if l < minGapBins {
			return
		}
		mid := lo + (float64(s)+float64(l)/2)*binWidth
		dist := math.Abs(mid - regionCenter)
		if l > bestLen || (l == bestLen && dist < bestDist) {
			bestStart, bestLen, bestDist = s, l, dist
		}
	}

	for i, count := range histogram {
		if count == 0 {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		if runStart >= 0 {
			consider(runStart, i-runStart)
			runStart = -1
		}
	}
	if runStart >= 0 {
		consider(runStart, len(histogram)-runStart)
	}

	if bestStart < 0 {
		return 0, 0, false
	}
	return bestStart, bestLen, true
}

// splitAt partitions elements into those whose center lies strictly
// before midpoint on axis and the rest (center at or after midpoint).
func splitAt(elements []elementView, axis cutAxis, midpoint float64) (before, after []elementView) {
	for _, e := range elements {
		if elementAxisCenter(e, axis) < midpoint {
			before = append(before, e)
		} else {
			after = append(after, e)
		}
	}
	return before, after
}

func splitRegion(region geometry.Rectangle, axis cutAxis, midpoint float64) (before, after geometry.Rectangle) {
	if axis == axisVertical {
		before = geometry.Rectangle{X1: region.X1, Y1: region.Y1, X2: midpoint, Y2: region.Y2}
		after = geometry.Rectangle{X1: midpoint, Y1: region.Y1, X2: region.X2, Y2: region.Y2}
		return
	}
	before = geometry.Rectangle{X1: region.X1, Y1: region.Y1, X2: region.X2, Y2: midpoint}
	after = geometry.Rectangle{X1: region.X1, Y1: midpoint, X2: region.X2, Y2: region.Y2}
	return
}

// fallbackSort orders elements by row bucket (top to bottom) then by
// x1 within a row, when no qualifying projection gap exists.
func fallbackSort(elements []elementView, tolerance float64) []int {
	sorted := make([]elementView, len(elements))
	copy(sorted, elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].centerY() < sorted[j].centerY()
	})

	type row struct {
		refY     float64
		elements []elementView
	}
	var rows []row
	for _, e := range sorted {
		if len(rows) > 0 && math.Abs(e.centerY()-rows[len(rows)-1].refY) <= tolerance {
			rows[len(rows)-1].elements = append(rows[len(rows)-1].elements, e)
			continue
		}
		rows = append(rows, row{refY: e.centerY(), elements: []elementView{e}})
	}

	var result []int
	for _, r := range rows {
		row := r.elements
		sort.SliceStable(row, func(i, j int) bool {
			return row[i].rect.X1 < row[j].rect.X1
		})
		for _, e := range row {
			result = append(result, e.id)
		}
	}
	return result
}
