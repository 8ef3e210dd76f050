package xycut

import (
	"math"
	"sort"

	"github.com/tsawler/xycut/geometry"
)

// spanningWidthRatio is the fraction of page width above which a
// masked element is treated as column-spanning during re-insertion.
const spanningWidthRatio = 0.6

// reinsertState tracks the working order and a lookup of every placed
// element (regular and masked-so-far), keyed by id.
type reinsertState struct {
	order []int
	byID  map[int]elementView
}

func (s *reinsertState) priorityOf(id int) int {
	return s.byID[id].label.Priority()
}

func (s *reinsertState) insertAfter(anchorID, newID int) {
	for i, id := range s.order {
		if id == anchorID {
			s.order = append(s.order, 0)
			copy(s.order[i+2:], s.order[i+1:])
			s.order[i+1] = newID
			return
		}
	}
	s.order = append(s.order, newID)
}

func (s *reinsertState) insertBefore(anchorID, newID int) {
	for i, id := range s.order {
		if id == anchorID {
			s.order = append(s.order, 0)
			copy(s.order[i+1:], s.order[i:])
			s.order[i] = newID
			return
		}
	}
	s.order = append(s.order, newID)
}

// insertRelative places m adjacent to anchor: before it if m sits
// above anchor on the page (smaller center_y), after it otherwise. A
// title chosen for its proximity to the column below it still belongs
// ahead of that column in reading order, so the side is resolved from
// relative position rather than always trailing the anchor.
func (s *reinsertState) insertRelative(anchorID, newID int, m elementView) {
	if m.centerY() < s.byID[anchorID].centerY() {
		s.insertBefore(anchorID, newID)
		return
	}
	s.insertAfter(anchorID, newID)
}

// reinsert places masked elements into the segmented regular order.
// page is the page rectangle, used to test the spanning-width rule.
func reinsert(regularOrder []int, regular, masked []elementView, page geometry.Rectangle, cfg Config) []int {
	state := &reinsertState{
		order: append([]int(nil), regularOrder...),
		byID:  make(map[int]elementView, len(regular)+len(masked)),
	}
	for _, e := range regular {
		state.byID[e.id] = e
	}

	ordered := orderMaskedByPriority(masked)
	tracer := cfg.tracer()
	pageWidth := page.Width()

	for _, m := range ordered {
		candidates := legalCandidates(state, m.label.Priority())

		if len(candidates) == 0 {
			state.order = append(state.order, m.id)
			state.byID[m.id] = m
			continue
		}

		if anchor, ok := iouShortcut(state, m, candidates); ok {
			state.insertAfter(anchor, m.id)
			tracer.ElementInserted(m.id, anchor, "iou")
			state.byID[m.id] = m
			continue
		}

		if m.width() > spanningWidthRatio*pageWidth {
			anchor := bestSpanningAnchor(state, m, candidates)
			state.insertRelative(anchor, m.id, m)
			tracer.ElementInserted(m.id, anchor, "spanning")
			state.byID[m.id] = m
			continue
		}

		anchor := bestColumnAnchor(state, m, candidates)
		state.insertRelative(anchor, m.id, m)
		tracer.ElementInserted(m.id, anchor, "column")
		state.byID[m.id] = m
	}

	return state.order
}

// orderMaskedByPriority sorts masked elements ascending by priority
// (CrossLayout first, then titles, then Vision, then any remaining),
// and within a priority tier by (center_y, center_x).
func orderMaskedByPriority(masked []elementView) []elementView {
	sorted := make([]elementView, len(masked))
	copy(sorted, masked)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi, pj := sorted[i].label.Priority(), sorted[j].label.Priority()
		if pi != pj {
			return pi < pj
		}
		if sorted[i].centerY() != sorted[j].centerY() {
			return sorted[i].centerY() < sorted[j].centerY()
		}
		return sorted[i].centerX() < sorted[j].centerX()
	})
	return sorted
}

// legalCandidates returns the ids currently in the working order whose
// effective priority is equal to or lower (numerically >=) than p, in
// their current O order.
func legalCandidates(state *reinsertState, p int) []int {
	var candidates []int
	for _, id := range state.order {
		if state.priorityOf(id) >= p {
			candidates = append(candidates, id)
		}
	}
	return candidates
}

// iouShortcut returns the first legal candidate, in O order, that has
// nonzero IoU with m.
func iouShortcut(state *reinsertState, m elementView, candidates []int) (anchor int, ok bool) {
	legal := make(map[int]bool, len(candidates))
	for _, id := range candidates {
		legal[id] = true
	}
	for _, id := range state.order {
		if !legal[id] {
			continue
		}
		if geometry.IoU(m.rect, state.byID[id].rect) > 0 {
			return id, true
		}
	}
	return 0, false
}

// bestSpanningAnchor picks the candidate minimizing |center_y(m) -
// center_y(c)| alone.
func bestSpanningAnchor(state *reinsertState, m elementView, candidates []int) int {
	best := candidates[0]
	bestDist := math.Abs(state.byID[best].centerY() - m.centerY())
	for _, id := range candidates[1:] {
		d := math.Abs(state.byID[id].centerY() - m.centerY())
		if betterAnchor(d, state.byID[id], bestDist, state.byID[best]) {
			best, bestDist = id, d
		}
	}
	return best
}

// bestColumnAnchor picks the candidate minimizing D(m, c) via the
// four-component distance metric.
func bestColumnAnchor(state *reinsertState, m elementView, candidates []int) int {
	best := candidates[0]
	bestDist := distance(m, state.byID[best], math.Inf(1))
	for _, id := range candidates[1:] {
		d := distance(m, state.byID[id], bestDist)
		if betterAnchor(d, state.byID[id], bestDist, state.byID[best]) {
			best, bestDist = id, d
		}
	}
	return best
}

// betterAnchor reports whether candidate c (distance d) should
// replace the incumbent best (distance bestDist), breaking ties on
// smaller center_y then smaller center_x.
func betterAnchor(d float64, c elementView, bestDist float64, best elementView) bool {
	if d != bestDist {
		return d < bestDist
	}
	if c.centerY() != best.centerY() {
		return c.centerY() < best.centerY()
	}
	return c.centerX() < best.centerX()
}
