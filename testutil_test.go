package xycut

import "github.com/tsawler/xycut/geometry"

// testElement is a minimal Element implementation used across this
// package's tests.
type testElement struct {
	id             int
	x1, y1, x2, y2 float64
	label          SemanticLabel
	mask           bool
}

func elem(id int, x1, y1, x2, y2 float64, label SemanticLabel, mask bool) testElement {
	return testElement{id: id, x1: x1, y1: y1, x2: x2, y2: y2, label: label, mask: mask}
}

func (e testElement) ID() int { return e.id }

func (e testElement) Bounds() (float64, float64, float64, float64) {
	return e.x1, e.y1, e.x2, e.y2
}

func (e testElement) ShouldMask() bool { return e.mask }

func (e testElement) SemanticLabel() SemanticLabel { return e.label }

// view builds an unmasked elementView directly, for tests that
// exercise premask/segment/reinsert/distance internals below the
// Element interface.
func view(id int, x1, y1, x2, y2 float64, label SemanticLabel) elementView {
	return elementView{id: id, rect: geometry.New(x1, y1, x2, y2), label: label}
}

// maskedView builds an elementView already flagged masked, as classify
// would leave it.
func maskedView(id int, x1, y1, x2, y2 float64, label SemanticLabel) elementView {
	v := view(id, x1, y1, x2, y2, label)
	v.masked = true
	return v
}

func idsOf(views []elementView) []int {
	ids := make([]int, len(views))
	for i, v := range views {
		ids[i] = v.id
	}
	return ids
}
