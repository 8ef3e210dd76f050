package xycut

import "github.com/tsawler/xycut/geometry"

// Element is the capability interface the engine consumes from the
// caller. Implementations own their rectangle and label data; the
// engine never mutates values it reads through this interface. Center
// and IoU are deliberately not part of this interface: every geometric
// fact the engine needs is derived internally from Bounds() via the
// geometry package, so the whole pipeline stays consistent with one
// rectangle instead of trusting a caller-supplied center or overlap
// figure that might disagree with it.
type Element interface {
	// ID returns a stable identifier, unique within one Compute call.
	ID() int

	// Bounds returns the element's rectangle as (x1, y1, x2, y2), with
	// x1<=x2 and y1<=y2.
	Bounds() (x1, y1, x2, y2 float64)

	// ShouldMask is a caller-supplied hint: true for elements that are
	// conventionally masked before segmentation (titles, figures,
	// tables).
	ShouldMask() bool

	// SemanticLabel returns the element's coarse class.
	SemanticLabel() SemanticLabel
}

// elementView is the engine's internal, cheap-to-copy handle on a
// caller Element: its id, rectangle, and label, snapshotted once at
// Compute entry. The pre-mask phase attaches mutable book-keeping
// (effective label, mask state) to this copy rather than
// touching the caller's Element again, per the "element identity vs
// ownership" guidance: no references into caller memory are retained
// beyond the scalar/geometric fields needed to run the algorithm.
type elementView struct {
	id             int
	rect           geometry.Rectangle
	label          SemanticLabel // effective label, possibly promoted to CrossLayout
	shouldMaskHint bool
	masked         bool
}

// newElementView snapshots e, rejecting a rectangle whose raw Bounds()
// tuple violates x1<=x2 && y1<=y2 before geometry.New ever sees it.
// geometry.New sorts its inputs into a valid Rectangle unconditionally,
// so validating after construction can never catch a genuinely swapped
// rectangle: only checking the caller's raw tuple first does.
func newElementView(e Element) (elementView, error) {
	x1, y1, x2, y2 := e.Bounds()
	if !(x1 <= x2 && y1 <= y2) {
		return elementView{}, ErrInvalidRectangle
	}
	return elementView{
		id:             e.ID(),
		rect:           geometry.New(x1, y1, x2, y2),
		label:          e.SemanticLabel(),
		shouldMaskHint: e.ShouldMask(),
	}, nil
}

func (v elementView) width() float64  { return v.rect.Width() }
func (v elementView) height() float64 { return v.rect.Height() }

func (v elementView) centerX() float64 { return v.rect.CenterX() }
func (v elementView) centerY() float64 { return v.rect.CenterY() }
