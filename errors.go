package xycut

import "errors"

// ErrInvalidRectangle is returned when an element's Bounds() reports
// x1>x2, y1>y2, or a NaN coordinate.
var ErrInvalidRectangle = errors.New("xycut: invalid rectangle")

// ErrDuplicateID is returned when two input elements share an id.
var ErrDuplicateID = errors.New("xycut: duplicate element id")
