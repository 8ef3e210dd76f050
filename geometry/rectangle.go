// Package geometry provides axis-aligned rectangle math for the reading
// order engine: intersection, union, center, IoU, and the row/column
// overlap tests the segmenter and distance metric build on.
package geometry

import "math"

// Rectangle is an axis-aligned box with x1<=x2 and y1<=y2. Y grows
// downward, matching the screen coordinate convention detected page
// elements are reported in.
type Rectangle struct {
	X1, Y1, X2, Y2 float64
}

// New creates a Rectangle from two corners, normalizing so X1<=X2 and
// Y1<=Y2 regardless of the order the corners are given in.
func New(x1, y1, x2, y2 float64) Rectangle {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Rectangle{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Valid reports whether the rectangle satisfies X1<=X2 and Y1<=Y2.
func (r Rectangle) Valid() bool {
	return r.X1 <= r.X2 && r.Y1 <= r.Y2
}

// Width returns X2-X1.
func (r Rectangle) Width() float64 {
	return r.X2 - r.X1
}

// Height returns Y2-Y1.
func (r Rectangle) Height() float64 {
	return r.Y2 - r.Y1
}

// Center returns the rectangle's midpoint.
func (r Rectangle) Center() (x, y float64) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// CenterX returns the X coordinate of the rectangle's midpoint.
func (r Rectangle) CenterX() float64 {
	return (r.X1 + r.X2) / 2
}

// CenterY returns the Y coordinate of the rectangle's midpoint.
func (r Rectangle) CenterY() float64 {
	return (r.Y1 + r.Y2) / 2
}

// Area returns the rectangle's area, zero for degenerate rectangles.
func (r Rectangle) Area() float64 {
	w, h := r.Width(), r.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rectangle) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// IntersectionWidth returns the width of the overlap between a and b
// on the X axis, zero when they don't overlap.
func IntersectionWidth(a, b Rectangle) float64 {
	w := math.Min(a.X2, b.X2) - math.Max(a.X1, b.X1)
	if w < 0 {
		return 0
	}
	return w
}

// IntersectionHeight returns the height of the overlap between a and b
// on the Y axis, zero when they don't overlap.
func IntersectionHeight(a, b Rectangle) float64 {
	h := math.Min(a.Y2, b.Y2) - math.Max(a.Y1, b.Y1)
	if h < 0 {
		return 0
	}
	return h
}

// Intersects reports whether a and b overlap with nonzero area.
func Intersects(a, b Rectangle) bool {
	return IntersectionWidth(a, b) > 0 && IntersectionHeight(a, b) > 0
}

// Intersection returns the overlapping region of a and b. The result
// is a degenerate (zero-area) rectangle when a and b don't overlap.
func Intersection(a, b Rectangle) Rectangle {
	x1 := math.Max(a.X1, b.X1)
	y1 := math.Max(a.Y1, b.Y1)
	x2 := math.Min(a.X2, b.X2)
	y2 := math.Min(a.Y2, b.Y2)
	if x2 < x1 {
		x2 = x1
	}
	if y2 < y1 {
		y2 = y1
	}
	return Rectangle{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Union returns the smallest rectangle enclosing both a and b.
func Union(a, b Rectangle) Rectangle {
	return Rectangle{
		X1: math.Min(a.X1, b.X1),
		Y1: math.Min(a.Y1, b.Y1),
		X2: math.Max(a.X2, b.X2),
		Y2: math.Max(a.Y2, b.Y2),
	}
}

// IoU returns the intersection-over-union of a and b, defined as 0
// when the union area is 0.
func IoU(a, b Rectangle) float64 {
	inter := Intersection(a, b).Area()
	if inter == 0 {
		return 0
	}
	unionArea := a.Area() + b.Area() - inter
	if unionArea <= 0 {
		return 0
	}
	return inter / unionArea
}

// HorizontalOverlap reports whether a and b's X spans overlap.
func HorizontalOverlap(a, b Rectangle) bool {
	return a.X1 < b.X2 && a.X2 > b.X1
}

// VerticalOverlap reports whether a and b's Y spans overlap.
func VerticalOverlap(a, b Rectangle) bool {
	return a.Y1 < b.Y2 && a.Y2 > b.Y1
}

// SameRow reports whether a and b's centers lie within tolerance on
// the Y axis.
func SameRow(a, b Rectangle, tolerance float64) bool {
	return math.Abs(a.CenterY()-b.CenterY()) <= tolerance
}

// Distance returns the Euclidean edge-to-edge distance between a and
// b, zero when they overlap.
func Distance(a, b Rectangle) float64 {
	dx := 0.0
	if a.X2 < b.X1 {
		dx = b.X1 - a.X2
	} else if b.X2 < a.X1 {
		dx = a.X1 - b.X2
	}

	dy := 0.0
	if a.Y2 < b.Y1 {
		dy = b.Y1 - a.Y2
	} else if b.Y2 < a.Y1 {
		dy = a.Y1 - b.Y2
	}

	return math.Sqrt(dx*dx + dy*dy)
}

// Diagonal returns the length of the rectangle's diagonal.
func (r Rectangle) Diagonal() float64 {
	return math.Sqrt(r.Width()*r.Width() + r.Height()*r.Height())
}
