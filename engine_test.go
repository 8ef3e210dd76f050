package xycut

import (
	"errors"
	"math"
	"testing"
)

func TestEngineComputeSingleColumn(t *testing.T) {
	// S1
	elements := []Element{
		elem(0, 10, 10, 90, 90, Regular, false),
		elem(1, 10, 110, 90, 190, Regular, false),
		elem(2, 10, 210, 90, 290, Regular, false),
	}
	got, err := NewEngine().Compute(elements, 0, 0, 100, 300)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	assertIntSlice(t, got, []int{0, 1, 2})
}

func TestEngineComputeTwoColumns(t *testing.T) {
	// S2
	elements := []Element{
		elem(0, 10, 10, 90, 190, Regular, false),
		elem(1, 110, 10, 190, 190, Regular, false),
	}
	got, err := NewEngine().Compute(elements, 0, 0, 200, 200)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	assertIntSlice(t, got, []int{0, 1})
}

func TestEngineComputeSpanningTitle(t *testing.T) {
	// S3
	elements := []Element{
		elem(0, 10, 10, 190, 40, HorizontalTitle, true),
		elem(1, 10, 60, 90, 290, Regular, false),
		elem(2, 110, 60, 190, 290, Regular, false),
	}
	got, err := NewEngine().Compute(elements, 0, 0, 200, 300)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	assertIntSlice(t, got, []int{0, 1, 2})
}

func TestEngineComputeFigureBetweenColumns(t *testing.T) {
	// S4
	elements := []Element{
		elem(0, 10, 10, 90, 180, Regular, false),
		elem(1, 110, 10, 190, 180, Regular, false),
		elem(2, 40, 200, 160, 320, Vision, true),
		elem(3, 10, 340, 90, 390, Regular, false),
		elem(4, 110, 340, 190, 390, Regular, false),
	}
	got, err := NewEngine().Compute(elements, 0, 0, 200, 400)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	assertIntSlice(t, got, []int{0, 1, 2, 3, 4})
}

func TestEngineComputeCrossLayoutPromotion(t *testing.T) {
	// S5: a wide banner overlapping >=2 columns is promoted and treated
	// as a spanning element even without an explicit mask hint.
	elements := []Element{
		elem(0, 0, 10, 290, 40, Regular, false),
		elem(1, 10, 60, 90, 190, Regular, false),
		elem(2, 110, 60, 190, 190, Regular, false),
		elem(3, 210, 60, 290, 190, Regular, false),
	}
	got, err := NewEngine().Compute(elements, 0, 0, 300, 200)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	assertIntSlice(t, got, []int{0, 1, 2, 3})
}

func TestEngineComputeDuplicateID(t *testing.T) {
	// S6
	elements := []Element{
		elem(0, 10, 10, 90, 90, Regular, false),
		elem(0, 110, 10, 190, 90, Regular, false),
	}
	_, err := NewEngine().Compute(elements, 0, 0, 200, 100)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("Compute() error = %v, want ErrDuplicateID", err)
	}
}

func TestEngineComputeInvalidRectangle(t *testing.T) {
	elements := []Element{
		elem(0, math.NaN(), 10, 90, 90, Regular, false),
	}
	_, err := NewEngine().Compute(elements, 0, 0, 100, 100)
	if !errors.Is(err, ErrInvalidRectangle) {
		t.Fatalf("Compute() error = %v, want ErrInvalidRectangle", err)
	}
}

func TestEngineComputeSwappedRectangleRejected(t *testing.T) {
	// x1>x2 and y1>y2: a genuine coordinate swap, not NaN. Must be
	// rejected rather than silently normalized into a valid rectangle.
	elements := []Element{
		elem(0, 90, 90, 10, 10, Regular, false),
	}
	_, err := NewEngine().Compute(elements, 0, 0, 100, 100)
	if !errors.Is(err, ErrInvalidRectangle) {
		t.Fatalf("Compute() error = %v, want ErrInvalidRectangle", err)
	}
}

func TestEngineComputeEmptyInput(t *testing.T) {
	got, err := NewEngine().Compute(nil, 0, 0, 100, 100)
	if err != nil {
		t.Fatalf("Compute() error = %v, want nil", err)
	}
	if got != nil {
		t.Fatalf("Compute() = %v, want nil", got)
	}
}

func TestEngineComputeSingleElement(t *testing.T) {
	elements := []Element{elem(7, 10, 10, 20, 20, Regular, false)}
	got, err := NewEngine().Compute(elements, 0, 0, 100, 100)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	assertIntSlice(t, got, []int{7})
}

func TestEngineComputeIsPermutation(t *testing.T) {
	elements := []Element{
		elem(3, 10, 10, 90, 90, Regular, false),
		elem(1, 110, 10, 190, 90, Regular, false),
		elem(2, 10, 110, 90, 190, Regular, false),
		elem(4, 110, 110, 190, 190, HorizontalTitle, true),
	}
	got, err := NewEngine().Compute(elements, 0, 0, 200, 200)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if len(got) != len(elements) {
		t.Fatalf("Compute() returned %d ids, want %d", len(got), len(elements))
	}
	seen := make(map[int]bool)
	for _, id := range got {
		if seen[id] {
			t.Fatalf("Compute() returned id %d twice: %v", id, got)
		}
		seen[id] = true
	}
	for _, e := range elements {
		if !seen[e.ID()] {
			t.Fatalf("Compute() missing id %d: %v", e.ID(), got)
		}
	}
}

func TestEngineComputeDeterministic(t *testing.T) {
	elements := []Element{
		elem(0, 10, 10, 90, 90, Regular, false),
		elem(1, 110, 10, 190, 90, Regular, false),
		elem(2, 10, 110, 90, 190, Regular, false),
		elem(3, 110, 110, 190, 190, Regular, false),
	}
	first, err := NewEngine().Compute(elements, 0, 0, 200, 200)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	second, err := NewEngine().Compute(elements, 0, 0, 200, 200)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	assertIntSlice(t, first, second)
}

func TestEngineComputeIdempotentUnderFeedback(t *testing.T) {
	elements := []Element{
		elem(3, 10, 10, 90, 90, Regular, false),
		elem(1, 110, 10, 190, 90, Regular, false),
		elem(2, 10, 110, 90, 190, Regular, false),
		elem(4, 110, 110, 190, 190, HorizontalTitle, true),
	}
	byID := make(map[int]Element, len(elements))
	for _, e := range elements {
		byID[e.ID()] = e
	}

	first, err := NewEngine().Compute(elements, 0, 0, 200, 200)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	reordered := make([]Element, len(first))
	for i, id := range first {
		reordered[i] = byID[id]
	}

	second, err := NewEngine().Compute(reordered, 0, 0, 200, 200)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	assertIntSlice(t, first, second)
}

func TestEngineComputeIoUAdjacency(t *testing.T) {
	// e0 and e1 overlap; e2 sits in an unrelated row. The overlapping
	// pair must stay adjacent in the output regardless of e2.
	elements := []Element{
		elem(0, 10, 10, 50, 40, Regular, false),
		elem(1, 30, 10, 70, 40, Regular, false),
		elem(2, 10, 100, 50, 130, Regular, false),
	}
	got, err := NewEngine().Compute(elements, 0, 0, 100, 150)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	pos := make(map[int]int, len(got))
	for i, id := range got {
		pos[id] = i
	}
	if diff := pos[1] - pos[0]; diff != 1 && diff != -1 {
		t.Fatalf("Compute() = %v, want ids 0 and 1 adjacent (they overlap)", got)
	}
}
