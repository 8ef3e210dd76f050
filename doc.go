// Package xycut implements a reading-order detection engine for document
// layout analysis.
//
// Given a flat collection of labeled axis-aligned rectangles representing
// detected page elements (text blocks, titles, figures, tables), the
// engine emits a permutation of those rectangles corresponding to human
// reading order. It is a variant of the classic XY-Cut projection
// segmentation method, augmented with a hierarchical pre-mask mechanism
// and a semantic-aware re-insertion pass, targeting complex multi-column
// layouts where naive projection cuts fail on spanning titles, figures,
// and cross-column elements.
//
// # Pipeline
//
// [Engine.Compute] runs three phases:
//
//   - Pre-mask classification separates titles, figures, and
//     cross-layout spanners from ordinary body text.
//   - Recursive projection segmentation orders the remaining "regular"
//     elements via alternating horizontal/vertical whitespace cuts.
//   - Priority-ordered re-insertion places each masked element back
//     into the segmented order using a four-component distance metric.
//
// # Basic usage
//
//	engine := xycut.NewEngine()
//	order, err := engine.Compute(elements, 0, 0, pageWidth, pageHeight)
//
// The engine consumes elements through the [Element] interface and
// performs no I/O: it does not read images, run OCR, or render pages.
// Those are the caller's responsibility.
package xycut
