package xycut

import (
	"math"

	"github.com/tsawler/xycut/geometry"
)

// distance computes D(M, A), the four-component semantic-aware
// distance from masked element m to anchor a. best is the incumbent
// best distance found so far during a re-insertion search; once the
// running partial sum exceeds best, computation halts early and
// returns the partial sum (guaranteed itself to exceed best, so
// callers comparing against best still reject it correctly). The
// component order (φ1, φ2, φ3, φ4) is fixed so that early termination
// gives the same result every run.
func distance(m, a elementView, best float64) float64 {
	const epsilon = 1e-9

	h := math.Max(m.height(), m.width())
	invH := 1 / h
	if h == 0 {
		invH = 1 / epsilon
	}
	wBase := [4]float64{h * h, h, 1, invH}
	mu := weightsFor(m.label)

	sum := 0.0

	phi1 := 0.0
	if !geometry.Intersects(m.rect, a.rect) {
		phi1 = 100
	}
	sum += wBase[0] * mu.mu1 * phi1
	if sum > best {
		return sum
	}

	phi2 := geometry.Distance(m.rect, a.rect)
	sum += wBase[1] * mu.mu2 * phi2
	if sum > best {
		return sum
	}

	phi3 := math.Abs(a.centerY() - m.centerY())
	sum += wBase[2] * mu.mu3 * phi3
	if sum > best {
		return sum
	}

	phi4 := math.Abs(a.rect.X1 - m.rect.X1)
	sum += wBase[3] * mu.mu4 * phi4

	return sum
}
