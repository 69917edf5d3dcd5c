// Package gamemath holds the pure collision and movement math used by the
// physics passes. Everything here is axis-agnostic 1D math so the same
// functions serve both axes and all four gravity directions.
package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// SweepCross tests a probe point moving from oldPt to newPt along one axis
// against a blocking surface at surface. lead is the probe's direction of
// approach (+1 when the probe leads toward positive coordinates). The probe
// hits when it starts no deeper than tol behind the surface and ends at
// least -tol past it; the returned penetration is how far past the surface
// the probe ended (negative within the tolerance band, the near-miss snap
// case).
func SweepCross(oldPt, newPt, surface, lead, tol float64) (penetration float64, ok bool) {
	entry := lead * (oldPt - surface)
	penetration = lead * (newPt - surface)
	if entry > tol || penetration < -tol {
		return 0, false
	}
	return penetration, true
}

// SpanOverlap reports whether two 1D spans centered at a and b overlap when
// their combined half extent is span. The test is strict so flush corner
// contact on the perpendicular axis does not register as a collision.
func SpanOverlap(a, b, span float64) bool {
	return math.Abs(a-b) < span
}

// PreferCandidate reports whether a candidate with the given penetration and
// probe count should replace the current best on the same axis. Minimum
// penetration wins; within tieEps the larger probe count wins.
func PreferCandidate(pen float64, points int, bestPen float64, bestPoints int, tieEps float64) bool {
	if pen < bestPen-tieEps {
		return true
	}
	if math.Abs(pen-bestPen) <= tieEps && points > bestPoints {
		return true
	}
	return false
}
