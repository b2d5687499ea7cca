// Package mathutil provides the pure scalar math underlying the
// envelope-to-physical-coordinate pipeline: phase reduction, coherence
// compensation, and closed-form cycle-accumulator integration.
package mathutil

import "math"

const twoPi = 2 * math.Pi

// PhaseMod reduces x into [0, 2π) with a positive representative.
func PhaseMod(x float64) float64 {
	m := math.Mod(x, twoPi)
	if m < 0 {
		m += twoPi
	}
	return m
}

// CoherenceCompensation returns the smallest δ ∈ [−π, π] such that
// PhaseMod(source + δ) == PhaseMod(target). It is exactly zero when
// source == target bitwise.
func CoherenceCompensation(source, target float64) float64 {
	if source == target {
		return 0
	}
	s := PhaseMod(source)
	t := PhaseMod(target)
	delta := t - s
	if delta > math.Pi {
		delta -= twoPi
	} else if delta <= -math.Pi {
		delta += twoPi
	}
	return delta
}

// SecondsToSamples converts a time in seconds to a sample index via
// floor(t · sampleRate). Seconds is the source of truth.
func SecondsToSamples(t float64, sampleRate int) uint64 {
	if t <= 0 {
		return 0
	}
	return uint64(math.Floor(t * float64(sampleRate)))
}

// NormalizeFrequency converts a frequency in Hz to radians per sample.
func NormalizeFrequency(fHz float64, sampleRate int) float64 {
	return twoPi * fHz / float64(sampleRate)
}
