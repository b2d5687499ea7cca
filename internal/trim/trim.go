// Package trim normalises ragged (levels, times) envelope inputs to the
// phase-defined partial duration.
package trim

import (
	"math"

	"github.com/rainbohz/paxelsynth/internal/xerr"
)

// Trim reconciles levels/times with the target duration T, returning new
// slices satisfying |levels| = |times| + 1 ≥ 1 and sum(times) == T within
// tolerance.
//
// Tolerance: the cumulative-time comparison uses 1e-9·duration (floor
// 1e-9), loose enough to absorb floating-point drift across many
// levels without masking a genuinely malformed envelope.
func Trim(levels, times []float64, duration float64) (newLevels, newTimes []float64, err error) {
	lv := append([]float64(nil), levels...)
	tm := append([]float64(nil), times...)

	// Step 1: drop redundant trailing times.
	for len(tm) > 0 && len(tm) >= len(lv) {
		tm = tm[:len(tm)-1]
	}
	// Step 2: drop redundant trailing levels.
	for len(lv) > len(tm)+1 {
		lv = lv[:len(lv)-1]
	}
	if len(lv) == 0 {
		return nil, nil, xerr.New(xerr.InconsistentEnvelope, "levels", "envelope must retain at least one level after trimming")
	}

	tol := duration * 1e-9
	if tol < 1e-9 {
		tol = 1e-9
	}

	var sum float64
	for _, t := range tm {
		sum += t
	}

	switch {
	case sum < duration-tol:
		// Step 5: constant extension.
		tm = append(tm, duration-sum)
		lv = append(lv, lv[len(lv)-1])

	case sum > duration+tol:
		// Step 6: drop tail segments whose end is past T, then
		// linear-interpolate the terminal level of the last remaining
		// segment.
		idx, cum := locateCrossing(tm, duration, tol)
		segDur := tm[idx]
		var frac float64
		if segDur > 0 {
			frac = (duration - cum) / segDur
		}
		frac = clamp01(frac)

		terminalLevel := lv[idx] + frac*(lv[idx+1]-lv[idx])

		truncatedLevels := append([]float64(nil), lv[:idx+1]...)
		truncatedLevels = append(truncatedLevels, terminalLevel)

		truncatedTimes := append([]float64(nil), tm[:idx]...)
		truncatedTimes = append(truncatedTimes, duration-cum)

		lv, tm = truncatedLevels, truncatedTimes

	default:
		// Step 7: S == T, no change.
	}

	return lv, tm, nil
}

// locateCrossing finds the index of the first time segment whose
// cumulative end exceeds duration, and the cumulative time preceding it.
// Falls back to the last segment if rounding leaves no segment strictly
// past duration.
func locateCrossing(times []float64, duration, tol float64) (idx int, cumBefore float64) {
	cum := 0.0
	for i, t := range times {
		next := cum + t
		if next > duration+tol {
			return i, cum
		}
		cum = next
	}
	last := len(times) - 1
	return last, cum - times[last]
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
