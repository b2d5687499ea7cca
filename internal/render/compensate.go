package render

import (
	"github.com/rainbohz/paxelsynth/internal/mathutil"
	"github.com/rainbohz/paxelsynth/internal/physical"
)

// Compensate runs the phase-compensation pass over a fused point list
// in place. anchors[i] is the index into points
// corresponding to phases[i]; anchors and phases must be the same
// length and anchors[0] must be 0.
//
// For every controlled phase anchor, the correction needed to bring the
// cycle accumulator back into coherence with the requested phase is
// computed once and distributed linearly across the preceding interval,
// so the correction never introduces an audible discontinuity. Natural
// anchors contribute no correction of their own but still receive
// whatever cumulative shift preceding anchors introduced.
func Compensate(points []physical.EnvelopePoint, anchors []int, phases []physical.PhaseCoordinate) {
	if len(anchors) == 0 {
		return
	}

	var cumulativeShift float64
	if !phases[0].Natural && phases[0].Value != 0 {
		cumulativeShift = phases[0].Value
		points[anchors[0]].CycleAccumulator += cumulativeShift
	}

	for a := 1; a < len(anchors); a++ {
		prevIdx := anchors[a-1]
		currIdx := anchors[a]
		curPhase := phases[a]

		var delta float64
		if !curPhase.Natural {
			rawAccumAtCurr := points[currIdx].CycleAccumulator
			delta = mathutil.CoherenceCompensation(rawAccumAtCurr+cumulativeShift, curPhase.Value)
		}

		span := float64(points[currIdx].Sample - points[prevIdx].Sample)
		if span > 0 {
			for i := prevIdx + 1; i <= currIdx; i++ {
				frac := float64(points[i].Sample-points[prevIdx].Sample) / span
				points[i].CycleAccumulator += cumulativeShift + delta*frac

				prev := i - 1
				n := points[i].Sample - points[prev].Sample
				points[prev].FrequencyRate = mathutil.FrequencyRate(
					points[prev].CycleAccumulator, points[prev].Frequency, points[i].CycleAccumulator, n)
			}
		}

		cumulativeShift += delta
	}
}
