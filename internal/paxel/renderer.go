// Package paxel expands one paxel's fused envelope points into
// per-sample PCM integer values.
package paxel

import (
	"math"

	"github.com/rainbohz/paxelsynth/internal/mathutil"
	"github.com/rainbohz/paxelsynth/internal/pcm"
	"github.com/rainbohz/paxelsynth/internal/physical"
)

// Render expands a paxel's local fused points (sample indices in
// [0, paxelSize)) into a buffer of paxelSize PCM samples scaled to the
// canonical 24-bit range. Every local sample is assigned exactly once,
// by walking consecutive point pairs and, for the final pair, extending
// its segment all the way to paxelSize.
//
// Rendering is a pure function of points: calling Render twice on the
// same input yields a bit-identical buffer.
func Render(points []physical.EnvelopePoint, paxelSize int) []int32 {
	out := make([]int32, paxelSize)
	if len(points) == 0 {
		return out
	}

	for i, cur := range points {
		next := uint64(paxelSize)
		if i+1 < len(points) {
			next = points[i+1].Sample
		}
		for s := cur.Sample; s < next; s++ {
			n := s - cur.Sample
			amp := cur.Amplitude + cur.AmplitudeRate*float64(n)
			acc := mathutil.CycleAccumulator(cur.CycleAccumulator, cur.Frequency, cur.FrequencyRate, n)
			out[s] = int32(math.Round(math.Sin(acc) * amp * pcm.Max24BitInt))
		}
	}
	return out
}
