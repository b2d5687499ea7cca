package render

import (
	"github.com/rainbohz/paxelsynth/internal/mathutil"
	"github.com/rainbohz/paxelsynth/internal/physical"
)

// Fuse runs the fused sweep: it walks the amplitude, frequency and
// phase coordinate lists in lockstep, emitting one
// EnvelopePoint per distinct breakpoint sample and integrating the
// non-wrapping cycle accumulator across frequency segments.
//
// It returns the fused point list and, in parallel, the index into that
// list of every phase anchor (the points corresponding to a phases[i]).
func Fuse(ampCoords []physical.AmplitudeCoordinate, freqCoords []physical.FrequencyCoordinate, phases []physical.PhaseCoordinate) ([]physical.EnvelopePoint, []int) {
	ampIdx, freqIdx, phaseIdx := 0, 0, 1 // phases[0] is consumed as the initial anchor below

	ampRate := rateBetweenAmp(ampCoords, 0)
	freqRate := rateBetweenFreq(freqCoords, 0)

	points := make([]physical.EnvelopePoint, 0, len(ampCoords)+len(freqCoords)+len(phases))
	anchors := make([]int, 0, len(phases))

	first, _ := physical.NewPointBuilder(0).
		WithAccumulator(0).
		WithFrequency(freqCoords[0].Value, freqRate).
		WithAmplitude(ampCoords[0].Value, ampRate).
		Build()
	points = append(points, first)
	anchors = append(anchors, 0)

	lastFreqAccum := 0.0
	lastFreqSample := freqCoords[0].Sample

	endSample := phases[len(phases)-1].Sample

	for {
		cur := points[len(points)-1]

		nextAmpSample, hasAmp := peekAmp(ampCoords, ampIdx)
		nextFreqSample, hasFreq := peekFreq(freqCoords, freqIdx)
		nextPhaseSample, hasPhase := peekPhase(phases, phaseIdx)

		next, ok := minSample(nextAmpSample, hasAmp, nextFreqSample, hasFreq, nextPhaseSample, hasPhase)
		if !ok {
			break
		}

		delta := next - cur.Sample
		instAmp := cur.Amplitude + cur.AmplitudeRate*float64(delta)
		instFreq := cur.Frequency + cur.FrequencyRate*float64(delta)

		atFreqCoord := hasFreq && next == nextFreqSample
		atAmpCoord := hasAmp && next == nextAmpSample
		atPhaseCoord := hasPhase && next == nextPhaseSample

		nSinceFreqAnchor := next - lastFreqSample
		var acc float64
		if atFreqCoord {
			acc = mathutil.CycleAccumulatorToExactEnd(lastFreqAccum, freqCoords[freqIdx].Value, freqCoords[freqIdx+1].Value, nSinceFreqAnchor)
		} else {
			acc = mathutil.CycleAccumulator(lastFreqAccum, freqCoords[freqIdx].Value, freqRate, nSinceFreqAnchor)
		}

		newAmp := instAmp
		if atAmpCoord {
			newAmp = ampCoords[ampIdx+1].Value
		}
		newFreq := instFreq
		if atFreqCoord {
			newFreq = freqCoords[freqIdx+1].Value
		}

		if atAmpCoord {
			ampIdx++
			ampRate = 0
			if ampIdx+1 < len(ampCoords) {
				ampRate = rateBetweenAmp(ampCoords, ampIdx)
			}
		}
		if atFreqCoord {
			lastFreqAccum = acc
			lastFreqSample = next
			freqIdx++
			freqRate = 0
			if freqIdx+1 < len(freqCoords) {
				freqRate = rateBetweenFreq(freqCoords, freqIdx)
			}
		}

		pt, _ := physical.NewPointBuilder(next).
			WithAccumulator(acc).
			WithFrequency(newFreq, freqRate).
			WithAmplitude(newAmp, ampRate).
			Build()
		points = append(points, pt)

		if atPhaseCoord {
			anchors = append(anchors, len(points)-1)
			phaseIdx++
		}

		if next == endSample {
			break
		}
	}

	return points, anchors
}

func rateBetweenAmp(coords []physical.AmplitudeCoordinate, idx int) float64 {
	delta := coords[idx+1].Sample - coords[idx].Sample
	if delta == 0 {
		return 0
	}
	return (coords[idx+1].Value - coords[idx].Value) / float64(delta)
}

func rateBetweenFreq(coords []physical.FrequencyCoordinate, idx int) float64 {
	delta := coords[idx+1].Sample - coords[idx].Sample
	if delta == 0 {
		return 0
	}
	return (coords[idx+1].Value - coords[idx].Value) / float64(delta)
}

func peekAmp(coords []physical.AmplitudeCoordinate, idx int) (uint64, bool) {
	if idx+1 >= len(coords) {
		return 0, false
	}
	return coords[idx+1].Sample, true
}

func peekFreq(coords []physical.FrequencyCoordinate, idx int) (uint64, bool) {
	if idx+1 >= len(coords) {
		return 0, false
	}
	return coords[idx+1].Sample, true
}

func peekPhase(phases []physical.PhaseCoordinate, idx int) (uint64, bool) {
	if idx >= len(phases) {
		return 0, false
	}
	return phases[idx].Sample, true
}

// minSample returns the smallest of up to three candidate sample
// indices, ignoring any not marked present.
func minSample(a uint64, aok bool, b uint64, bok bool, c uint64, cok bool) (uint64, bool) {
	var best uint64
	found := false
	for _, cand := range []struct {
		v  uint64
		ok bool
	}{{a, aok}, {b, bok}, {c, cok}} {
		if !cand.ok {
			continue
		}
		if !found || cand.v < best {
			best = cand.v
			found = true
		}
	}
	return best, found
}
