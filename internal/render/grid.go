package render

import (
	"math"

	"github.com/rainbohz/paxelsynth/internal/mathutil"
	"github.com/rainbohz/paxelsynth/internal/physical"
)

// Grid slices a compensated, partial-relative point list onto the
// absolute paxel grid. startSample is the partial's
// absolute first sample index. points' last element is the fused
// sweep's formal end-of-envelope sentinel (one past the partial's last
// real sample, carrying whatever value the envelope formally ends on);
// Grid replaces it with a silent point at the same absolute position,
// since nothing should render past the envelope's defined end.
// startTimeSec/endTimeSec are the un-floored times, used to compute the
// fractional-sample offsets at the partial's boundaries.
func Grid(points []physical.EnvelopePoint, startSample uint64, paxelSize int, startTimeSec, endTimeSec float64, sampleRate int) physical.PartialEnvelope {
	P := uint64(paxelSize)

	abs := make([]physical.EnvelopePoint, len(points))
	for i, p := range points {
		q := p
		q.Sample = startSample + p.Sample
		abs[i] = q
	}

	sentinelSample := abs[len(abs)-1].Sample
	abs[len(abs)-1] = physical.EnvelopePoint{Sample: sentinelSample}

	var endSample uint64
	if sentinelSample > 0 {
		endSample = sentinelSample - 1
	}

	firstPaxelIndex := startSample / P
	gridOffset := startSample - firstPaxelIndex*P
	lastPaxelIndex := endSample / P

	if gridOffset > 0 {
		silent := physical.EnvelopePoint{Sample: firstPaxelIndex * P}
		abs = append([]physical.EnvelopePoint{silent}, abs...)
	}

	paxels := make([]physical.Paxel, 0, lastPaxelIndex-firstPaxelIndex+1)

	idx := 0
	for k := firstPaxelIndex; k <= lastPaxelIndex; k++ {
		winStart := k * P
		winEnd := (k + 1) * P

		for idx+1 < len(abs) && abs[idx+1].Sample <= winStart {
			idx++
		}

		var local []physical.EnvelopePoint
		if abs[idx].Sample == winStart {
			local = append(local, toLocal(abs[idx], winStart))
		} else {
			local = append(local, toLocal(interpolate(abs[idx], winStart), winStart))
		}

		j := idx + 1
		for j < len(abs) && abs[j].Sample > winStart && abs[j].Sample < winEnd {
			local = append(local, toLocal(abs[j], winStart))
			j++
		}
		if j > idx+1 {
			idx = j - 1
		}

		paxels = append(paxels, physical.Paxel{Points: local})
	}

	startFrac := float64(startTimeSec) * float64(sampleRate)
	endFrac := float64(endTimeSec) * float64(sampleRate)

	return physical.PartialEnvelope{
		Paxels:              paxels,
		FirstPaxelIndex:     firstPaxelIndex,
		FirstSampleFraction: 1 - frac(startFrac),
		LastSampleFraction:  frac(endFrac),
	}
}

// interpolate synthesises a point at absSample between prev and the next
// fused point, preserving prev's current rates and linearly projecting
// amplitude/frequency; the accumulator is integrated forward from prev.
func interpolate(prev physical.EnvelopePoint, absSample uint64) physical.EnvelopePoint {
	n := absSample - prev.Sample
	return physical.EnvelopePoint{
		Sample:           absSample,
		CycleAccumulator: mathutil.CycleAccumulator(prev.CycleAccumulator, prev.Frequency, prev.FrequencyRate, n),
		Frequency:        prev.Frequency + prev.FrequencyRate*float64(n),
		FrequencyRate:    prev.FrequencyRate,
		Amplitude:        prev.Amplitude + prev.AmplitudeRate*float64(n),
		AmplitudeRate:    prev.AmplitudeRate,
	}
}

func toLocal(p physical.EnvelopePoint, winStart uint64) physical.EnvelopePoint {
	q := p
	q.Sample = p.Sample - winStart
	return q
}

func frac(x float64) float64 {
	return x - math.Floor(x)
}
