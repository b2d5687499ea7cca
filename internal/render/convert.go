// Package render implements the physical envelope generator: the fused
// sweep over amplitude/frequency/phase coordinates, the
// phase-compensation pass, and the paxel grid slicing. This is the
// core algorithm of the rendering engine.
package render

import (
	"github.com/rainbohz/paxelsynth/internal/envelope"
	"github.com/rainbohz/paxelsynth/internal/mathutil"
	"github.com/rainbohz/paxelsynth/internal/physical"
)

// AmplitudeCoordinates converts a trimmed amplitude envelope (whose
// times sum exactly to the partial duration) into an ordered coordinate
// list keyed by sample index relative to partial start. The final
// coordinate is pinned to endSample to avoid floor-rounding drift
// against the phase-defined duration.
func AmplitudeCoordinates(env envelope.AmplitudeEnvelope, sampleRate int, endSample uint64) []physical.AmplitudeCoordinate {
	lv, tm := env.Levels, env.Times
	coords := make([]physical.AmplitudeCoordinate, 0, len(lv))
	coords = append(coords, physical.AmplitudeCoordinate{Sample: 0, Value: lv[0]})

	var cum float64
	for i, t := range tm {
		cum += t
		sample := mathutil.SecondsToSamples(cum, sampleRate)
		if i == len(tm)-1 {
			sample = endSample
		}
		coords = append(coords, physical.AmplitudeCoordinate{Sample: sample, Value: lv[i+1]})
	}
	return coords
}

// FrequencyCoordinates converts a trimmed frequency envelope into an
// ordered coordinate list, normalising Hz to radians per sample.
func FrequencyCoordinates(env envelope.FrequencyEnvelope, sampleRate int, endSample uint64) []physical.FrequencyCoordinate {
	lv, tm := env.Levels, env.Times
	coords := make([]physical.FrequencyCoordinate, 0, len(lv))
	coords = append(coords, physical.FrequencyCoordinate{
		Sample: 0,
		Value:  mathutil.NormalizeFrequency(lv[0], sampleRate),
	})

	var cum float64
	for i, t := range tm {
		cum += t
		sample := mathutil.SecondsToSamples(cum, sampleRate)
		if i == len(tm)-1 {
			sample = endSample
		}
		coords = append(coords, physical.FrequencyCoordinate{
			Sample: sample,
			Value:  mathutil.NormalizeFrequency(lv[i+1], sampleRate),
		})
	}
	return coords
}

// PhaseCoordinates converts the logical phase coordinates to their
// physical (sample-indexed) form, preserving order and the natural flag.
func PhaseCoordinates(phases envelope.PhaseCoordinates) []physical.PhaseCoordinate {
	out := make([]physical.PhaseCoordinate, len(phases))
	for i, p := range phases {
		out[i] = physical.PhaseCoordinate{Sample: p.Sample, Value: p.Phase, Natural: p.Natural}
	}
	return out
}
