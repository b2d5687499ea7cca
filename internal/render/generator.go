package render

import (
	"fmt"

	"github.com/rainbohz/paxelsynth/internal/envelope"
	"github.com/rainbohz/paxelsynth/internal/mathutil"
	"github.com/rainbohz/paxelsynth/internal/physical"
	"github.com/rainbohz/paxelsynth/internal/trim"
)

// Generate produces a partial's full physical representation from its
// logical envelopes, the partial's absolute start time in the overall
// timeline, the sample rate, and the paxel size.
//
// The partial's duration is defined by its phase coordinates; amplitude
// and frequency are trimmed to that exact duration before the fused
// sweep runs.
func Generate(pe envelope.PartialEnvelopes, startTimeSec float64, sampleRate, paxelSize int) (physical.PartialEnvelope, error) {
	duration := pe.Phases.EndTime()

	ampLevels, ampTimes, err := trim.Trim(pe.Amplitude.Levels, pe.Amplitude.Times, duration)
	if err != nil {
		return physical.PartialEnvelope{}, fmt.Errorf("trimming amplitude envelope: %w", err)
	}
	freqLevels, freqTimes, err := trim.Trim(pe.Frequency.Levels, pe.Frequency.Times, duration)
	if err != nil {
		return physical.PartialEnvelope{}, fmt.Errorf("trimming frequency envelope: %w", err)
	}

	ampEnv, err := envelope.NewAmplitudeEnvelope(ampLevels, ampTimes, nil)
	if err != nil {
		return physical.PartialEnvelope{}, fmt.Errorf("rebuilding trimmed amplitude envelope: %w", err)
	}
	freqEnv, err := envelope.NewFrequencyEnvelope(freqLevels, freqTimes, nil)
	if err != nil {
		return physical.PartialEnvelope{}, fmt.Errorf("rebuilding trimmed frequency envelope: %w", err)
	}

	relativeEndSample := pe.Phases.EndSample()

	ampCoords := AmplitudeCoordinates(ampEnv, sampleRate, relativeEndSample)
	freqCoords := FrequencyCoordinates(freqEnv, sampleRate, relativeEndSample)
	phaseCoords := PhaseCoordinates(pe.Phases)

	points, anchors := Fuse(ampCoords, freqCoords, phaseCoords)
	Compensate(points, anchors, phaseCoords)

	startSample := mathutil.SecondsToSamples(startTimeSec, sampleRate)
	endTimeSec := startTimeSec + duration

	return Grid(points, startSample, paxelSize, startTimeSec, endTimeSec, sampleRate), nil
}
