package envelope

import "github.com/rainbohz/paxelsynth/internal/label"

// PartialEnvelopes aggregates the three logical envelopes that fully
// describe one partial's evolution: amplitude, frequency, and phase
// targets.
type PartialEnvelopes struct {
	Amplitude AmplitudeEnvelope
	Frequency FrequencyEnvelope
	Phases    PhaseCoordinates
	Labels    label.Set
}

// NewPartialEnvelopes bundles the three envelopes, defaulting Labels to
// an empty set if nil.
func NewPartialEnvelopes(amp AmplitudeEnvelope, freq FrequencyEnvelope, phases PhaseCoordinates, labels label.Set) PartialEnvelopes {
	if labels == nil {
		labels = label.NewSet()
	}
	return PartialEnvelopes{
		Amplitude: amp,
		Frequency: freq,
		Phases:    phases,
		Labels:    labels,
	}
}
