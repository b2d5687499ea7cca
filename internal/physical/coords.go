// Package physical defines the per-parameter and fused physical
// coordinate types used once the logical envelopes (internal/envelope)
// have been converted to sample time.
package physical

// AmplitudeCoordinate pairs an amplitude value with its absolute sample
// index, relative to partial start.
type AmplitudeCoordinate struct {
	Sample uint64
	Value  float64
}

// FrequencyCoordinate pairs a normalised frequency (radians per sample)
// with its absolute sample index.
type FrequencyCoordinate struct {
	Sample uint64
	Value  float64
}

// PhaseCoordinate pairs a phase target with its absolute sample index
// and a flag marking it natural (no enforced target) vs controlled.
type PhaseCoordinate struct {
	Sample  uint64
	Value   float64
	Natural bool
}

// EnvelopePoint is the fused physical envelope point: a tuple of
// sample index, non-wrapping cycle accumulator, instantaneous
// frequency and amplitude, and the per-sample rates valid on the
// interval beginning at this point.
type EnvelopePoint struct {
	Sample           uint64
	CycleAccumulator float64
	Frequency        float64
	FrequencyRate    float64
	Amplitude        float64
	AmplitudeRate    float64
}

// Paxel is one fixed-size window's worth of fused envelope points, with
// sample indices local to the paxel (0 … paxelSize-1).
type Paxel struct {
	Points []EnvelopePoint
}

// PartialEnvelope is a partial's full physical representation: a vector
// of paxels plus the grid-alignment metadata.
type PartialEnvelope struct {
	Paxels              []Paxel
	FirstPaxelIndex     uint64
	FirstSampleFraction float64
	LastSampleFraction  float64
}
