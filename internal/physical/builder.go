package physical

// PointBuilder stages an EnvelopePoint's fields as the fused sweep
// discovers them incrementally, rejecting a Build() call before every
// field has been set. A builder is used instead of a tagged
// partial-state value since every field here is a plain float64/uint64
// with no natural "unset" sentinel.
type PointBuilder struct {
	sample                                uint64
	accumulator, frequency, frequencyRate float64
	amplitude, amplitudeRate              float64
	hasSample, hasAccum, hasFreq, hasAmp  bool
}

// NewPointBuilder starts a builder for the given absolute/local sample.
func NewPointBuilder(sample uint64) *PointBuilder {
	return &PointBuilder{sample: sample, hasSample: true}
}

func (b *PointBuilder) WithAccumulator(v float64) *PointBuilder {
	b.accumulator = v
	b.hasAccum = true
	return b
}

func (b *PointBuilder) WithFrequency(value, rate float64) *PointBuilder {
	b.frequency = value
	b.frequencyRate = rate
	b.hasFreq = true
	return b
}

func (b *PointBuilder) WithAmplitude(value, rate float64) *PointBuilder {
	b.amplitude = value
	b.amplitudeRate = rate
	b.hasAmp = true
	return b
}

// Build finalises the point, returning ok=false if any field is unset.
func (b *PointBuilder) Build() (EnvelopePoint, bool) {
	if !b.hasSample || !b.hasAccum || !b.hasFreq || !b.hasAmp {
		return EnvelopePoint{}, false
	}
	return EnvelopePoint{
		Sample:           b.sample,
		CycleAccumulator: b.accumulator,
		Frequency:        b.frequency,
		FrequencyRate:    b.frequencyRate,
		Amplitude:        b.amplitude,
		AmplitudeRate:    b.amplitudeRate,
	}, true
}
