// Package envelope defines the logical (seconds-domain) envelope and
// phase-coordinate value types, with constructor-time invariant
// validation.
package envelope

import (
	"fmt"

	"github.com/rainbohz/paxelsynth/internal/xerr"
)

// CurveType names the interpolation shape of an envelope segment. Only
// Linear is implemented; the others are accepted syntactically and
// treated as linear.
type CurveType int

const (
	Linear CurveType = iota
	Exponential
	Sine
	Welch
	Step
	Numeric
)

func (c CurveType) String() string {
	switch c {
	case Linear:
		return "lin"
	case Exponential:
		return "exp"
	case Sine:
		return "sine"
	case Welch:
		return "welch"
	case Step:
		return "step"
	case Numeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// Envelope is a piecewise-linear trajectory: N≥1 levels and N-1 (or
// ragged) inter-level times in seconds. Curves is accepted but every
// segment is rendered as linear.
type Envelope struct {
	Levels []float64
	Times  []float64
	Curves []CurveType
}

// newEnvelope validates the minimal shared invariants: at least one
// level, and no negative time.
func newEnvelope(levels, times []float64, curves []CurveType) (Envelope, error) {
	if len(levels) == 0 {
		return Envelope{}, xerr.New(xerr.InvariantViolation, "levels", "envelope must have at least one level")
	}
	for i, t := range times {
		if t < 0 {
			return Envelope{}, xerr.New(xerr.InvariantViolation, fmt.Sprintf("times[%d]", i), "envelope time must be non-negative")
		}
	}
	lv := append([]float64(nil), levels...)
	tm := append([]float64(nil), times...)
	var cv []CurveType
	if len(curves) > 0 {
		cv = append([]CurveType(nil), curves...)
	}
	return Envelope{Levels: lv, Times: tm, Curves: cv}, nil
}

// FrequencyEnvelope is an Envelope whose every level is strictly
// positive (Hz).
type FrequencyEnvelope struct {
	Envelope
}

// NewFrequencyEnvelope validates the positivity invariant.
// Out-of-audio-range frequencies (outside [20Hz, 20kHz]) are accepted:
// the engine renders whatever waveform the envelope describes and
// leaves audibility judgments to the caller.
func NewFrequencyEnvelope(levels, times []float64, curves []CurveType) (FrequencyEnvelope, error) {
	e, err := newEnvelope(levels, times, curves)
	if err != nil {
		return FrequencyEnvelope{}, err
	}
	for i, lvl := range e.Levels {
		if lvl <= 0 {
			return FrequencyEnvelope{}, xerr.New(xerr.InvariantViolation, fmt.Sprintf("levels[%d]", i), "frequency level must be strictly positive")
		}
	}
	return FrequencyEnvelope{Envelope: e}, nil
}

// AmplitudeEnvelope is an Envelope whose every level lies in [-1, 1].
// Negative values mean phase inversion.
type AmplitudeEnvelope struct {
	Envelope
}

// NewAmplitudeEnvelope validates the [-1, 1] range invariant.
func NewAmplitudeEnvelope(levels, times []float64, curves []CurveType) (AmplitudeEnvelope, error) {
	e, err := newEnvelope(levels, times, curves)
	if err != nil {
		return AmplitudeEnvelope{}, err
	}
	for i, lvl := range e.Levels {
		if lvl < -1.0 || lvl > 1.0 {
			return AmplitudeEnvelope{}, xerr.New(xerr.InvariantViolation, fmt.Sprintf("levels[%d]", i), "amplitude level must be in [-1, 1]")
		}
	}
	return AmplitudeEnvelope{Envelope: e}, nil
}

// Duration returns the sum of the envelope's inter-level times.
func (e Envelope) Duration() float64 {
	var s float64
	for _, t := range e.Times {
		s += t
	}
	return s
}
