package envelope

import (
	"errors"
	"testing"

	"github.com/rainbohz/paxelsynth/internal/xerr"
)

func TestNewFrequencyEnvelopeRejectsNonPositive(t *testing.T) {
	_, err := NewFrequencyEnvelope([]float64{1000, 0}, []float64{1.0}, nil)
	if err == nil {
		t.Fatal("expected error for zero frequency level")
	}
	var xe *xerr.Error
	if !errors.As(err, &xe) || xe.Kind != xerr.InvariantViolation {
		t.Errorf("expected InvariantViolation, got %v", err)
	}
}

func TestNewFrequencyEnvelopeAcceptsOutOfAudioRange(t *testing.T) {
	// 5Hz is below the audible working range but not a hard invariant.
	if _, err := NewFrequencyEnvelope([]float64{5}, nil, nil); err != nil {
		t.Errorf("expected out-of-range frequency to be accepted, got %v", err)
	}
}

func TestNewAmplitudeEnvelopeRejectsOutOfRange(t *testing.T) {
	_, err := NewAmplitudeEnvelope([]float64{0.5, 1.5}, []float64{1.0}, nil)
	if err == nil {
		t.Fatal("expected error for amplitude level > 1")
	}
}

func TestNewAmplitudeEnvelopeAllowsInversion(t *testing.T) {
	if _, err := NewAmplitudeEnvelope([]float64{-1.0, 0.5}, []float64{1.0}, nil); err != nil {
		t.Errorf("expected negative amplitude (phase inversion) to be accepted, got %v", err)
	}
}

func TestEnvelopeRejectsNegativeTime(t *testing.T) {
	_, err := NewAmplitudeEnvelope([]float64{0.1, 0.2}, []float64{-1.0}, nil)
	if err == nil {
		t.Fatal("expected error for negative time")
	}
}

func TestEnvelopeDuration(t *testing.T) {
	e, err := NewAmplitudeEnvelope([]float64{0.1, 0.2, 0.3}, []float64{1.0, 2.5}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := e.Duration(); got != 3.5 {
		t.Errorf("Duration() = %v, want 3.5", got)
	}
}
