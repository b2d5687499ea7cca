package render

import (
	"math"
	"testing"

	"github.com/rainbohz/paxelsynth/internal/physical"
)

func TestFuseStrictlyIncreasingSamples(t *testing.T) {
	amp := []physical.AmplitudeCoordinate{{Sample: 0, Value: 0.5}, {Sample: 1000, Value: 1.0}, {Sample: 2000, Value: 1.0}}
	freq := []physical.FrequencyCoordinate{{Sample: 0, Value: 0.01}, {Sample: 1500, Value: 0.02}, {Sample: 2000, Value: 0.02}}
	phases := []physical.PhaseCoordinate{{Sample: 0, Value: 0}, {Sample: 2000, Value: 0}}

	points, anchors := Fuse(amp, freq, phases)

	for i := 1; i < len(points); i++ {
		if points[i].Sample <= points[i-1].Sample {
			t.Fatalf("points not strictly increasing at %d: %d <= %d", i, points[i].Sample, points[i-1].Sample)
		}
	}
	if anchors[0] != 0 {
		t.Errorf("first anchor = %d, want 0", anchors[0])
	}
	if points[anchors[len(anchors)-1]].Sample != points[len(points)-1].Sample {
		t.Error("last anchor is not the last fused point")
	}
	if len(anchors) != len(phases) {
		t.Errorf("got %d anchors, want %d (one per phase coord)", len(anchors), len(phases))
	}
}

func TestFuseEnvelopeHonouring(t *testing.T) {
	amp := []physical.AmplitudeCoordinate{{Sample: 0, Value: 0.5}, {Sample: 1000, Value: 0.9}}
	freq := []physical.FrequencyCoordinate{{Sample: 0, Value: 0.01}, {Sample: 1000, Value: 0.03}}
	phases := []physical.PhaseCoordinate{{Sample: 0, Value: 0}, {Sample: 1000, Value: 0, Natural: true}}

	points, _ := Fuse(amp, freq, phases)
	last := points[len(points)-1]
	if math.Abs(last.Amplitude-0.9) > 1e-12 {
		t.Errorf("amplitude at breakpoint = %v, want 0.9", last.Amplitude)
	}
	if math.Abs(last.Frequency-0.03) > 1e-12 {
		t.Errorf("frequency at breakpoint = %v, want 0.03", last.Frequency)
	}
}

func TestFuseContinuity(t *testing.T) {
	amp := []physical.AmplitudeCoordinate{{Sample: 0, Value: 0.2}, {Sample: 500, Value: 0.6}, {Sample: 1000, Value: 0.6}}
	freq := []physical.FrequencyCoordinate{{Sample: 0, Value: 0.01}, {Sample: 1000, Value: 0.01}}
	phases := []physical.PhaseCoordinate{{Sample: 0, Value: 0}, {Sample: 1000, Value: 0}}

	points, _ := Fuse(amp, freq, phases)
	for i := 1; i < len(points); i++ {
		p, q := points[i-1], points[i]
		delta := float64(q.Sample - p.Sample)
		predictedAmp := p.Amplitude + p.AmplitudeRate*delta
		if math.Abs(predictedAmp-q.Amplitude) > 1e-9 {
			t.Errorf("amplitude discontinuity at %d: predicted %v, got %v", q.Sample, predictedAmp, q.Amplitude)
		}
	}
}
