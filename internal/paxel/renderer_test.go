package paxel

import (
	"math"
	"testing"

	"github.com/rainbohz/paxelsynth/internal/mathutil"
	"github.com/rainbohz/paxelsynth/internal/pcm"
	"github.com/rainbohz/paxelsynth/internal/physical"
)

// S1 minimal, single constant point spanning the whole paxel.
func TestRenderS1Minimal(t *testing.T) {
	freq := mathutil.NormalizeFrequency(1000, 96000)
	points := []physical.EnvelopePoint{
		{Sample: 0, CycleAccumulator: 0, Frequency: freq, Amplitude: 0.4},
	}
	out := Render(points, 96000)
	if len(out) != 96000 {
		t.Fatalf("got %d samples, want 96000", len(out))
	}
	if out[0] != 0 {
		t.Errorf("out[0] = %d, want 0", out[0])
	}

	acc := mathutil.CycleAccumulator(0, freq, 0, 24000)
	want := int32(math.Round(math.Sin(acc) * 0.4 * pcm.Max24BitInt))
	if out[24000] != want {
		t.Errorf("out[24000] = %d, want %d", out[24000], want)
	}
}

// S3 amplitude fade: last sample of a fully-faded paxel is silent.
func TestRenderS3TrailingSilence(t *testing.T) {
	points := []physical.EnvelopePoint{
		{Sample: 0, Amplitude: 0, Frequency: 0.02},
	}
	out := Render(points, 1000)
	if out[len(out)-1] != 0 {
		t.Errorf("out[last] = %d, want 0", out[len(out)-1])
	}
}

func TestRenderDeterminism(t *testing.T) {
	points := []physical.EnvelopePoint{
		{Sample: 0, Amplitude: 0.2, AmplitudeRate: 0.0001, Frequency: 0.03, FrequencyRate: 0.00001},
		{Sample: 500, Amplitude: 0.7, Frequency: 0.05},
	}
	a := Render(points, 1000)
	b := Render(points, 1000)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at sample %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestRenderEverySampleAssignedOnce(t *testing.T) {
	points := []physical.EnvelopePoint{
		{Sample: 0, Amplitude: 0.1, Frequency: 0.01},
		{Sample: 300, Amplitude: 0.5, Frequency: 0.02},
		{Sample: 700, Amplitude: 0.9, Frequency: 0.03},
	}
	out := Render(points, 1000)
	if len(out) != 1000 {
		t.Fatalf("got %d samples, want 1000", len(out))
	}
}
