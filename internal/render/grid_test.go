package render

import (
	"testing"

	"github.com/rainbohz/paxelsynth/internal/physical"
)

func TestGridAlignedSinglePartial(t *testing.T) {
	// Partial-relative points: constant envelope over exactly one paxel.
	points := []physical.EnvelopePoint{
		{Sample: 0, Amplitude: 0.4, Frequency: 0.1},
		{Sample: 96000, Amplitude: 0.4, Frequency: 0.1}, // sentinel
	}
	pv := Grid(points, 0, 96000, 0, 1.0, 96000)
	if len(pv.Paxels) != 1 {
		t.Fatalf("got %d paxels, want 1", len(pv.Paxels))
	}
	if len(pv.Paxels[0].Points) != 1 {
		t.Fatalf("paxel 0 has %d points, want 1 (sentinel excluded)", len(pv.Paxels[0].Points))
	}
	if pv.Paxels[0].Points[0].Sample != 0 {
		t.Errorf("point sample = %d, want 0", pv.Paxels[0].Points[0].Sample)
	}
}

func TestGridNonZeroOffset(t *testing.T) {
	// Partial starts 100 samples into its paxel.
	points := []physical.EnvelopePoint{
		{Sample: 0, Amplitude: 0.5, Frequency: 0.2},
		{Sample: 1000, Amplitude: 0.5, Frequency: 0.2}, // sentinel, relative
	}
	startSample := uint64(100)
	pv := Grid(points, startSample, 96000, 0.0, 0, 96000)
	if pv.FirstPaxelIndex != 0 {
		t.Errorf("firstPaxelIndex = %d, want 0", pv.FirstPaxelIndex)
	}
	p0 := pv.Paxels[0].Points
	if p0[0].Sample != 0 {
		t.Fatalf("expected a leading silent point at local 0, got sample %d", p0[0].Sample)
	}
	if p0[0].Amplitude != 0 || p0[0].Frequency != 0 {
		t.Errorf("leading point = %+v, want silent", p0[0])
	}
	if p0[1].Sample != 100 {
		t.Fatalf("expected partial's real start at local 100, got %d", p0[1].Sample)
	}
}

func TestGridMisalignedEndPadsWithSilence(t *testing.T) {
	// Sentinel lands mid-paxel: local samples after it must be silent.
	points := []physical.EnvelopePoint{
		{Sample: 0, Amplitude: 1.0, Frequency: 0.05},
		{Sample: 50, Amplitude: 1.0, Frequency: 0.05}, // sentinel, relative to start
	}
	pv := Grid(points, 0, 200, 0, 50.0/96000, 96000)
	if len(pv.Paxels) != 1 {
		t.Fatalf("got %d paxels, want 1", len(pv.Paxels))
	}
	local := pv.Paxels[0].Points
	if len(local) != 2 {
		t.Fatalf("got %d local points, want 2 (real start + silent tail)", len(local))
	}
	last := local[len(local)-1]
	if last.Sample != 50 || last.Amplitude != 0 || last.Frequency != 0 {
		t.Errorf("trailing point = %+v, want silent at local 50", last)
	}
}
