package cache

import (
	"testing"

	"github.com/rainbohz/paxelsynth/internal/physical"
)

func samplePoints() []physical.EnvelopePoint {
	return []physical.EnvelopePoint{
		{Sample: 0, CycleAccumulator: 0, Frequency: 0.02, Amplitude: 0.4},
		{Sample: 500, CycleAccumulator: 10, Frequency: 0.03, Amplitude: 0.5},
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	a := Fingerprint(samplePoints())
	b := Fingerprint(samplePoints())
	if a != b {
		t.Errorf("fingerprint not deterministic: %d vs %d", a, b)
	}
}

func TestFingerprintDistinguishesDifferentPoints(t *testing.T) {
	a := Fingerprint(samplePoints())
	other := samplePoints()
	other[1].Amplitude = 0.9
	b := Fingerprint(other)
	if a == b {
		t.Error("fingerprint collided for differing point lists")
	}
}

func TestCacheGetPut(t *testing.T) {
	c := New()
	fp := Fingerprint(samplePoints())

	if _, ok := c.Get(fp); ok {
		t.Fatal("expected miss on empty cache")
	}

	want := []int32{1, 2, 3}
	c.Put(fp, want)

	got, ok := c.Get(fp)
	if !ok {
		t.Fatal("expected hit after Put")
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}
