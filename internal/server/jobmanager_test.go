package server

import (
	"testing"
	"time"

	"github.com/rainbohz/paxelsynth/internal/envelope"
	"github.com/rainbohz/paxelsynth/internal/label"
	"github.com/rainbohz/paxelsynth/internal/synth"
)

func mustGroup(t *testing.T) synth.PartialGroup {
	t.Helper()
	amp, err := envelope.NewAmplitudeEnvelope([]float64{0.3}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	freq, err := envelope.NewFrequencyEnvelope([]float64{440}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	start, err := envelope.NewControlledPhase(0, 0, 48000)
	if err != nil {
		t.Fatal(err)
	}
	end, err := envelope.NewControlledPhase(0.01, 0, 48000)
	if err != nil {
		t.Fatal(err)
	}
	phases, err := envelope.NewPhaseCoordinates([]envelope.PhaseCoordinate{start, end})
	if err != nil {
		t.Fatal(err)
	}
	pe := envelope.NewPartialEnvelopes(amp, freq, phases, label.NewSet())
	return synth.NewPartialGroup([]synth.Partial{synth.NewPartial(pe, 0, nil)}, nil, false)
}

func TestJobManagerStartUnknownID(t *testing.T) {
	jm := NewJobManager(48000, 48000)
	hub := NewWSHub()
	if _, err := jm.Start("missing", hub); err == nil {
		t.Fatal("expected error for unregistered job id")
	}
}

func TestJobManagerRunsToCompletion(t *testing.T) {
	jm := NewJobManager(48000, 48000)
	jm.Register("tone", mustGroup(t))
	hub := NewWSHub()

	job, err := jm.Start("tone", hub)
	if err != nil {
		t.Fatal(err)
	}
	if job.Status != JobPending && job.Status != JobRunning {
		t.Fatalf("unexpected initial status %v", job.Status)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		got, ok := jm.Get("tone")
		if !ok {
			t.Fatal("job disappeared")
		}
		if got.Status == JobDone {
			if len(got.Result) == 0 {
				t.Fatal("done job has empty result")
			}
			return
		}
		if got.Status == JobFailed {
			t.Fatalf("job failed: %v", got.Err)
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("job did not complete in time")
}
