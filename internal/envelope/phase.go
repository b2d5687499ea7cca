package envelope

import (
	"fmt"
	"math"

	"github.com/rainbohz/paxelsynth/internal/mathutil"
	"github.com/rainbohz/paxelsynth/internal/xerr"
)

// PhaseCoordinate is either a controlled coordinate (a time and a target
// phase in [0, 2π]) or a natural coordinate (a time only — "whatever
// phase the partial naturally reaches here"). Time is stored in seconds,
// the source of truth, and in samples.
type PhaseCoordinate struct {
	Time    float64
	Sample  uint64
	Phase   float64
	Natural bool
}

// NewControlledPhase builds a controlled phase coordinate, validating
// t ≥ 0 and phase ∈ [0, 2π].
func NewControlledPhase(t, phase float64, sampleRate int) (PhaseCoordinate, error) {
	if t < 0 {
		return PhaseCoordinate{}, xerr.New(xerr.InvariantViolation, "time", "phase coordinate time must be non-negative")
	}
	if phase < 0 || phase > 2*math.Pi {
		return PhaseCoordinate{}, xerr.New(xerr.InvariantViolation, "phase", "controlled phase must be in [0, 2π]")
	}
	return PhaseCoordinate{
		Time:   t,
		Sample: mathutil.SecondsToSamples(t, sampleRate),
		Phase:  phase,
	}, nil
}

// NewNaturalPhase builds a natural phase coordinate, validating t > 0.
func NewNaturalPhase(t float64, sampleRate int) (PhaseCoordinate, error) {
	if t <= 0 {
		return PhaseCoordinate{}, xerr.New(xerr.InvariantViolation, "time", "natural phase coordinate time must be strictly positive")
	}
	return PhaseCoordinate{
		Time:    t,
		Sample:  mathutil.SecondsToSamples(t, sampleRate),
		Natural: true,
	}, nil
}

// PhaseCoordinates is an ordered sequence of ≥2 phase coordinates. The
// first must be at t=0 and controlled; times must be strictly ascending;
// the last coordinate's time defines the partial's end.
type PhaseCoordinates []PhaseCoordinate

// NewPhaseCoordinates validates and wraps the given coordinates.
func NewPhaseCoordinates(coords []PhaseCoordinate) (PhaseCoordinates, error) {
	if len(coords) < 2 {
		return nil, xerr.New(xerr.InvariantViolation, "phaseCoordinates", "must contain at least 2 coordinates")
	}
	if coords[0].Time != 0 {
		return nil, xerr.New(xerr.InvariantViolation, "phaseCoordinates[0].time", "first phase coordinate must be at t=0")
	}
	if coords[0].Natural {
		return nil, xerr.New(xerr.InvariantViolation, "phaseCoordinates[0].natural", "first phase coordinate must be controlled")
	}
	for i := 1; i < len(coords); i++ {
		if coords[i].Time <= coords[i-1].Time {
			return nil, xerr.New(xerr.InvariantViolation, fmt.Sprintf("phaseCoordinates[%d].time", i), "phase coordinate times must be strictly ascending")
		}
	}
	out := append(PhaseCoordinates(nil), coords...)
	return out, nil
}

// EndTime returns the partial's end time in seconds.
func (p PhaseCoordinates) EndTime() float64 {
	return p[len(p)-1].Time
}

// EndSample returns the partial's physical end sample index.
func (p PhaseCoordinates) EndSample() uint64 {
	return p[len(p)-1].Sample
}
