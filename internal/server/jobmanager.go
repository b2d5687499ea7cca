package server

import (
	"fmt"
	"sync"

	"github.com/rainbohz/paxelsynth/internal/synth"
	"github.com/rainbohz/paxelsynth/internal/xerr"
)

// JobStatus is a render job's lifecycle state.
type JobStatus int

const (
	JobPending JobStatus = iota
	JobRunning
	JobDone
	JobFailed
)

func (s JobStatus) String() string {
	switch s {
	case JobPending:
		return "pending"
	case JobRunning:
		return "running"
	case JobDone:
		return "done"
	case JobFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Job is one render-to-completion request against a registered
// partial group.
type Job struct {
	ID     string
	Status JobStatus
	Result []int32
	Err    error
}

// JobManager holds a registry of partial groups pre-registered by the
// embedding program (never parsed from a request body) and the jobs
// rendered against them.
type JobManager struct {
	mu         sync.Mutex
	groups     map[string]synth.PartialGroup
	jobs       map[string]*Job
	sampleRate int
	paxelSize  int
}

// NewJobManager builds a JobManager rendering at the given sample rate
// and paxel size.
func NewJobManager(sampleRate, paxelSize int) *JobManager {
	return &JobManager{
		groups:     make(map[string]synth.PartialGroup),
		jobs:       make(map[string]*Job),
		sampleRate: sampleRate,
		paxelSize:  paxelSize,
	}
}

// Register makes a partial group available for rendering under id,
// overwriting any group previously registered under the same id.
func (m *JobManager) Register(id string, group synth.PartialGroup) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.groups[id] = group
}

// Start launches a render of the group registered under id on a
// background goroutine, reporting progress and completion through hub.
// It returns immediately with the new job, which is pending, or already
// failed if the render could not be sized.
func (m *JobManager) Start(id string, hub *WSHub) (*Job, error) {
	m.mu.Lock()
	group, ok := m.groups[id]
	if !ok {
		m.mu.Unlock()
		return nil, xerr.New(xerr.IoFailure, "jobId", fmt.Sprintf("no partial group registered under %q", id))
	}
	job := &Job{ID: id, Status: JobPending}
	m.jobs[id] = job
	m.mu.Unlock()

	total, err := synth.TotalPaxels(group, m.sampleRate, m.paxelSize)
	if err != nil {
		m.fail(job, fmt.Errorf("sizing render job: %w", err))
		return job, nil
	}

	go func() {
		m.mu.Lock()
		job.Status = JobRunning
		m.mu.Unlock()
		hub.BroadcastStatus(id, "running", "render started")

		var mu sync.Mutex
		done := 0
		result, err := synth.RenderGroupProgress(group, m.sampleRate, m.paxelSize, func() {
			mu.Lock()
			done++
			n := done
			mu.Unlock()
			hub.BroadcastProgress(id, "running", fmt.Sprintf("paxel %d/%d rendered", n, total), n, total)
		})
		if err != nil {
			m.fail(job, err)
			hub.BroadcastStatus(id, "failed", err.Error())
			return
		}

		m.mu.Lock()
		job.Status = JobDone
		job.Result = result
		m.mu.Unlock()
		hub.BroadcastStatus(id, "done", "render complete")
	}()

	return job, nil
}

func (m *JobManager) fail(job *Job, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job.Status = JobFailed
	job.Err = err
}

// Get returns the job registered under id, if any.
func (m *JobManager) Get(id string) (*Job, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	return job, ok
}
