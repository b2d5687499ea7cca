// Package synth orchestrates the rendering pipeline end to end: given a
// group of partials, it runs each through the trim → fuse → compensate →
// grid pipeline (internal/render), expands every paxel in parallel
// (internal/paxel), and sums the results (internal/mixer).
//
// This is the ambient top-level entry point the rest of the core is
// built to serve; it has no algorithmic content of its own.
package synth

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/rainbohz/paxelsynth/internal/cache"
	"github.com/rainbohz/paxelsynth/internal/envelope"
	"github.com/rainbohz/paxelsynth/internal/label"
	"github.com/rainbohz/paxelsynth/internal/mixer"
	"github.com/rainbohz/paxelsynth/internal/paxel"
	"github.com/rainbohz/paxelsynth/internal/physical"
	"github.com/rainbohz/paxelsynth/internal/render"
)

// paxelCache memoises rendered paxel buffers across every render this
// process performs, keyed by the fingerprint of the fused points that
// produced them. A partial that loops or repeats an identical segment
// renders its distinct paxels once.
var paxelCache = cache.New()

// Partial is one sinusoidal component: its logical envelopes, its
// absolute start time in the overall timeline, and its diagnostic
// labels.
type Partial struct {
	Envelopes envelope.PartialEnvelopes
	StartTime float64
	Labels    label.Set
}

// NewPartial builds a Partial, defaulting Labels to an empty set.
func NewPartial(envelopes envelope.PartialEnvelopes, startTime float64, labels label.Set) Partial {
	if labels == nil {
		labels = label.NewSet()
	}
	return Partial{Envelopes: envelopes, StartTime: startTime, Labels: labels}
}

// PartialGroup is a named collection of partials rendered and mixed
// together.
type PartialGroup struct {
	Partials      []Partial
	Labels        label.Set
	AutoNormalize bool
}

// NewPartialGroup builds a PartialGroup, defaulting Labels to an empty set.
func NewPartialGroup(partials []Partial, labels label.Set, autoNormalize bool) PartialGroup {
	if labels == nil {
		labels = label.NewSet()
	}
	return PartialGroup{Partials: partials, Labels: labels, AutoNormalize: autoNormalize}
}

// RenderPartial runs one partial through the full pipeline and returns
// its sample buffer aligned to the overall timeline: index 0 of the
// returned buffer corresponds to absolute sample 0, with any paxels
// before the partial's own firstPaxelIndex left silent. Paxel rendering
// is fanned out across a bounded worker pool, since each paxel is a
// pure function of its own fused points and contends for nothing.
func RenderPartial(p Partial, sampleRate, paxelSize int) ([]int32, error) {
	return RenderPartialProgress(p, sampleRate, paxelSize, nil)
}

// RenderPartialProgress is RenderPartial with an optional callback
// invoked once per completed paxel (from the rendering goroutine, so
// onPaxelDone must be safe to call concurrently). Pass nil for no
// reporting.
func RenderPartialProgress(p Partial, sampleRate, paxelSize int, onPaxelDone func()) ([]int32, error) {
	pv, err := render.Generate(p.Envelopes, p.StartTime, sampleRate, paxelSize)
	if err != nil {
		return nil, fmt.Errorf("generating physical envelope: %w", err)
	}

	totalPaxels := pv.FirstPaxelIndex + uint64(len(pv.Paxels))
	out := make([]int32, totalPaxels*uint64(paxelSize))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workerLimit())

	for i, px := range pv.Paxels {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, points []physical.EnvelopePoint) {
			defer wg.Done()
			defer func() { <-sem }()
			fp := cache.Fingerprint(points)
			buf, ok := paxelCache.Get(fp)
			if !ok {
				buf = paxel.Render(points, paxelSize)
				paxelCache.Put(fp, buf)
			}
			offset := (pv.FirstPaxelIndex + uint64(i)) * uint64(paxelSize)
			copy(out[offset:offset+uint64(paxelSize)], buf)
			if onPaxelDone != nil {
				onPaxelDone()
			}
		}(i, px.Points)
	}
	wg.Wait()

	return out, nil
}

// RenderGroup renders every partial in the group in parallel (each
// partial's own paxels are, in turn, rendered in parallel by
// RenderPartial) and sums the results with mixer.Mix.
func RenderGroup(g PartialGroup, sampleRate, paxelSize int) ([]int32, error) {
	return RenderGroupProgress(g, sampleRate, paxelSize, nil)
}

// RenderGroupProgress is RenderGroup with an optional callback invoked
// once per completed paxel across every partial in the group, used by
// the render-job service to stream "paxel N/M rendered" updates.
func RenderGroupProgress(g PartialGroup, sampleRate, paxelSize int, onPaxelDone func()) ([]int32, error) {
	buffers := make([][]int32, len(g.Partials))
	errs := make([]error, len(g.Partials))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workerLimit())

	for i, p := range g.Partials {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, p Partial) {
			defer wg.Done()
			defer func() { <-sem }()
			buf, err := RenderPartialProgress(p, sampleRate, paxelSize, onPaxelDone)
			buffers[i] = buf
			errs[i] = err
		}(i, p)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("rendering partial %d: %w", i, err)
		}
	}

	return mixer.Mix(buffers, g.AutoNormalize), nil
}

// TotalPaxels returns the number of paxels RenderGroup will render
// across every partial in g, for sizing a progress counter before the
// render starts.
func TotalPaxels(g PartialGroup, sampleRate, paxelSize int) (int, error) {
	total := 0
	for _, p := range g.Partials {
		pv, err := render.Generate(p.Envelopes, p.StartTime, sampleRate, paxelSize)
		if err != nil {
			return 0, fmt.Errorf("generating physical envelope: %w", err)
		}
		total += len(pv.Paxels)
	}
	return total, nil
}

func workerLimit() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}
	return 1
}
