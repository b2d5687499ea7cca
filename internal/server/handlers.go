package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/rainbohz/paxelsynth/internal/pcm"
	"github.com/rainbohz/paxelsynth/internal/spectral"
)

// Handlers holds the render-job HTTP API handlers.
type Handlers struct {
	jobs       *JobManager
	wsHub      *WSHub
	sampleRate int
}

// NewHandlers creates new API handlers backed by jobs.
func NewHandlers(jobs *JobManager, sampleRate int) *Handlers {
	return &Handlers{
		jobs:       jobs,
		wsHub:      NewWSHub(),
		sampleRate: sampleRate,
	}
}

// HandleWebSocket handles WebSocket upgrade requests.
func (h *Handlers) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	h.wsHub.AddClient(conn)

	go func() {
		defer h.wsHub.RemoveClient(conn)
		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				break
			}
		}
	}()
}

func jobIDFromPath(prefix, path string) string {
	return strings.TrimSuffix(strings.TrimPrefix(path, prefix), "/")
}

// HandleRenderStart starts a render job for the ID in the request path
// (POST /api/render/{id}). The partial group must already be
// registered with the JobManager; this endpoint never accepts an
// envelope body.
func (h *Handlers) HandleRenderStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := jobIDFromPath("/api/render/", r.URL.Path)
	if id == "" {
		http.Error(w, "job id required", http.StatusBadRequest)
		return
	}

	job, err := h.jobs.Start(id, h.wsHub)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{
		"jobId":  job.ID,
		"status": job.Status.String(),
	})
}

// HandleRenderStatus reports a job's current status
// (GET /api/render/{id}).
func (h *Handlers) HandleRenderStatus(w http.ResponseWriter, r *http.Request) {
	id := jobIDFromPath("/api/render/", r.URL.Path)
	job, ok := h.jobs.Get(id)
	if !ok {
		http.Error(w, "job not found", http.StatusNotFound)
		return
	}

	resp := map[string]interface{}{
		"jobId":  job.ID,
		"status": job.Status.String(),
	}
	if job.Err != nil {
		resp["error"] = job.Err.Error()
	}
	json.NewEncoder(w).Encode(resp)
}

// HandleRenderDownload streams the finished mix for the job in the
// request path as raw little-endian 24-bit PCM bytes
// (GET /api/render/{id}/download). No RIFF/WAVE header is written.
func (h *Handlers) HandleRenderDownload(w http.ResponseWriter, r *http.Request) {
	id := jobIDFromPath("/api/render/", strings.TrimSuffix(r.URL.Path, "/download"))
	job, ok := h.jobs.Get(id)
	if !ok {
		http.Error(w, "job not found", http.StatusNotFound)
		return
	}
	if job.Status != JobDone {
		http.Error(w, "job not complete", http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	for _, sample := range pcm.ToScaled(job.Result) {
		packed := pcm.PackInt24LE(sample)
		w.Write(packed[:])
	}
}

// HandleRenderSpectrum reports the dominant frequency of the finished
// mix for the job in the request path
// (GET /api/render/{id}/spectrum), an optional diagnostic cross-check
// against the frequency envelope.
func (h *Handlers) HandleRenderSpectrum(w http.ResponseWriter, r *http.Request) {
	id := jobIDFromPath("/api/render/", strings.TrimSuffix(r.URL.Path, "/spectrum"))
	job, ok := h.jobs.Get(id)
	if !ok {
		http.Error(w, "job not found", http.StatusNotFound)
		return
	}
	if job.Status != JobDone {
		http.Error(w, "job not complete", http.StatusConflict)
		return
	}

	samples := make([]float64, len(job.Result))
	for i, s := range job.Result {
		samples[i] = float64(s)
	}
	peak := spectral.PeakFrequencyHz(samples, h.sampleRate)

	json.NewEncoder(w).Encode(map[string]float64{"peakFrequencyHz": peak})
}
