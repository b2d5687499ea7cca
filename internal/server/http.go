package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"
)

// Server is the HTTP server exposing the render-job API.
type Server struct {
	mux     *http.ServeMux
	handler *Handlers
	addr    string
}

// NewServer creates a new HTTP server.
func NewServer(addr string, handler *Handlers) *Server {
	s := &Server{
		mux:     http.NewServeMux(),
		handler: handler,
		addr:    addr,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/render/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/download"):
			s.handler.HandleRenderDownload(w, r)
		case strings.HasSuffix(r.URL.Path, "/spectrum"):
			s.handler.HandleRenderSpectrum(w, r)
		case r.Method == http.MethodPost:
			s.handler.HandleRenderStart(w, r)
		default:
			s.handler.HandleRenderStatus(w, r)
		}
	})

	s.mux.HandleFunc("/ws", s.handler.HandleWebSocket)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	log.Printf("Starting render server on %s", s.addr)
	fmt.Printf("\n  paxelsynth render server running at http://%s\n\n", s.addr)
	return http.ListenAndServe(s.addr, s.mux)
}
