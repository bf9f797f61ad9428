package http

import (
	"net/http"

	"github.com/bnema/vidmerge/internal/adapter/http/middleware"
	"github.com/bnema/vidmerge/internal/service"
)

type Server struct {
	mux        *http.ServeMux
	handlers   *Handlers
	sseHandler *SSEHandler
	csrf       *middleware.CSRFProtection
}

func NewServer(jobSvc JobService, eventBus *service.EventBus, csrf *middleware.CSRFProtection) *Server {
	s := &Server{
		mux:        http.NewServeMux(),
		handlers:   NewHandlers(jobSvc),
		sseHandler: NewSSEHandler(eventBus, jobSvc),
		csrf:       csrf,
	}

	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handlers.Index())
	s.mux.HandleFunc("POST /merge", s.handlers.Merge())
	s.mux.HandleFunc("GET /jobs/{id}", s.handlers.JobStatus())
	s.mux.HandleFunc("GET /jobs/{id}/download", s.handlers.Download())
	s.mux.HandleFunc("GET /events/{id}", s.sseHandler.Events())
	s.mux.HandleFunc("GET /health", s.handlers.Health())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	middleware.SecurityHeaders(s.csrf.Middleware(s.mux)).ServeHTTP(w, r)
}
