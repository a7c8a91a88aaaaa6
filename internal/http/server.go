// Package http is the presentation boundary: thin JSON handlers that parse
// a FilterSpec from the query string, call the dashboard services and render
// their output. No pipeline logic lives here.
package http

import (
	"net/http"
	"time"

	"opyta/internal/log"
	"opyta/internal/services"
)

type Server struct {
	*http.Server
	dash   *services.DashboardService
	tax    *services.TaxService
	logger *log.Logger
}

func NewServer(addr string, dash *services.DashboardService, tax *services.TaxService, logger *log.Logger) *Server {
	s := &Server{
		dash:   dash,
		tax:    tax,
		logger: logger.WithComponent(log.ComponentHTTP),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleHealth)
	mux.HandleFunc("/api/overview", s.withLogging(s.handleOverview))
	mux.HandleFunc("/api/records", s.withLogging(s.handleRecords))
	mux.HandleFunc("/api/taxes/recalculate", s.withLogging(s.handleRecalculateTaxes))
	mux.HandleFunc("/api/refresh", s.withLogging(s.handleRefresh))

	s.Server = &http.Server{
		Addr:           addr,
		Handler:        mux,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}
	return s
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		s.logger.InfoContext(r.Context(), "Request handled",
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldDuration, time.Since(start).Milliseconds())
	}
}
