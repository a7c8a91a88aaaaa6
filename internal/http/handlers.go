package http

import (
	"net/http"

	"opyta/internal/core"
	"opyta/internal/log"
)

// parseFilterSpec builds the filter from the query string. Absent selectors
// are pass-through; unparsable dates become missing bounds, which disables
// the date pass.
func parseFilterSpec(r *http.Request) core.FilterSpec {
	q := r.URL.Query()
	return core.FilterSpec{
		Client:      q.Get("client"),
		ProjectCode: q.Get("project"),
		DateStart:   core.ParseDate(q.Get("start")),
		DateEnd:     core.ParseDate(q.Get("end")),
	}
}

// Read endpoints degrade on store failure: an empty payload plus a reported
// message, mirroring how the dashboard pages render an error banner over an
// empty view instead of crashing.

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	spec := parseFilterSpec(r)

	ov, err := s.dash.Overview(r.Context(), spec)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Overview failed", log.FieldError, err)
		writeJSON(w, http.StatusOK, overviewPayload{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, buildOverviewPayload(spec, ov))
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	spec := parseFilterSpec(r)

	recs, err := s.dash.Records(r.Context(), spec)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Records failed", log.FieldError, err)
		writeJSON(w, http.StatusOK, recordsPayload{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, buildRecordsPayload(recs))
}

func (s *Server) handleRecalculateTaxes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	n, err := s.tax.Recalculate(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Tax recalculation failed", log.FieldError, err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"rows": n})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	snap, err := s.dash.Refresh(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Snapshot refresh failed", log.FieldError, err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"loaded_at": snap.LoadedAt,
		"projects":  len(snap.Projects),
		"revenues":  len(snap.Revenues),
		"expenses":  len(snap.Expenses),
	})
}
