package server

import (
	"encoding/json"
	"net/http"
	"time"

	"PairLens/internal/analyzer"
	"PairLens/internal/model"
	"PairLens/internal/recorder"
)

// errorResponse is the failure body for analysis requests.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// handleHealth handles liveness checks.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "pairlens",
	})
}

// handleCorrelationAnalysis runs the pipeline for one ticker pair.
func (s *Server) handleCorrelationAnalysis(w http.ResponseWriter, r *http.Request) {
	var req model.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	started := time.Now()
	result, err := s.analyzer.Analyze(r.Context(), req)
	duration := time.Since(started)

	if err != nil {
		kind := analyzer.KindOf(err)
		s.audit(&req, nil, string(kind), duration)
		if kind == "" {
			s.log.Error().Err(err).Msg("analysis failed unexpectedly")
			s.writeJSON(w, http.StatusInternalServerError,
				errorResponse{Error: "an unexpected error occurred"})
			return
		}
		s.log.Warn().Err(err).Str("kind", string(kind)).Msg("analysis failed")
		s.writeJSON(w, statusForKind(kind), errorResponse{Error: err.Error(), Kind: string(kind)})
		return
	}

	s.audit(&req, result, "ok", duration)
	s.writeJSON(w, http.StatusOK, result)
}

// statusForKind maps the error taxonomy to HTTP statuses: request-caused
// failures are client errors, upstream failures gateway errors.
func statusForKind(k analyzer.Kind) int {
	if k.ClientError() {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

func (s *Server) audit(req *model.AnalysisRequest, result *model.AnalysisResult, outcome string, duration time.Duration) {
	evt := &recorder.AnalysisEvent{
		Ticker1:    req.Ticker1,
		Ticker2:    req.Ticker2,
		Outcome:    outcome,
		DurationMS: duration.Milliseconds(),
		Provider:   s.analyzer.Provider.Name(),
	}
	if outcome == "" {
		evt.Outcome = "internal_error"
	}
	if result != nil {
		evt.Ticker1 = result.Ticker1
		evt.Ticker2 = result.Ticker2
		evt.StartDate = result.StartDate.Time
		evt.EndDate = result.EndDate.Time
		evt.DataPoints = result.DataPoints
	}
	if err := s.recorder.RecordAnalysis(evt); err != nil {
		s.log.Error().Err(err).Msg("record analysis event")
	}
}

// writeJSON writes a JSON response.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("encode JSON response")
	}
}
