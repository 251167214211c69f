package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/textscrub/textscrub/censor"
	"github.com/textscrub/textscrub/version"
	"github.com/textscrub/textscrub/vocab"
)

// censorPayload is the POST /v1/censor body. Kinds arrive as plain strings
// so unknown names can be rejected with a useful message instead of a
// silent no-op pass.
type censorPayload struct {
	Text    string   `json:"text"`
	Kinds   []string `json:"kinds"`
	Pattern string   `json:"pattern"`
}

// wordsPayload is the POST /v1/words body. Severities decode from their
// string form, e.g. "profane|mild".
type wordsPayload struct {
	Words []censor.Entry `json:"words"`
}

// errorResponse is the envelope for every failed request.
type errorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleCensor(w http.ResponseWriter, r *http.Request) {
	var payload censorPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("decoding request body: %w", err))
		return
	}

	req := censor.Request{Text: payload.Text, Pattern: payload.Pattern}
	for _, raw := range payload.Kinds {
		k, err := censor.ParseKind(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err)
			return
		}
		req.Kinds = append(req.Kinds, k)
	}
	if len(payload.Kinds) == 0 && payload.Pattern == "" {
		req.Kinds = s.defaults.Kinds
		req.Pattern = s.defaults.Pattern
	}

	// The pipeline has no server-side failure modes; every error here is the
	// caller's request.
	res, err := s.censorer.Censor(req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	censorTotal.WithLabelValues(strconv.FormatBool(res.Changed)).Inc()
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	var payload wordsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("decoding request body: %w", err))
		return
	}

	if err := censor.AddWords(payload.Words); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	wordsAdded.Add(float64(len(payload.Words)))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": version.GetVersion().SemanticVersion(),
		"words":   vocab.Default().Len(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		hclog.L().Error("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	writeJSON(w, status, errorResponse{
		Error:     http.StatusText(status),
		Message:   err.Error(),
		RequestID: requestIDFrom(r.Context()),
	})
}
