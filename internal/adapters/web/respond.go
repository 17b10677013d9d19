package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"dashboard-customization/internal/app"
	"dashboard-customization/internal/logger"
)

// Values of the "code" field in JSON error bodies.
const (
	codeNotFound = "NOT_FOUND"
	codeInternal = "INTERNAL_ERROR"
)

type errorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// respond writes v as JSON with the given status. A ?pretty query parameter
// indents the output.
func respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	if _, ok := r.URL.Query()["pretty"]; ok {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		logger.FromContext(r.Context()).Error(err, "encode response")
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	respond(w, r, status, errorBody{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromContext(r.Context()),
	})
}

// respondServiceError maps app.ErrNotFound to 404 and hides anything else
// behind a generic 500.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, app.ErrNotFound) {
		respondError(w, r, http.StatusNotFound, codeNotFound, err.Error())
		return
	}
	logger.FromContext(r.Context()).Error(err, "service call failed", "path", r.URL.Path)
	respondError(w, r, http.StatusInternalServerError, codeInternal, "internal server error")
}
