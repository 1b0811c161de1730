package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"dupesift/internal/core"
	"dupesift/internal/logging"
	"dupesift/internal/web/templates"
)

// ErrorResponse is the JSON error body for API clients.
type ErrorResponse struct {
	Error  string `json:"error"`
	Action string `json:"action,omitempty"`
	Code   string `json:"code"`
}

// respondError maps a technical error to its user message, logs the original
// error with the request ID, and writes the response in whichever shape the
// client asked for: an HTML fragment for HTMX requests, JSON when the client
// accepts it, or a full error page otherwise.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, status int) {
	msg := core.MapError(err)

	logger := logging.FromContext(r.Context())
	logger.Error("request failed",
		"error", err,
		"code", msg.Code,
		"status", status,
		"path", r.URL.Path,
	)

	switch {
	case isHTMX(r):
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_ = templates.ErrorAlert(msg.Message, msg.Action, msg.Code).Render(r.Context(), w)
	case wantsJSON(r):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(ErrorResponse{
			Error:  msg.Message,
			Action: msg.Action,
			Code:   msg.Code,
		})
	default:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_ = templates.ErrorPage(msg.Message, msg.Action, msg.Code).Render(r.Context(), w)
	}
}

// isHTMX reports whether the request came from an HTMX swap.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// wantsJSON reports whether the client prefers a JSON response.
func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json")
}
