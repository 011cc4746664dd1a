package web

// errors.go provides unified error response handling for the web layer.
//
// Handlers call respondError with the technical error; it is logged with
// the request ID for correlation, mapped through inventory.MapError, and
// returned to the client as JSON {error, action, code}. Store errors
// carry no state change on the client: in-memory state is only updated
// from successful responses.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"stockroom/internal/inventory"
	"stockroom/internal/logging"
	"stockroom/internal/store"
)

// respondError logs err and writes its user-facing JSON rendering.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	userMsg := inventory.MapError(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
	)

	writeJSON(w, statusCode, userMsg)
}

// statusFromError picks an HTTP status for a service or store error.
func statusFromError(err error) int {
	var verr *inventory.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, inventory.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, inventory.ErrNoValidItems), errors.As(err, &verr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON encodes v as JSON with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent; nothing left to do but log.
		slog.Error("json encode error", "error", err)
	}
}
