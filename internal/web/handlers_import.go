package web

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"stockroom/internal/logging"
)

// handleImport accepts a multipart workbook upload, validates every row
// and returns the new import session for review. A file with missing
// required columns is rejected as a whole; no rows are validated.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Import.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		s.respondError(w, r, fmt.Errorf("file too large or invalid form: %w", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, r, fmt.Errorf("no file provided: %w", err), http.StatusBadRequest)
		return
	}
	defer file.Close()

	session, err := s.service.StartImport(r.Context(), header.Filename, file)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// handleGetImport returns the state of an import session.
func (s *Server) handleGetImport(w http.ResponseWriter, r *http.Request) {
	session, err := s.service.GetImport(chi.URLParam(r, "sessionID"))
	if err != nil {
		s.respondError(w, r, err, statusFromError(err))
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// commitResponse is the payload of a successful import commit.
type commitResponse struct {
	Imported int         `json:"imported"`
	Items    interface{} `json:"items"`
}

// handleCommitImport inserts the session's valid rows and returns the
// refreshed item set.
func (s *Server) handleCommitImport(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	items, imported, err := s.service.CommitImport(r.Context(), sessionID)
	if err != nil {
		s.respondError(w, r, err, statusFromError(err))
		return
	}

	logging.FromContext(r.Context()).Info("import committed",
		"session_id", sessionID, "imported", imported)
	writeJSON(w, http.StatusOK, commitResponse{Imported: imported, Items: items})
}

// handleDiscardImport drops an import session without importing.
func (s *Server) handleDiscardImport(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DiscardImport(chi.URLParam(r, "sessionID")); err != nil {
		s.respondError(w, r, err, statusFromError(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
