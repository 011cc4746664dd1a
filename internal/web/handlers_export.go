package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"stockroom/internal/inventory"
	"stockroom/internal/logging"
)

// exportRequest selects the view to export. Zero values mean the whole
// set, sorted by name ascending.
type exportRequest struct {
	NameQuery   string `json:"q"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	SortKey     string `json:"sort"`
	Direction   string `json:"dir"`
}

// handleExport records an export of the selected view and streams the
// workbook back. The history record is written before the workbook is
// produced; if workbook generation fails the record still stands, and
// the response says so.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	p := inventory.DefaultFilterParams()

	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	if req.NameQuery != "" {
		p.NameQuery = req.NameQuery
	}
	if req.Category != "" {
		p.Category = req.Category
	}
	if req.Subcategory != "" {
		p.Subcategory = req.Subcategory
	}
	if req.SortKey != "" {
		p.SortKey = req.SortKey
	}
	if req.Direction == string(inventory.SortDsc) {
		p.SortDirection = inventory.SortDsc
	}

	rec, file, fileName, err := s.service.ExportView(r.Context(), p)
	if err != nil {
		// A non-empty record id means the history entry was written and
		// only the workbook failed.
		if rec.ID != "" {
			w.Header().Set("X-Export-Record-Id", rec.ID)
		}
		s.respondError(w, r, err, statusFromError(err))
		return
	}

	logging.FromContext(r.Context()).Info("export downloaded",
		"record_id", rec.ID, "items", rec.ItemCount, "file", fileName)
	serveWorkbook(w, file, fileName, rec.ID)
}

// handleListExports returns export history, newest first.
func (s *Server) handleListExports(w http.ResponseWriter, r *http.Request) {
	recs, err := s.service.ListExports(r.Context())
	if err != nil {
		s.respondError(w, r, err, statusFromError(err))
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

// handleDownloadExport regenerates the workbook for a past export. The
// filename carries the original export date, not today's.
func (s *Server) handleDownloadExport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	file, fileName, err := s.service.DownloadExport(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err, statusFromError(err))
		return
	}
	serveWorkbook(w, file, fileName, id)
}

// serveWorkbook writes an .xlsx attachment response.
func serveWorkbook(w http.ResponseWriter, file []byte, fileName, recordID string) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	if recordID != "" {
		w.Header().Set("X-Export-Record-Id", recordID)
	}
	w.WriteHeader(http.StatusOK)
	w.Write(file)
}
