package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"stockroom/internal/inventory"
	"stockroom/internal/logging"
)

// filterParamsFromQuery reads the table controls from query parameters,
// falling back to the table's initial state (everything visible, name
// ascending) for anything unset.
func filterParamsFromQuery(r *http.Request) inventory.FilterParams {
	p := inventory.DefaultFilterParams()
	q := r.URL.Query()

	if v := q.Get("q"); v != "" {
		p.NameQuery = v
	}
	if v := q.Get("category"); v != "" {
		p.Category = v
	}
	if v := q.Get("subcategory"); v != "" {
		p.Subcategory = v
	}
	if v := q.Get("sort"); v != "" {
		p.SortKey = v
	}
	if v := q.Get("dir"); v == string(inventory.SortDsc) {
		p.SortDirection = inventory.SortDsc
	}
	return p
}

// handleListItems returns the filtered, sorted inventory view.
func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.ListItems(r.Context(), filterParamsFromQuery(r))
	if err != nil {
		s.respondError(w, r, err, statusFromError(err))
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// handleCreateItem validates and inserts a new item.
func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var candidate inventory.ItemCandidate
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	item, err := s.service.CreateItem(r.Context(), candidate)
	if err != nil {
		s.respondError(w, r, err, statusFromError(err))
		return
	}

	logging.FromContext(r.Context()).Info("item created", "id", item.ID, "name", item.Name)
	writeJSON(w, http.StatusCreated, item)
}

// handleUpdateItem replaces every field but the id of an existing item.
func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var candidate inventory.ItemCandidate
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	item, err := s.service.UpdateItem(r.Context(), id, candidate)
	if err != nil {
		s.respondError(w, r, err, statusFromError(err))
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// handleDeleteItem removes an item by id.
func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.service.DeleteItem(r.Context(), id); err != nil {
		s.respondError(w, r, err, statusFromError(err))
		return
	}

	logging.FromContext(r.Context()).Info("item deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// handleTaxonomy returns the fixed category to subcategory mapping for
// form selectors.
func (s *Server) handleTaxonomy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, inventory.Taxonomy)
}
