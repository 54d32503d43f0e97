package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wensjes/registry/internal/models"
)

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.svc.ListItems(r.Context(), s.identity(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var item models.WishlistItem
	if !decodeJSON(w, r, &item) {
		return
	}

	created, err := s.svc.AddItem(r.Context(), s.identity(r), chi.URLParam(r, "id"), &item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	var patch models.ItemPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	if err := s.svc.UpdateItem(r.Context(), s.identity(r), chi.URLParam(r, "id"), &patch); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteItem(r.Context(), s.identity(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTogglePurchased(w http.ResponseWriter, r *http.Request) {
	item, err := s.svc.TogglePurchased(r.Context(), s.identity(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

type reorderRequest struct {
	ItemIDs []string `json:"itemIds"`
}

func (s *Server) handleReorder(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.svc.Reorder(r.Context(), s.identity(r), chi.URLParam(r, "id"), req.ItemIDs); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
