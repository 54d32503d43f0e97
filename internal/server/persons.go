package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wensjes/registry/internal/access"
	"github.com/wensjes/registry/internal/models"
)

func (s *Server) identity(r *http.Request) access.Identity {
	return access.Identity{UserID: userID(r.Context())}
}

func (s *Server) handleListPersons(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.ListPersons(r.Context(), userID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	var person models.Person
	if !decodeJSON(w, r, &person) {
		return
	}

	created, err := s.svc.CreatePerson(r.Context(), userID(r.Context()), &person)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetPerson(w http.ResponseWriter, r *http.Request) {
	person, err := s.svc.GetPerson(r.Context(), s.identity(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if person.OwnerID != userID(r.Context()) {
		person = redactPerson(person)
	}
	writeJSON(w, http.StatusOK, person)
}

func (s *Server) handleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	var patch models.PersonPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	if err := s.svc.UpdatePerson(r.Context(), s.identity(r), chi.URLParam(r, "id"), &patch); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleDeletePerson(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeletePerson(r.Context(), s.identity(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type addCollaboratorRequest struct {
	Username string `json:"username"`
}

func (s *Server) handleAddCollaborator(w http.ResponseWriter, r *http.Request) {
	var req addCollaboratorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.svc.AddCollaborator(r.Context(), s.identity(r), chi.URLParam(r, "id"), req.Username); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleRemoveCollaborator(w http.ResponseWriter, r *http.Request) {
	err := s.svc.RemoveCollaborator(r.Context(), s.identity(r), chi.URLParam(r, "id"), chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleBudget(w http.ResponseWriter, r *http.Request) {
	summary, err := s.svc.Budget(r.Context(), s.identity(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := s.svc.Suggestions(r.Context(), s.identity(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestions)
}
