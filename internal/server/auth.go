package server

import (
	"net/http"

	"github.com/wensjes/registry/internal/models"
	"github.com/wensjes/registry/internal/storage"
)

type registerRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := s.auth.Register(r.Context(), req.Username, req.DisplayName, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := s.session.Establish(user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := s.auth.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := s.session.Establish(user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Logout(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.GetUserByID(r.Context(), userID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil {
		writeError(w, storage.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// handleLabels serves the static UI vocabulary: the interest catalog and
// the display labels for age groups and genders.
func (s *Server) handleLabels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"interests": models.Interests,
		"ageGroups": models.AgeGroupLabel,
		"genders":   models.GenderLabel,
	})
}
