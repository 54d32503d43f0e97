package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wensjes/registry/internal/access"
	"github.com/wensjes/registry/internal/models"
	"github.com/wensjes/registry/internal/service"
)

// sharedIdentity builds the requester identity for a share-code route: the
// code itself, the user id when a bearer token rode along, and whether a
// pin token proves the gate for this code.
func (s *Server) sharedIdentity(r *http.Request) access.Identity {
	code := chi.URLParam(r, "code")
	pinToken := r.Header.Get("X-Pin-Token")
	if pinToken == "" {
		pinToken = r.URL.Query().Get("pin_token")
	}
	return access.Identity{
		UserID:      userID(r.Context()),
		ShareCode:   code,
		PinVerified: s.pins.verified(code, pinToken),
	}
}

func (s *Server) handleSharedView(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	view, err := s.svc.SharedView(r.Context(), s.sharedIdentity(r), code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, redactShared(view))
}

type verifyPinRequest struct {
	Pin string `json:"pin"`
}

type verifyPinResponse struct {
	Verified bool   `json:"verified"`
	Token    string `json:"token,omitempty"`
}

func (s *Server) handleVerifyPin(w http.ResponseWriter, r *http.Request) {
	var req verifyPinRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	code := chi.URLParam(r, "code")
	ok, err := s.svc.VerifyPin(r.Context(), code, req.Pin)
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusOK, verifyPinResponse{Verified: false})
		return
	}

	token, err := s.pins.issue(code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, verifyPinResponse{Verified: true, Token: token})
}

func (s *Server) handleSharedToggle(w http.ResponseWriter, r *http.Request) {
	item, err := s.svc.TogglePurchased(r.Context(), s.sharedIdentity(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// redactShared strips the pin from a shared view. Visitors prove the pin
// through the gate; they never read it.
func redactShared(view *service.SharedList) *service.SharedList {
	if view.Person == nil {
		return view
	}
	redacted := *view
	person := *view.Person
	person.Pin = ""
	redacted.Person = &person
	return &redacted
}

// redactPerson strips the pin for responses to non-owners.
func redactPerson(p *models.Person) *models.Person {
	if p.Pin == "" {
		return p
	}
	c := *p
	c.Pin = ""
	return &c
}
