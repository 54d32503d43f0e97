package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/wensjes/registry/internal/access"
	"github.com/wensjes/registry/internal/metrics"
	"github.com/wensjes/registry/internal/models"
	"github.com/wensjes/registry/internal/storage"
)

// handleWatchItems streams a person's wishlist over Server-Sent Events:
// the current list immediately, then the whole list again after every
// change. Clients render each event as the complete new state.
func (s *Server) handleWatchItems(w http.ResponseWriter, r *http.Request) {
	s.watchItems(w, r, s.identity(r), chi.URLParam(r, "id"))
}

// handleSharedWatch is the anonymous variant, addressed by share code and
// gated by the pin token like every other shared route.
func (s *Server) handleSharedWatch(w http.ResponseWriter, r *http.Request) {
	ident := s.sharedIdentity(r)
	view, err := s.svc.SharedView(r.Context(), ident, chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, err)
		return
	}
	if view.PinRequired {
		writeError(w, storage.ErrNotFound)
		return
	}
	s.watchItems(w, r, ident, view.Person.ID)
}

func (s *Server) watchItems(w http.ResponseWriter, r *http.Request, ident access.Identity, personID string) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "streaming unsupported"})
		return
	}

	// Snapshots arrive from the store's broadcast goroutine while this
	// goroutine waits for the client to go away; the mutex keeps the two
	// off the response writer at the same time. The first snapshot lands
	// during WatchItems itself, which is why the stream headers go out
	// before subscribing.
	var mu sync.Mutex
	deliver := func(items []*models.WishlistItem) {
		data, err := json.Marshal(items)
		if err != nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		w.Write([]byte("event: items\ndata: "))
		w.Write(data)
		w.Write([]byte("\n\n"))
		flusher.Flush()
		metrics.SnapshotDelivered()
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	cancel, err := s.svc.WatchItems(r.Context(), ident, personID, deliver)
	if err != nil {
		// The access check failed before any snapshot was written, so a
		// plain error response is still possible.
		writeError(w, err)
		return
	}
	metrics.WatcherOpened()
	defer metrics.WatcherClosed()

	<-r.Context().Done()
	cancel()
}
