package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/logging"
	"github.com/renato0307/pomo/internal/services"
)

type syncRequest struct {
	Action    string `json:"action"`
	Duration  *int64 `json:"duration"`
	Remaining *int64 `json:"remaining"`
	SessionID *int64 `json:"session_id"`
	Source    string `json:"source"`
	Type      string `json:"type"`
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	var req syncRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	event, err := s.pomodoro.Sync(r.Context(), services.SyncParams{
		Action:    req.Action,
		Duration:  req.Duration,
		Remaining: req.Remaining,
		Room:      chi.URLParam(r, "room"),
		SessionID: req.SessionID,
		Source:    req.Source,
		Tenant:    tenantFrom(r),
		Type:      req.Type,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, event, http.StatusAccepted)
}

type readyEvent struct {
	Room         string `json:"room"`
	SubscriberID string `json:"subscriber_id"`
}

// handleSyncEvents streams the room's timer events as server-sent events.
// The first "ready" event carries the subscriber id to send back as source.
func (s *Server) handleSyncEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondMessage(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	if s.events == nil {
		respondMessage(w, "sync disabled", http.StatusServiceUnavailable)
		return
	}

	room := domain.RoomFor(chi.URLParam(r, "room"))
	id, events, cancel := s.events.Subscribe(domain.RoomKey(tenantFrom(r), room))
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := writeEvent(w, "ready", readyEvent{Room: room, SubscriberID: id}); err != nil {
		return
	}
	flusher.Flush()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := writeEvent(w, "timer_sync", event); err != nil {
				logging.Logger.Debug("Event stream closed", "subscriber", id, "error", err)
				return
			}
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
	return err
}
