package httpapi

import (
	"fmt"
	"net/http"

	"github.com/renato0307/pomo/internal/api"
	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/services"
)

type startRequest struct {
	Type string `json:"type"`
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	session, err := s.pomodoro.Start(r.Context(), services.StartParams{
		Tenant: tenantFrom(r),
		Type:   req.Type,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, map[string]int64{"id": session.ID}, http.StatusCreated)
}

type completeRequest struct {
	DurationSec *int64 `json:"duration_sec"`
	ID          *int64 `json:"id"`
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	var req completeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.ID == nil {
		respondError(w, fmt.Errorf("%w: id required", domain.ErrInvalidInput))
		return
	}

	result, err := s.pomodoro.Complete(r.Context(), services.CompleteParams{
		FallbackDuration: req.DurationSec,
		ID:               *req.ID,
		Tenant:           tenantFrom(r),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, api.NewComplete(result), http.StatusOK)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sessions, err := s.pomodoro.List(r.Context(), services.ListParams{
		Date:   query.Get("date"),
		Status: query.Get("status"),
		Tenant: tenantFrom(r),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]api.Session, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, api.NewSession(session))
	}
	respondJSON(w, map[string]any{"sessions": out, "count": len(out)}, http.StatusOK)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	result, err := s.stats.ForDate(r.Context(), tenantFrom(r), r.URL.Query().Get("date"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, api.DateStats{
		CompletedCount:    result.CompletedCount,
		TotalFocusSeconds: result.TotalFocusSeconds,
	}, http.StatusOK)
}
