package httpapi

import (
	"net/http"

	"github.com/renato0307/pomo/internal/api"
	"github.com/renato0307/pomo/internal/i18n"
)

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	summary, err := s.stats.Progress(r.Context(), tenantFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, api.NewProgress(summary), http.StatusOK)
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	result, err := s.stats.Achievements(r.Context(), tenantFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}

	badges := i18n.LocalizeBadges(result.Badges, resolveLanguage(r))
	respondJSON(w, api.NewAchievements(badges, result.NewlyUnlocked), http.StatusOK)
}

func (s *Server) handleWeekly(w http.ResponseWriter, r *http.Request) {
	weekly, err := s.stats.Weekly(r.Context(), tenantFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, api.NewWeekly(weekly), http.StatusOK)
}

func (s *Server) handleMonthly(w http.ResponseWriter, r *http.Request) {
	monthly, err := s.stats.Monthly(r.Context(), tenantFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, api.NewMonthly(monthly), http.StatusOK)
}
