package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/text/language"

	"github.com/renato0307/pomo/internal/i18n"
	"github.com/renato0307/pomo/internal/logging"
	"github.com/renato0307/pomo/internal/store"
)

type contextKey string

const tenantKey contextKey = "tenant"

// LangParam overrides Accept-Language when present
const LangParam = "lang"

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		logging.Logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"requestID", middleware.GetReqID(r.Context()))
	})
}

// tenantMiddleware resolves the tenant from UserHeader, falling back to the default user
func (s *Server) tenantMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserHeader)
		if strings.TrimSpace(raw) == "" {
			raw = s.defaultUser
		}

		tenant, err := store.NormalizeTenant(raw)
		if err != nil {
			respondError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), tenantKey, tenant)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tenantFrom(r *http.Request) string {
	tenant, _ := r.Context().Value(tenantKey).(string)
	return tenant
}

// resolveLanguage picks the lang query parameter, then Accept-Language
func resolveLanguage(r *http.Request) language.Tag {
	if tag, ok := i18n.ParseTag(r.URL.Query().Get(LangParam)); ok {
		return tag
	}
	return i18n.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
}
