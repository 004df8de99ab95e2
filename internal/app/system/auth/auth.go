package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Current-Session helper                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

type ctxKey string

const currentSessionKey ctxKey = "currentSession"

// CurrentSession returns the session & “found?” flag.
func CurrentSession(r *http.Request) (*Session, bool) {
	s, ok := r.Context().Value(currentSessionKey).(*Session)
	return s, ok && s != nil
}

// WithSession returns r carrying s in its context. Handlers normally get this
// from LoadSession; tests use it directly.
func WithSession(r *http.Request, s *Session) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentSessionKey, s))
}

// LoadSession injects the session into context if the caller is signed in.
// Expired sessions are deleted. Sessions close to expiry are re-issued with a
// fresh lifetime.
func (sm *SessionManager) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := sm.Load(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		now := sm.clock.Now()
		if s.Expired(now) {
			if err := sm.Clear(w, r); err != nil {
				sm.logger.Warn("failed to clear expired session", zap.Error(err))
			}
			next.ServeHTTP(w, r)
			return
		}

		if sm.renewWithin > 0 && s.ExpiresAt.Sub(now) < sm.renewWithin {
			s.ExpiresAt = now.Add(sm.maxAge)
			if err := sm.Save(w, r, s); err != nil {
				sm.logger.Warn("failed to renew session", zap.String("session_id", s.ID), zap.Error(err))
			} else {
				sm.logger.Debug("session renewed", zap.String("session_id", s.ID), zap.Time("expires_at", s.ExpiresAt))
			}
		}

		next.ServeHTTP(w, WithSession(r, s))
	})
}

// RequireSignedIn ensures there is a session in context (set by LoadSession).
// If not signed in:
//   - HTMX: sends HX-Redirect to /
//   - HTML: 303 redirect to /
//   - API:  401 with a JSON body.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentSession(r); ok {
			next.ServeHTTP(w, r)
			return
		}

		if r.Header.Get("HX-Request") == "true" {
			w.Header().Set("HX-Redirect", "/")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if wantsHTML(r) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":         "Authentication required",
			"authenticated": false,
		})
	})
}

func wantsHTML(r *http.Request) bool {
	if r.Header.Get("HX-Request") == "true" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
