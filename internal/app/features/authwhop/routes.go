// internal/app/features/authwhop/routes.go
package authwhop

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the router for Whop OAuth endpoints.
// These routes are public (no authentication required). limit, when not
// nil, wraps them (rate limiting).
func Routes(h *Handler, limit func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	if limit != nil {
		r.Use(limit)
	}

	// GET /auth/login - Initiate Whop OAuth flow
	r.Get("/login", h.ServeLogin)

	// GET /auth/callback - Handle Whop OAuth callback
	r.Get("/callback", h.ServeCallback)

	return r
}
