// internal/app/features/userinfo/routes.go
package userinfo

import (
	"github.com/dalemusser/whopinsights/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers GET /api/me on the supplied router.
func MountRoutes(r chi.Router, h *Handler, sm *auth.SessionManager) {
	r.With(sm.RequireSignedIn).Get("/api/me", h.ServeMe)
}
