// internal/app/features/engagement/routes.go
package engagement

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter mounted under /api/members.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/engagement", h.ServeEngagement)
	r.Get("/engagement.csv", h.ServeCSV)
	return r
}
