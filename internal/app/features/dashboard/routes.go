// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/dalemusser/whopinsights/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes wires the dashboard feature under whatever mount point
// the top-level router chooses (e.g., "/dashboard").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	// All dashboards require the operator to be signed in.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeDashboard)
		pr.Get("/members", h.ServeMembers)
		pr.Get("/content", h.ServeContent)
		pr.Get("/revenue", h.ServeRevenue)
		pr.Get("/company/{companyID}", h.ServeCompany)
	})

	return r
}
