// internal/app/features/dashboard/placeholders.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/whopinsights/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

type placeholderData struct {
	viewdata.BaseVM
	Heading string
	Blurb   string
}

// GET /dashboard/content
func (h *Handler) ServeContent(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "dashboard_placeholder", placeholderData{
		BaseVM:  viewdata.NewBaseVM(r, "Content", "/dashboard"),
		Heading: "Content performance",
		Blurb:   "Views and completion rates per product will appear here.",
	})
}

// GET /dashboard/revenue
func (h *Handler) ServeRevenue(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "dashboard_placeholder", placeholderData{
		BaseVM:  viewdata.NewBaseVM(r, "Revenue", "/dashboard"),
		Heading: "Revenue",
		Blurb:   "Monthly recurring revenue and churn will appear here.",
	})
}
