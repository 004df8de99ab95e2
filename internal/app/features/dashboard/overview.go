// internal/app/features/dashboard/overview.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/whopinsights/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type overviewData struct {
	viewdata.BaseVM
	Stats overviewStats
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeOverview(w http.ResponseWriter, r *http.Request) {
	rk, err := h.ranking(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load members for overview failed", err, "Unable to load member data.", "/")
		return
	}

	data := overviewData{
		BaseVM: viewdata.NewBaseVM(r, "Overview", "/"),
		Stats:  summarize(rk),
	}

	h.Log.Debug("dashboard overview served", zap.Int("members", rk.TotalCount))

	templates.Render(w, r, "dashboard_overview", data)
}
