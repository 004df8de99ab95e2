// internal/app/features/dashboard/members.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/whopinsights/internal/app/system/paging"
	"github.com/dalemusser/whopinsights/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

type membersData struct {
	viewdata.BaseVM
	Total  int
	Chart  []chartBar
	Top    []memberRow
	AtRisk []memberRow

	// Full ranking, one page at a time.
	All     []memberRow
	Range   paging.Range
	HasPrev bool
	HasNext bool
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard/members                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeMembers(w http.ResponseWriter, r *http.Request) {
	rk, err := h.ranking(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load members for ranking failed", err, "Unable to load member data.", "/dashboard")
		return
	}

	start := paging.ParseStart(r)
	all, res := pagedRows(rk, start, paging.PageSize)

	data := membersData{
		BaseVM: viewdata.NewBaseVM(r, "Member Engagement", "/dashboard"),
		Total:  rk.TotalCount,
		Chart:  chartBars(rk),
		Top:    topRows(rk),
		AtRisk: atRiskRows(rk),

		All:     all,
		Range:   paging.ComputeRange(start, len(all), paging.PageSize),
		HasPrev: res.HasPrev,
		HasNext: res.HasNext,
	}

	templates.Render(w, r, "dashboard_members", data)
}
