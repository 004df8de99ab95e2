// internal/app/features/dashboard/company.go
package dashboard

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/whopinsights/internal/app/features/errors"
	"github.com/dalemusser/whopinsights/internal/app/system/auth"
	"github.com/dalemusser/whopinsights/internal/app/system/timeouts"
	"github.com/dalemusser/whopinsights/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type companyData struct {
	viewdata.BaseVM
	CompanyID   string
	AccessLevel string
	Stats       overviewStats
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard/company/{companyID}                                          |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeCompany(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.CurrentSession(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	companyID := strings.TrimSpace(chi.URLParam(r, "companyID"))
	if companyID == "" {
		uierrors.RenderNotFound(w, r, "Company not found.", "/dashboard")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	access, err := h.Access.CheckAccess(ctx, sess.AccessToken, companyID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "company access check failed", err, "Unable to verify access to this company.", "/dashboard")
		return
	}
	if !access.HasAccess {
		h.Log.Info("company access denied",
			zap.String("company_id", companyID),
			zap.String("user_id", sess.UserID))
		uierrors.RenderForbidden(w, r, "You do not have access to this company.", "/dashboard")
		return
	}

	rk, err := h.ranking(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load members for company failed", err, "Unable to load member data.", "/dashboard")
		return
	}

	templates.Render(w, r, "dashboard_company", companyData{
		BaseVM:      viewdata.NewBaseVM(r, "Company", "/dashboard"),
		CompanyID:   companyID,
		AccessLevel: access.AccessLevel,
		Stats:       summarize(rk),
	})
}
