// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/whopinsights/internal/app/features/errors"
	"github.com/dalemusser/whopinsights/internal/app/store/members"
	"github.com/dalemusser/whopinsights/internal/app/system/auth"
	eng "github.com/dalemusser/whopinsights/internal/app/system/engagement"
	"github.com/dalemusser/whopinsights/internal/domain/models"
	"go.uber.org/zap"
)

// AccessChecker asks the platform whether the operator may see a company.
type AccessChecker interface {
	CheckAccess(ctx context.Context, accessToken, companyID string) (models.CompanyAccess, error)
}

type Handler struct {
	Source    members.Source
	Evaluator *eng.Evaluator
	Access    AccessChecker
	ErrLog    *uierrors.ErrorLogger
	Log       *zap.Logger
}

func NewHandler(src members.Source, ev *eng.Evaluator, access AccessChecker, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Source:    src,
		Evaluator: ev,
		Access:    access,
		ErrLog:    errLog,
		Log:       logger,
	}
}

// ranking loads every member and ranks them by score.
func (h *Handler) ranking(ctx context.Context) (eng.Ranking, error) {
	list, err := h.Source.FetchAll(ctx)
	if err != nil {
		return eng.Ranking{}, err
	}
	return h.Evaluator.Ranking(list), nil
}

// ServeDashboard is the landing page after sign-in.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentSession(r); !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.ServeOverview(w, r)
}
