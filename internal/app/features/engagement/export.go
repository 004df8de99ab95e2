// internal/app/features/engagement/export.go
package engagement

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	eng "github.com/dalemusser/whopinsights/internal/app/system/engagement"
	"go.uber.org/zap"
)

var csvHeader = []string{"rank", "id", "name", "email", "engagement_score", "band", "login_count", "last_active"}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /api/members/engagement.csv                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeCSV streams every member ranked by descending engagement score.
func (h *Handler) ServeCSV(w http.ResponseWriter, r *http.Request) {
	list, err := h.Source.FetchAll(r.Context())
	if err != nil {
		h.Log.Error("fetch members for CSV failed", zap.Error(err))
		http.Error(w, failureMessage, http.StatusInternalServerError)
		return
	}

	scored := h.Evaluator.Scores(list)
	ranked := eng.Rank(scored, len(scored)).TopEngaged

	now := h.Evaluator.Clock.Now()
	filename := "member_engagement_" + now.Format("20060102_150405") + ".csv"

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))

	// UTF-8 BOM for Excel
	_, _ = w.Write([]byte{0xEF, 0xBB, 0xBF})

	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	defer cw.Flush()

	_ = cw.Write(csvHeader)
	for i, m := range ranked {
		_ = cw.Write([]string{
			strconv.Itoa(i + 1),
			m.ID,
			m.Name,
			m.Email,
			strconv.FormatFloat(m.EngagementScore, 'f', 1, 64),
			eng.BandFor(m.EngagementScore).Label,
			strconv.Itoa(m.Logins()),
			time.UnixMilli(m.LastActiveAt()).UTC().Format(time.RFC3339),
		})
	}
}
