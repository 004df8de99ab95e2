// internal/app/features/dashboard/common.go
package dashboard

import (
	"math"

	eng "github.com/dalemusser/whopinsights/internal/app/system/engagement"
	"github.com/dalemusser/whopinsights/internal/app/system/paging"
)

// overviewStats are the headline cards on the overview page.
type overviewStats struct {
	TotalMembers int
	HighEngaged  int
	AtRisk       int
	AverageScore float64
}

// memberRow is one line of a ranked table.
type memberRow struct {
	Rank  int
	ID    string
	Name  string
	Email string
	Score float64
	Band  eng.Band
}

// chartBar is one column of the score chart.
type chartBar struct {
	Name  string
	Score float64
	Color string
}

func summarize(rk eng.Ranking) overviewStats {
	s := overviewStats{TotalMembers: rk.TotalCount}
	if len(rk.All) == 0 {
		return s
	}

	var sum float64
	for _, m := range rk.All {
		sum += m.EngagementScore
		switch eng.BandFor(m.EngagementScore).Label {
		case "High":
			s.HighEngaged++
		case "At Risk":
			s.AtRisk++
		}
	}
	s.AverageScore = math.Round(sum/float64(len(rk.All))*10) / 10
	return s
}

// topRows numbers the top slice #1, #2, …
func topRows(rk eng.Ranking) []memberRow {
	rows := make([]memberRow, 0, len(rk.TopEngaged))
	for i, m := range rk.TopEngaged {
		rows = append(rows, rowFor(i+1, m))
	}
	return rows
}

// atRiskRows numbers the bottom slice from the end of the full ranking, so
// the lowest scorer is #total.
func atRiskRows(rk eng.Ranking) []memberRow {
	rows := make([]memberRow, 0, len(rk.AtRisk))
	for i, m := range rk.AtRisk {
		rows = append(rows, rowFor(rk.TotalCount-i, m))
	}
	return rows
}

// pagedRows numbers one page of every member, best score first, by
// absolute position.
func pagedRows(rk eng.Ranking, start, size int) ([]memberRow, paging.Result) {
	ordered := eng.Rank(rk.All, len(rk.All)).TopEngaged
	page, res := paging.Page(ordered, start, size)
	rows := make([]memberRow, 0, len(page))
	for i, m := range page {
		rows = append(rows, rowFor(start+i, m))
	}
	return rows, res
}

func chartBars(rk eng.Ranking) []chartBar {
	bars := make([]chartBar, 0, len(rk.All))
	for _, m := range rk.All {
		bars = append(bars, chartBar{
			Name:  m.Name,
			Score: m.EngagementScore,
			Color: eng.BandFor(m.EngagementScore).Color,
		})
	}
	return bars
}

func rowFor(rank int, m eng.ScoredMember) memberRow {
	return memberRow{
		Rank:  rank,
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
		Score: m.EngagementScore,
		Band:  eng.BandFor(m.EngagementScore),
	}
}
