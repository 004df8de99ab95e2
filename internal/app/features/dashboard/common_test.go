package dashboard

import (
	"testing"

	eng "github.com/dalemusser/whopinsights/internal/app/system/engagement"
	"github.com/dalemusser/whopinsights/internal/domain/models"
)

func scoredMembers(scores ...float64) []eng.ScoredMember {
	out := make([]eng.ScoredMember, len(scores))
	for i, s := range scores {
		out[i] = eng.ScoredMember{
			Member:          models.Member{ID: string(rune('a' + i)), Name: string(rune('A' + i))},
			EngagementScore: s,
		}
	}
	return out
}

func TestSummarize(t *testing.T) {
	rk := eng.Rank(scoredMembers(80, 70, 50, 39.9, 10), 10)
	got := summarize(rk)

	want := overviewStats{TotalMembers: 5, HighEngaged: 2, AtRisk: 2, AverageScore: 50}
	if got != want {
		t.Errorf("summarize() got %+v, want %+v", got, want)
	}
}

func TestSummarize_Empty(t *testing.T) {
	got := summarize(eng.Rank(nil, 10))
	if got != (overviewStats{}) {
		t.Errorf("summarize(empty) got %+v", got)
	}
}

func TestRankedRows(t *testing.T) {
	rk := eng.Rank(scoredMembers(10, 90, 50, 30), 2)

	top := topRows(rk)
	if len(top) != 2 || top[0].Rank != 1 || top[0].Score != 90 || top[1].Rank != 2 || top[1].Score != 50 {
		t.Errorf("topRows() got %+v", top)
	}

	bottom := atRiskRows(rk)
	if len(bottom) != 2 || bottom[0].Rank != 4 || bottom[0].Score != 10 || bottom[1].Rank != 3 || bottom[1].Score != 30 {
		t.Errorf("atRiskRows() got %+v", bottom)
	}
	if bottom[0].Band.Label != "At Risk" {
		t.Errorf("band got %q, want %q", bottom[0].Band.Label, "At Risk")
	}
}

func TestChartBars_SourceOrder(t *testing.T) {
	bars := chartBars(eng.Rank(scoredMembers(10, 90), 10))
	if len(bars) != 2 || bars[0].Name != "A" || bars[1].Color != eng.BandFor(90).Color {
		t.Errorf("chartBars() got %+v", bars)
	}
}

func TestPagedRows(t *testing.T) {
	rk := eng.Rank(scoredMembers(10, 90, 50, 30, 70), 2)

	first, res := pagedRows(rk, 1, 2)
	if len(first) != 2 || first[0].Rank != 1 || first[0].Score != 90 || first[1].Rank != 2 || first[1].Score != 70 {
		t.Errorf("first page got %+v", first)
	}
	if res.HasPrev || !res.HasNext {
		t.Errorf("first page result got %+v", res)
	}

	last, res := pagedRows(rk, 5, 2)
	if len(last) != 1 || last[0].Rank != 5 || last[0].Score != 10 {
		t.Errorf("last page got %+v", last)
	}
	if !res.HasPrev || res.HasNext {
		t.Errorf("last page result got %+v", res)
	}
}
