package engagement_test

import (
	"testing"

	"github.com/dalemusser/whopinsights/internal/app/system/engagement"
	"github.com/dalemusser/whopinsights/internal/domain/models"
	"github.com/google/go-cmp/cmp"
)

func scored(id string, score float64) engagement.ScoredMember {
	return engagement.ScoredMember{Member: models.Member{ID: id}, EngagementScore: score}
}

func ids(list []engagement.ScoredMember) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.ID)
	}
	return out
}

func TestRank_TopAndAtRisk(t *testing.T) {
	in := []engagement.ScoredMember{
		scored("a", 50), scored("b", 90), scored("c", 10),
		scored("d", 70), scored("e", 30),
	}

	r := engagement.Rank(in, 2)

	if diff := cmp.Diff([]string{"b", "d"}, ids(r.TopEngaged)); diff != "" {
		t.Errorf("TopEngaged mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"c", "e"}, ids(r.AtRisk)); diff != "" {
		t.Errorf("AtRisk mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e"}, ids(r.All)); diff != "" {
		t.Errorf("All should keep source order (-want +got):\n%s", diff)
	}
	if r.TotalCount != 5 {
		t.Errorf("TotalCount = %d, want 5", r.TotalCount)
	}
}

func TestRank_TiesKeepInsertionOrder(t *testing.T) {
	in := []engagement.ScoredMember{
		scored("a", 40), scored("b", 80), scored("c", 40), scored("d", 80), scored("e", 40),
	}

	r := engagement.Rank(in, 10)

	if diff := cmp.Diff([]string{"b", "d", "a", "c", "e"}, ids(r.TopEngaged)); diff != "" {
		t.Errorf("TopEngaged mismatch (-want +got):\n%s", diff)
	}
	// at_risk is the tail of the stable order, reversed.
	if diff := cmp.Diff([]string{"e", "c", "a", "d", "b"}, ids(r.AtRisk)); diff != "" {
		t.Errorf("AtRisk mismatch (-want +got):\n%s", diff)
	}
}

func TestRank_FewerThanN(t *testing.T) {
	in := []engagement.ScoredMember{scored("a", 1), scored("b", 2)}
	r := engagement.Rank(in, 10)
	if len(r.TopEngaged) != 2 || len(r.AtRisk) != 2 {
		t.Fatalf("got %d top / %d at risk, want 2 / 2", len(r.TopEngaged), len(r.AtRisk))
	}
}

func TestRank_Empty(t *testing.T) {
	r := engagement.Rank(nil, 10)
	if r.All == nil || r.TopEngaged == nil || r.AtRisk == nil {
		t.Fatal("empty ranking should use empty slices, not nil")
	}
	if r.TotalCount != 0 {
		t.Errorf("TotalCount = %d, want 0", r.TotalCount)
	}
}

func TestRank_DoesNotReorderInput(t *testing.T) {
	in := []engagement.ScoredMember{scored("a", 1), scored("b", 2), scored("c", 3)}
	_ = engagement.Rank(in, 2)
	if diff := cmp.Diff([]string{"a", "b", "c"}, ids(in)); diff != "" {
		t.Errorf("input was reordered (-want +got):\n%s", diff)
	}
}
