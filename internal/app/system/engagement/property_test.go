package engagement_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/dalemusser/whopinsights/internal/app/system/engagement"
	"github.com/dalemusser/whopinsights/internal/domain/models"
	"pgregory.net/rapid"
)

// drawMember draws a member whose timestamps are never after testNow.
func drawMember(t *rapid.T, logins *rapid.Generator[int]) models.Member {
	ageMs := rapid.Int64Range(0, 3*365*int64(day/time.Millisecond)).Draw(t, "ageMs")
	created := testNow.UnixMilli() - ageMs
	idleMs := rapid.Int64Range(0, ageMs).Draw(t, "idleMs")
	last := testNow.UnixMilli() - idleMs
	n := logins.Draw(t, "logins")

	m := models.Member{ID: "m", CreatedAt: created}
	m.Metadata.LoginCount = &n
	if rapid.Bool().Draw(t, "hasLastActive") {
		m.Metadata.LastActive = &last
	}
	return m
}

func TestProperty_OverHundredLoginsIsHigh(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := drawMember(t, rapid.IntRange(101, 100000))
		if got := engagement.Categorize(m, testNow); got != engagement.High {
			t.Fatalf("Categorize() = %q, want high", got)
		}
	})
}

func TestProperty_UnderTenLoginsIsLow(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := drawMember(t, rapid.IntRange(0, 9))
		if got := engagement.Categorize(m, testNow); got != engagement.Low {
			t.Fatalf("Categorize() = %q, want low", got)
		}
	})
}

func TestProperty_AgesAreNonNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := drawMember(t, rapid.IntRange(0, 1000))
		d := engagement.Describe(m, testNow)
		if d.MembershipAge < 0 {
			t.Fatalf("MembershipAge = %d, want >= 0", d.MembershipAge)
		}
		if d.LastActive != "Today" && d.LastActive != "Yesterday" && d.LastActive[0] == '-' {
			t.Fatalf("LastActive = %q, want non-negative days", d.LastActive)
		}
	})
}

func TestProperty_ScoreIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := drawMember(t, rapid.IntRange(0, 1000))
		a := engagement.Score(m, testNow, engagement.DefaultWeights)
		b := engagement.Score(m, testNow, engagement.DefaultWeights)
		if a != b {
			t.Fatalf("Score() not deterministic: %v != %v", a, b)
		}
		if a < 0 || a > 100 {
			t.Fatalf("Score() = %v, want within [0, 100] for past timestamps", a)
		}
	})
}

func TestProperty_RankingSlices(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		scores := rapid.SliceOfN(rapid.Float64Range(0, 100), 0, 40).Draw(t, "scores")
		n := rapid.IntRange(1, 15).Draw(t, "n")

		in := make([]engagement.ScoredMember, len(scores))
		present := make(map[string]bool, len(scores))
		for i, s := range scores {
			id := fmt.Sprintf("m%d", i)
			in[i] = scored(id, s)
			present[id] = true
		}

		r := engagement.Rank(in, n)

		for i, s := range r.TopEngaged {
			if !present[s.ID] {
				t.Fatalf("top_engaged contains unknown member %q", s.ID)
			}
			if i > 0 && r.TopEngaged[i-1].EngagementScore < s.EngagementScore {
				t.Fatalf("top_engaged not descending at %d", i)
			}
		}
		for i, s := range r.AtRisk {
			if !present[s.ID] {
				t.Fatalf("at_risk contains unknown member %q", s.ID)
			}
			if i > 0 && r.AtRisk[i-1].EngagementScore > s.EngagementScore {
				t.Fatalf("at_risk not ascending at %d", i)
			}
		}
		if len(r.TopEngaged) > n || len(r.AtRisk) > n {
			t.Fatalf("slices exceed n=%d", n)
		}
	})
}
