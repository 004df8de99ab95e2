package engagement

import (
	"fmt"

	"github.com/dalemusser/whopinsights/internal/app/system/clock"
	"github.com/dalemusser/whopinsights/internal/domain/models"
)

// Evaluator applies the configured weights and ranking size at the instant
// given by its clock. It holds no per-request state and is safe to share.
type Evaluator struct {
	Weights     Weights
	RankingSize int
	Clock       clock.Clock
}

// NewEvaluator constructs an Evaluator. A nil clock uses the system clock and
// a non-positive ranking size uses DefaultRankingSize.
func NewEvaluator(w Weights, rankingSize int, c clock.Clock) *Evaluator {
	if c == nil {
		c = clock.System{}
	}
	if rankingSize <= 0 {
		rankingSize = DefaultRankingSize
	}
	return &Evaluator{Weights: w, RankingSize: rankingSize, Clock: c}
}

// Categories builds the category report for members.
func (e *Evaluator) Categories(members []models.Member) CategoryReport {
	now := e.Clock.Now()
	list := make([]MemberEngagement, 0, len(members))
	for _, m := range members {
		list = append(list, Describe(m, now))
	}
	return CategoryReport{Members: list, Stats: CountCategories(list)}
}

// Scores attaches an engagement score to each member, in source order.
func (e *Evaluator) Scores(members []models.Member) []ScoredMember {
	now := e.Clock.Now()
	scored := make([]ScoredMember, 0, len(members))
	for _, m := range members {
		scored = append(scored, ScoredMember{Member: m, EngagementScore: Score(m, now, e.Weights)})
	}
	return scored
}

// Ranking scores members and builds the ranked report.
func (e *Evaluator) Ranking(members []models.Member) Ranking {
	return Rank(e.Scores(members), e.RankingSize)
}

// Evaluate runs the evaluator selected by s and returns its report, either
// a CategoryReport or a Ranking.
func (e *Evaluator) Evaluate(s Strategy, members []models.Member) (any, error) {
	switch s {
	case StrategyScore:
		return e.Ranking(members), nil
	case StrategyCategory:
		return e.Categories(members), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}
