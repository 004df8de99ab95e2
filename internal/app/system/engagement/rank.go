package engagement

import "sort"

// DefaultRankingSize is how many members appear in each ranked slice.
const DefaultRankingSize = 10

// Ranking is the payload for the score strategy.
//
// All keeps source order. TopEngaged is sorted by descending score; AtRisk
// holds the lowest scores in ascending order.
type Ranking struct {
	All        []ScoredMember `json:"all"`
	TopEngaged []ScoredMember `json:"top_engaged"`
	AtRisk     []ScoredMember `json:"at_risk"`
	TotalCount int            `json:"total_count"`
}

// Rank builds the top and at-risk slices of size n from scored members.
// Equal scores keep their source order.
func Rank(scored []ScoredMember, n int) Ranking {
	if n < 0 {
		n = 0
	}

	sorted := make([]ScoredMember, len(scored))
	copy(sorted, scored)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EngagementScore > sorted[j].EngagementScore
	})

	top := n
	if top > len(sorted) {
		top = len(sorted)
	}

	tail := sorted[len(sorted)-top:]
	atRisk := make([]ScoredMember, 0, len(tail))
	for i := len(tail) - 1; i >= 0; i-- {
		atRisk = append(atRisk, tail[i])
	}

	all := scored
	if all == nil {
		all = []ScoredMember{}
	}

	return Ranking{
		All:        all,
		TopEngaged: append([]ScoredMember{}, sorted[:top]...),
		AtRisk:     atRisk,
		TotalCount: len(scored),
	}
}
