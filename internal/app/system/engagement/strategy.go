package engagement

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy selects which evaluator produces the engagement report.
type Strategy string

const (
	// StrategyScore ranks members by continuous engagement score.
	StrategyScore Strategy = "score"
	// StrategyCategory buckets members into high / medium / low.
	StrategyCategory Strategy = "category"
)

// ErrUnknownStrategy is returned for a strategy name that is not recognised.
var ErrUnknownStrategy = errors.New("unknown engagement strategy")

// ParseStrategy parses a strategy name, case-insensitively.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyScore:
		return StrategyScore, nil
	case StrategyCategory:
		return StrategyCategory, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}
