package engagement

import (
	"errors"
	"math"
	"time"

	"github.com/dalemusser/whopinsights/internal/domain/models"
)

// Weights blends the three score components. The defaults are 0.4 / 0.4 / 0.2.
type Weights struct {
	Login   float64
	Recency float64
	Age     float64
}

// DefaultWeights are the product weights used when none are configured.
var DefaultWeights = Weights{Login: 0.4, Recency: 0.4, Age: 0.2}

// Validate rejects negative weights and an all-zero blend.
func (w Weights) Validate() error {
	if w.Login < 0 || w.Recency < 0 || w.Age < 0 {
		return errors.New("engagement weights must be non-negative")
	}
	if w.Login+w.Recency+w.Age == 0 {
		return errors.New("engagement weights must not all be zero")
	}
	return nil
}

// ScoredMember is a member with its engagement score attached.
type ScoredMember struct {
	models.Member
	EngagementScore float64 `json:"engagement_score"`
}

// Score computes the 0–100 engagement score for a member, rounded to one
// decimal place:
//
//	accountAgeDays = max((now - created_at) / 1 day, 1)
//	loginScore     = min(logins / accountAgeDays * 10, 100)
//	recencyScore   = max(0, 100 - daysSinceActive * 2)   (fractional days)
//	ageScore       = min(accountAgeDays / 2, 100)
func Score(m models.Member, now time.Time, w Weights) float64 {
	nowMs := now.UnixMilli()

	ageDays := float64(nowMs-m.CreatedAt) / msPerDay
	if ageDays < 1 {
		ageDays = 1
	}
	idleDays := float64(nowMs-m.LastActiveAt()) / msPerDay

	loginScore := math.Min(float64(m.Logins())/ageDays*10, 100)
	recencyScore := math.Max(0, 100-idleDays*2)
	ageScore := math.Min(ageDays/2, 100)

	total := loginScore*w.Login + recencyScore*w.Recency + ageScore*w.Age
	return roundTenth(total)
}

// roundTenth rounds to one decimal, with halves going toward +Inf.
func roundTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
