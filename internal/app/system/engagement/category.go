// Package engagement turns member records into engagement categories and
// scores, and aggregates them into the summaries shown on the dashboard.
//
// Everything here is a pure function of the member record and the instant
// passed in; nothing is cached between calls.
package engagement

import (
	"fmt"
	"math"
	"time"

	"github.com/dalemusser/whopinsights/internal/domain/models"
)

// msPerDay is the length of a day in epoch milliseconds.
const msPerDay = 86_400_000

// Category is the qualitative engagement bucket for a member.
type Category string

const (
	High   Category = "high"
	Medium Category = "medium"
	Low    Category = "low"
)

// MemberEngagement is the categorical view of one member.
type MemberEngagement struct {
	ID            string   `json:"id"`
	Email         string   `json:"email"`
	Name          string   `json:"name"`
	Engagement    Category `json:"engagement"`
	MembershipAge int      `json:"membershipAge"`
	LoginCount    int      `json:"loginCount"`
	LastActive    string   `json:"lastActive"`
}

// CategoryStats tallies members per category.
type CategoryStats struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
	Total  int `json:"total"`
}

// CategoryReport is the payload for the category strategy.
type CategoryReport struct {
	Members []MemberEngagement `json:"members"`
	Stats   CategoryStats      `json:"stats"`
}

// daysSince returns whole days elapsed from ts (epoch ms) to now, floored.
func daysSince(ts int64, now time.Time) int {
	return int(math.Floor(float64(now.UnixMilli()-ts) / msPerDay))
}

// Categorize classifies a member. Rules are checked in order:
//
//	high:   logins > 100, or logins > 50 and active within the last 2 days
//	low:    logins < 10, or inactive for more than 20 days
//	medium: everything else
func Categorize(m models.Member, now time.Time) Category {
	logins := m.Logins()
	idle := daysSince(m.LastActiveAt(), now)

	if logins > 100 || (logins > 50 && idle < 2) {
		return High
	}
	if logins < 10 || idle > 20 {
		return Low
	}
	return Medium
}

// HumanizeLastActive renders an activity timestamp as "Today", "Yesterday"
// or "N days ago".
func HumanizeLastActive(ts int64, now time.Time) string {
	switch d := daysSince(ts, now); d {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", d)
	}
}

// Describe builds the categorical view of a member.
func Describe(m models.Member, now time.Time) MemberEngagement {
	return MemberEngagement{
		ID:            m.ID,
		Email:         m.Email,
		Name:          m.Name,
		Engagement:    Categorize(m, now),
		MembershipAge: daysSince(m.CreatedAt, now),
		LoginCount:    m.Logins(),
		LastActive:    HumanizeLastActive(m.LastActiveAt(), now),
	}
}

// CountCategories tallies the members per category.
func CountCategories(list []MemberEngagement) CategoryStats {
	stats := CategoryStats{Total: len(list)}
	for _, me := range list {
		switch me.Engagement {
		case High:
			stats.High++
		case Medium:
			stats.Medium++
		case Low:
			stats.Low++
		}
	}
	return stats
}
