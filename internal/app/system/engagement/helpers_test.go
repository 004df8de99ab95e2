package engagement_test

import (
	"time"

	"github.com/dalemusser/whopinsights/internal/domain/models"
)

const day = 24 * time.Hour

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// member builds a record created ageDays ago and last active idleDays ago.
// A negative idleDays leaves last_active unset.
func member(id string, logins int, ageDays, idleDays float64) models.Member {
	m := models.Member{
		ID:        id,
		Email:     "user" + id + "@example.com",
		Name:      "User " + id,
		CreatedAt: testNow.Add(-time.Duration(ageDays * float64(day))).UnixMilli(),
	}
	m.Metadata.LoginCount = &logins
	if idleDays >= 0 {
		last := testNow.Add(-time.Duration(idleDays * float64(day))).UnixMilli()
		m.Metadata.LastActive = &last
	}
	return m
}
