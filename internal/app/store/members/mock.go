// internal/app/store/members/mock.go
package members

import (
	"context"
	"strconv"
	"time"

	"github.com/dalemusser/whopinsights/internal/app/system/clock"
	"github.com/dalemusser/whopinsights/internal/domain/models"
)

// MockSize is the number of synthetic members served by Mock.
const MockSize = 20

type mockRecord struct {
	name     string
	ageDays  float64
	logins   int
	idleDays float64
}

// Offsets are relative to the moment of the fetch, so the categories of the
// synthetic members stay stable over time.
var mockRecords = [MockSize]mockRecord{
	{"Alice Johnson", 90, 45, 1},
	{"Bob Smith", 120, 120, 0.5},
	{"Charlie Brown", 30, 5, 25},
	{"Diana Prince", 60, 89, 2},
	{"Ethan Hunt", 180, 200, 0.2},
	{"Fiona Apple", 45, 12, 30},
	{"George Washington", 150, 155, 1},
	{"Hannah Montana", 20, 3, 15},
	{"Ian Malcolm", 75, 67, 3},
	{"Julia Roberts", 95, 102, 1.5},
	{"Kevin Hart", 200, 230, 0.3},
	{"Laura Croft", 35, 8, 28},
	{"Michael Scott", 110, 145, 0.8},
	{"Nancy Drew", 55, 45, 5},
	{"Oscar Wilde", 15, 2, 12},
	{"Pam Beesly", 130, 167, 1.2},
	{"Quincy Jones", 80, 78, 2.5},
	{"Rachel Green", 50, 18, 20},
	{"Steve Jobs", 170, 195, 0.5},
	{"Tina Fey", 25, 6, 22},
}

// Mock serves a fixed synthetic member list.
type Mock struct {
	clock clock.Clock
}

// NewMock returns a mock source. A nil clock uses the system clock.
func NewMock(c clock.Clock) *Mock {
	if c == nil {
		c = clock.System{}
	}
	return &Mock{clock: c}
}

// FetchAll never fails.
func (s *Mock) FetchAll(ctx context.Context) ([]models.Member, error) {
	_, span := tracer.Start(ctx, "members.Mock.FetchAll")
	defer span.End()

	return MockMembers(s.clock.Now()), nil
}

// MockMembers builds the synthetic list with timestamps relative to now.
func MockMembers(now time.Time) []models.Member {
	ago := func(days float64) int64 {
		return now.Add(-time.Duration(days * float64(24*time.Hour))).UnixMilli()
	}

	out := make([]models.Member, 0, MockSize)
	for i, r := range mockRecords {
		id := strconv.Itoa(i + 1)
		logins := r.logins
		last := ago(r.idleDays)
		out = append(out, models.Member{
			ID:        id,
			Email:     "user" + id + "@example.com",
			Name:      r.name,
			CreatedAt: ago(r.ageDays),
			Metadata: models.MemberMetadata{
				LoginCount: &logins,
				LastActive: &last,
			},
		})
	}
	return out
}
