// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the default number of rows shown in paged lists.
const PageSize = 25

// ParseStart extracts the human-friendly "start" query parameter (1-based index).
// Returns 1 if not present or invalid.
func ParseStart(r *http.Request) int {
	s := query.Get(r, "start")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Result reports whether neighbouring pages exist.
type Result struct {
	HasPrev bool
	HasNext bool
}

// Page returns the window of rows beginning at the 1-based start index.
// A start past the end yields an empty page with HasPrev set.
func Page[T any](rows []T, start, pageSize int) ([]T, Result) {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	if start < 1 {
		start = 1
	}
	from := start - 1
	if from >= len(rows) {
		return nil, Result{HasPrev: from > 0}
	}
	to := from + pageSize
	if to > len(rows) {
		to = len(rows)
	}
	return rows[from:to], Result{HasPrev: from > 0, HasNext: to < len(rows)}
}

// Range holds computed display range values for a paginated list.
type Range struct {
	Start     int // 1-based start index (0 if no results)
	End       int // 1-based end index (0 if no results)
	PrevStart int // start value for previous page link
	NextStart int // start value for next page link
}

// ComputeRange calculates display range values given the current start index
// and number of items shown.
func ComputeRange(start, shown, pageSize int) Range {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	if shown == 0 {
		return Range{Start: 0, End: 0, PrevStart: 1, NextStart: 1}
	}

	prevStart := start - pageSize
	if prevStart < 1 {
		prevStart = 1
	}

	return Range{
		Start:     start,
		End:       start + shown - 1,
		PrevStart: prevStart,
		NextStart: start + shown,
	}
}
