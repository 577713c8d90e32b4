package permits

import (
	"fmt"
	"strings"
)

// StatusFilter selects which lifecycle slice of the permit population a
// view operates on.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusApproved  StatusFilter = "approved"
	StatusCompleted StatusFilter = "completed"
)

// StatusFilters lists the filters in cycle order for UI toggles.
var StatusFilters = []StatusFilter{StatusAll, StatusApproved, StatusCompleted}

// statusKeywords is the single source of truth for status classification.
// Matching is case-insensitive substring: "Permit Issued - Revision" counts
// as approved. Extend this table rather than adding checks at call sites.
var statusKeywords = map[StatusFilter][]string{
	StatusApproved:  {"issued", "finaled"},
	StatusCompleted: {"finaled"},
}

// Matches reports whether a raw status string belongs to the filter's
// bucket. Unrecognized or empty statuses match only StatusAll.
func (f StatusFilter) Matches(status string) bool {
	if f == StatusAll {
		return true
	}
	lowered := strings.ToLower(status)
	for _, kw := range statusKeywords[f] {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// Filter returns the records matching f. StatusAll returns the input slice
// unchanged.
func (f StatusFilter) Filter(records []Record) []Record {
	if f == StatusAll {
		return records
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Matches(r.Status) {
			out = append(out, r)
		}
	}
	return out
}

// ParseStatusFilter validates a user-supplied filter name.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(strings.ToLower(strings.TrimSpace(s))) {
	case StatusAll:
		return StatusAll, nil
	case StatusApproved:
		return StatusApproved, nil
	case StatusCompleted:
		return StatusCompleted, nil
	}
	return "", fmt.Errorf("unknown status filter %q (want all, approved or completed)", s)
}
