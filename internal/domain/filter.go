package domain

import "strings"

// Query holds the user-adjustable filter state: a free-text location term
// and a minimum-magnitude threshold.
type Query struct {
	Search       string
	MinMagnitude float64
}

// Filter returns the events matching q, preserving input order (stable
// filter, no re-sort). It is pure and total: an empty search term matches
// everything, an event with no place never matches a non-empty term, and
// an absent magnitude compares as 0.
func Filter(events []Event, q Query) []Event {
	term := strings.ToLower(q.Search)

	out := make([]Event, 0, len(events))
	for _, e := range events {
		if !matchesSearch(e, term) {
			continue
		}
		if e.MagnitudeValue() < q.MinMagnitude {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesSearch(e Event, lowerTerm string) bool {
	if lowerTerm == "" {
		return true
	}
	if !e.HasPlace() {
		return false
	}
	return strings.Contains(strings.ToLower(e.Place), lowerTerm)
}
