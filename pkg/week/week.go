// Package week builds the canonical 7-day reporting window and date-indexed
// lookups over raw records.
package week

import "time"

// Days is the length of the reporting window.
const Days = 7

// DateLayout is the ISO calendar-date layout used for record dates. Dates in
// this layout compare lexically in chronological order.
const DateLayout = "2006-01-02"

// Dates returns the window's calendar dates oldest to newest, ending with
// today. The caller reads the clock once at the boundary and passes it down,
// keeping everything below deterministic.
func Dates(today time.Time) []string {
	dates := make([]string, Days)
	for i := 0; i < Days; i++ {
		dates[i] = today.AddDate(0, 0, i-(Days-1)).Format(DateLayout)
	}
	return dates
}

// Index folds a flat record list into a date-keyed map. When several records
// share a date the last one wins; callers that need per-date sums (workouts)
// must aggregate themselves instead of using Index.
func Index[T any](records []T, date func(T) string, value func(T) float64) map[string]float64 {
	indexed := make(map[string]float64, len(records))
	for _, rec := range records {
		indexed[date(rec)] = value(rec)
	}
	return indexed
}
