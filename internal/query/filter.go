package query

import (
	"strings"
	"time"
)

// ByStatus keeps items whose status equals status. An empty status or
// StatusAll returns items unchanged.
func ByStatus[T any](items []T, status string, statusOf func(T) string) []T {
	if status == "" || status == StatusAll {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if statusOf(item) == status {
			out = append(out, item)
		}
	}
	return out
}

// BySearch keeps items where any field contains q, ignoring case. A blank q
// returns items unchanged.
func BySearch[T any](items []T, q string, fields func(T) []string) []T {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// ByDateRange keeps items created on a calendar day inside r, as seen in loc.
// A zero range returns items unchanged.
func ByDateRange[T any](items []T, r DateRange, loc *time.Location, createdAt func(T) time.Time) []T {
	if r.IsZero() {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if r.Contains(DayKey(createdAt(item), loc)) {
			out = append(out, item)
		}
	}
	return out
}

// Apply runs the status, search and date filters of p over items in that
// order.
func Apply[T any](items []T, p ListParams, loc *time.Location, r Record[T]) []T {
	items = ByStatus(items, p.Status, r.Status)
	items = BySearch(items, p.Search, r.SearchFields)
	return ByDateRange(items, p.Dates, loc, r.CreatedAt)
}
