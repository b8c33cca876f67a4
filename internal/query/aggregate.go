package query

import (
	"sort"
	"time"

	"github.com/fazla-cloud/thunder-agency-platform/internal/constants"
	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
)

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type DayCount struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// StatusBuckets counts items per status in the given order. Every status
// appears, including those with zero items; statuses outside the list are not
// counted.
func StatusBuckets[T any](items []T, statuses []string, statusOf func(T) string) []StatusCount {
	index := make(map[string]int, len(statuses))
	out := make([]StatusCount, len(statuses))
	for i, s := range statuses {
		index[s] = i
		out[i] = StatusCount{Status: s}
	}
	for _, item := range items {
		if i, ok := index[statusOf(item)]; ok {
			out[i].Count++
		}
	}
	return out
}

// StatusTabCounts returns per-status counts plus the StatusAll total, as shown
// on list tabs.
func StatusTabCounts[T any](items []T, statuses []string, statusOf func(T) string) map[string]int {
	counts := map[string]int{StatusAll: len(items)}
	for _, b := range StatusBuckets(items, statuses, statusOf) {
		counts[b.Status] = b.Count
	}
	return counts
}

// DailyBuckets counts items created on each of the last days calendar days in
// loc, oldest first and ending with the day of now.
func DailyBuckets[T any](items []T, now time.Time, days int, loc *time.Location, createdAt func(T) time.Time) []DayCount {
	if days <= 0 {
		return []DayCount{}
	}
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	out := make([]DayCount, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, i-days+1)
		key := day.Format(DateLayout)
		out[i] = DayCount{Date: key, Label: day.Format("Jan 2")}
		index[key] = i
	}
	for _, item := range items {
		if i, ok := index[DayKey(createdAt(item), loc)]; ok {
			out[i].Count++
		}
	}
	return out
}

// TopN groups items by key and returns the n most frequent values, most
// frequent first. Ties keep first-seen order. n <= 0 returns every group.
func TopN[T any](items []T, n int, keyOf func(T) string) []CategoryCount {
	counts := map[string]int{}
	var order []string
	for _, item := range items {
		k := keyOf(item)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	out := make([]CategoryCount, 0, len(order))
	for _, k := range order {
		out = append(out, CategoryCount{Value: k, Count: counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TaskSummary is the chart data shown on the admin dashboard and in reports.
type TaskSummary struct {
	Total        int             `json:"total"`
	Statuses     []StatusCount   `json:"statuses"`
	Daily        []DayCount      `json:"daily"`
	Platforms    []CategoryCount `json:"platforms"`
	ContentTypes []CategoryCount `json:"content_types"`
}

// SummarizeTasks builds every task chart for the day of now in loc.
func SummarizeTasks(tasks []models.Task, now time.Time, loc *time.Location) TaskSummary {
	return TaskSummary{
		Total:        len(tasks),
		Statuses:     StatusBuckets(tasks, TaskStatusKeys(), TaskStatus),
		Daily:        DailyBuckets(tasks, now, constants.TrailingDays, loc, TaskRecord.CreatedAt),
		Platforms:    TopN(tasks, constants.TopCategoryLimit, TaskPlatform),
		ContentTypes: TopN(tasks, constants.TopCategoryLimit, TaskContentType),
	}
}
