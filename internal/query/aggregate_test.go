package query

import (
	"testing"
	"time"

	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusBuckets_CompleteAndOrdered(t *testing.T) {
	got := StatusBuckets(sampleTasks(), TaskStatusKeys(), TaskStatus)

	assert.Equal(t, []StatusCount{
		{Status: "drafts", Count: 1},
		{Status: "in_progress", Count: 1},
		{Status: "completed", Count: 1},
		{Status: "archived", Count: 1},
	}, got)
}

func TestStatusBuckets_EmptyInput(t *testing.T) {
	got := StatusBuckets([]models.Task{}, TaskStatusKeys(), TaskStatus)

	require.Len(t, got, 4)
	for _, b := range got {
		assert.Zero(t, b.Count)
	}
}

func TestStatusTabCounts(t *testing.T) {
	tasks := append(sampleTasks(), models.Task{ID: "5", Status: models.TaskStatusDrafts})
	counts := StatusTabCounts(tasks, TaskStatusKeys(), TaskStatus)

	assert.Equal(t, 5, counts[StatusAll])
	assert.Equal(t, 2, counts["drafts"])
	assert.Equal(t, 0, StatusTabCounts([]models.Task{}, TaskStatusKeys(), TaskStatus)["completed"])
}

func TestDailyBuckets_SevenDaysEndingToday(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	tasks := []models.Task{{ID: "t", CreatedAt: now.Add(-time.Hour)}}

	got := DailyBuckets(tasks, now, 7, time.UTC, TaskRecord.CreatedAt)

	require.Len(t, got, 7)
	assert.Equal(t, DayCount{Date: "2024-03-04", Label: "Mar 4", Count: 0}, got[0])
	assert.Equal(t, DayCount{Date: "2024-03-10", Label: "Mar 10", Count: 1}, got[6])
	total := 0
	for _, d := range got {
		total += d.Count
	}
	assert.Equal(t, 1, total)
}

func TestDailyBuckets_IgnoresOlderRecords(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 30, 0, 0, time.UTC)
	tasks := []models.Task{
		{CreatedAt: time.Date(2024, 3, 3, 23, 59, 0, 0, time.UTC)},
		{CreatedAt: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
	}

	got := DailyBuckets(tasks, now, 7, time.UTC, TaskRecord.CreatedAt)

	assert.Equal(t, 1, got[0].Count)
}

func TestDailyBuckets_CrossesMonthBoundary(t *testing.T) {
	now := time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)
	got := DailyBuckets(nil, now, 7, time.UTC, TaskRecord.CreatedAt)

	assert.Equal(t, "2024-02-25", got[0].Date)
	assert.Equal(t, "2024-02-29", got[4].Date)
	assert.Equal(t, "2024-03-02", got[6].Date)
}

func TestTopN(t *testing.T) {
	tasks := []models.Task{{Platform: "A"}, {Platform: "B"}, {Platform: "A"}}

	assert.Equal(t, []CategoryCount{{Value: "A", Count: 2}, {Value: "B", Count: 1}}, TopN(tasks, 10, TaskPlatform))
	assert.Equal(t, []CategoryCount{{Value: "A", Count: 2}}, TopN(tasks, 1, TaskPlatform))
}

func TestTopN_TiesKeepFirstSeenOrder(t *testing.T) {
	tasks := []models.Task{{Platform: "C"}, {Platform: "B"}, {Platform: "A"}, {Platform: "B"}, {Platform: "C"}}

	got := TopN(tasks, 0, TaskPlatform)

	assert.Equal(t, []CategoryCount{{Value: "C", Count: 2}, {Value: "B", Count: 2}, {Value: "A", Count: 1}}, got)
}

func TestTopN_Empty(t *testing.T) {
	got := TopN([]models.Task{}, 10, TaskContentType)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSummarizeTasks(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	summary := SummarizeTasks(sampleTasks(), now, time.UTC)

	assert.Equal(t, 4, summary.Total)
	assert.Len(t, summary.Statuses, 4)
	assert.Len(t, summary.Daily, 7)
	assert.Equal(t, 1, summary.Daily[6].Count)
	assert.Len(t, summary.Platforms, 4)
	assert.Len(t, summary.ContentTypes, 4)
}
