package query

import (
	"time"

	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
)

// Record describes how filters read a row type.
type Record[T any] struct {
	Status       func(T) string
	CreatedAt    func(T) time.Time
	SearchFields func(T) []string
}

// TaskRecord searches title, brief, content type and platform.
var TaskRecord = Record[models.Task]{
	Status:    TaskStatus,
	CreatedAt: func(t models.Task) time.Time { return t.CreatedAt },
	SearchFields: func(t models.Task) []string {
		return []string{t.Title, t.Brief, t.ContentType, t.Platform}
	},
}

// ProjectRecord searches name, description and the owning client's name as
// returned by clientName.
func ProjectRecord(clientName func(clientID string) string) Record[models.Project] {
	return Record[models.Project]{
		Status:    func(p models.Project) string { return p.Status },
		CreatedAt: func(p models.Project) time.Time { return p.CreatedAt },
		SearchFields: func(p models.Project) []string {
			fields := []string{p.Name}
			if p.Description != nil {
				fields = append(fields, *p.Description)
			}
			if clientName != nil {
				fields = append(fields, clientName(p.ClientID))
			}
			return fields
		},
	}
}

func TaskStatus(t models.Task) string      { return string(t.Status) }
func TaskPlatform(t models.Task) string    { return t.Platform }
func TaskContentType(t models.Task) string { return t.ContentType }

// TaskStatusKeys returns the task lifecycle as bucket keys.
func TaskStatusKeys() []string {
	statuses := models.AllTaskStatuses()
	keys := make([]string, len(statuses))
	for i, s := range statuses {
		keys[i] = string(s)
	}
	return keys
}
