package database

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

type compositeIndex struct {
	table   string
	name    string
	columns string
}

// Indexes serving the dashboard list queries. Single-column indexes are
// declared on the models.
var compositeIndexes = []compositeIndex{
	{"tasks", "idx_tasks_client_created", "client_id, created_at"},
	{"tasks", "idx_tasks_assignee_status", "assigned_to, status"},
	{"tasks", "idx_tasks_project_created", "project_id, created_at"},
	{"projects", "idx_projects_client_created", "client_id, created_at"},
}

// AddIndexes creates the composite indexes that do not exist yet.
func AddIndexes(db *gorm.DB) error {
	migrator := db.Migrator()

	for _, idx := range compositeIndexes {
		if migrator.HasIndex(idx.table, idx.name) {
			slog.Debug("index already exists, skipping", "index", idx.name)
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		slog.Info("created index", "index", idx.name, "table", idx.table, "columns", idx.columns)
	}

	return nil
}
