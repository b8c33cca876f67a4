package services

import (
	"log/slog"
	"time"

	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/fazla-cloud/thunder-agency-platform/internal/query"
	"github.com/fazla-cloud/thunder-agency-platform/internal/repository"
	"golang.org/x/sync/errgroup"
)

// AdminDashboard is the admin home view.
type AdminDashboard struct {
	TotalTasks     int               `json:"total_tasks"`
	ActiveProjects int               `json:"active_projects"`
	DraftTasks     int               `json:"draft_tasks"`
	Charts         query.TaskSummary `json:"charts"`
}

// WorkDashboard is the home view of clients and assignees, computed over
// their own tasks.
type WorkDashboard struct {
	TotalTasks int               `json:"total_tasks"`
	InProgress int               `json:"in_progress"`
	Completed  int               `json:"completed"`
	Charts     query.TaskSummary `json:"charts"`
}

// DashboardService computes dashboard figures. Failed reads are logged and
// counted as empty.
type DashboardService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	loc         *time.Location
	now         func() time.Time
	logger      *slog.Logger
}

// NewDashboardService creates a DashboardService bucketing days in loc.
func NewDashboardService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, loc *time.Location, logger *slog.Logger) *DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		loc:         loc,
		now:         time.Now,
		logger:      logger,
	}
}

// Location is the zone calendar days are computed in.
func (s *DashboardService) Location() *time.Location {
	return s.loc
}

// Admin returns totals and charts over every task and project.
func (s *DashboardService) Admin() AdminDashboard {
	var (
		tasks    []models.Task
		projects []models.Project
		g        errgroup.Group
	)
	g.Go(func() error {
		tasks = s.tasks(repository.TaskFilter{})
		return nil
	})
	g.Go(func() error {
		var err error
		projects, err = s.projectRepo.List(repository.ProjectFilter{})
		if err != nil {
			s.logger.Error("failed to load projects", "error", err)
			projects = nil
		}
		return nil
	})
	_ = g.Wait()

	summary := query.SummarizeTasks(tasks, s.now(), s.loc)
	active := query.StatusTabCounts(projects, models.ProjectStatuses(), func(p models.Project) string { return p.Status })

	return AdminDashboard{
		TotalTasks:     summary.Total,
		ActiveProjects: active[models.ProjectStatusActive],
		DraftTasks:     countStatus(summary, models.TaskStatusDrafts),
		Charts:         summary,
	}
}

// Client returns totals and charts over the tasks requested by clientID.
func (s *DashboardService) Client(clientID string) WorkDashboard {
	return s.work(s.tasks(repository.TaskFilter{ClientID: &clientID}))
}

// Assignee returns totals and charts over the tasks assigned to assigneeID.
func (s *DashboardService) Assignee(assigneeID string) WorkDashboard {
	return s.work(s.tasks(repository.TaskFilter{AssignedTo: &assigneeID}))
}

func (s *DashboardService) work(tasks []models.Task) WorkDashboard {
	summary := query.SummarizeTasks(tasks, s.now(), s.loc)
	return WorkDashboard{
		TotalTasks: summary.Total,
		InProgress: countStatus(summary, models.TaskStatusInProgress),
		Completed:  countStatus(summary, models.TaskStatusCompleted),
		Charts:     summary,
	}
}

func (s *DashboardService) tasks(filter repository.TaskFilter) []models.Task {
	tasks, err := s.taskRepo.List(filter)
	if err != nil {
		s.logger.Error("failed to load tasks", "error", err)
		return []models.Task{}
	}
	return tasks
}

func countStatus(summary query.TaskSummary, status models.TaskStatus) int {
	for _, b := range summary.Statuses {
		if b.Status == string(status) {
			return b.Count
		}
	}
	return 0
}
