package services

import (
	"context"
	"testing"
	"time"

	"github.com/fazla-cloud/thunder-agency-platform/internal/database"
	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/fazla-cloud/thunder-agency-platform/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeDrafter struct {
	got BriefRequest
}

func (f *fakeDrafter) DraftBrief(ctx context.Context, req BriefRequest) (string, error) {
	f.got = req
	return "Drafted: " + req.Title, nil
}

type ServicesTestSuite struct {
	suite.Suite
	db         *gorm.DB
	auth       *AuthService
	profiles   *ProfileService
	projects   *ProjectService
	tasks      *TaskService
	options    *OptionService
	dashboards *DashboardService
	drafter    *fakeDrafter
}

func (s *ServicesTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.Require().NoError(database.Migrate(db))
	s.db = db

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	s.drafter = &fakeDrafter{}
	s.auth = NewAuthService(userRepo, profileRepo)
	s.profiles = NewProfileService(profileRepo, userRepo, nil)
	s.projects = NewProjectService(projectRepo)
	s.tasks = NewTaskService(taskRepo, projectRepo, profileRepo, s.drafter)
	s.options = NewOptionService(repository.NewOptionRepositories(db), nil)
	s.dashboards = NewDashboardService(taskRepo, projectRepo, time.UTC, nil)
}

func (s *ServicesTestSuite) TearDownTest() {
	sqlDB, _ := s.db.DB()
	sqlDB.Close()
}

func (s *ServicesTestSuite) signup(email string, role models.Role) *models.Profile {
	user, err := s.auth.Signup(SignupInput{Email: email, Password: "password123", FullName: "Test " + string(role)})
	s.Require().NoError(err)
	if role != models.RoleClient {
		_, err = s.profiles.SetRoleByEmail(email, role)
		s.Require().NoError(err)
	}
	profile, ok := s.profiles.Resolve(user.ID)
	s.Require().True(ok)
	return profile
}

func (s *ServicesTestSuite) newProject(client *models.Profile) *models.Project {
	project, err := s.projects.CreateProject(CreateProjectInput{ClientID: client.ID, Name: "Spring launch"})
	s.Require().NoError(err)
	return project
}

func (s *ServicesTestSuite) newTask(client *models.Profile, project *models.Project, title string) *models.Task {
	task, err := s.tasks.CreateTask(CreateTaskInput{
		ClientID:    client.ID,
		ProjectID:   project.ID,
		Title:       title,
		ContentType: "Reel",
		Platform:    "Instagram",
		Brief:       "Make it pop",
	})
	s.Require().NoError(err)
	return task
}

func (s *ServicesTestSuite) TestSignup_CreatesClientProfile() {
	user, err := s.auth.Signup(SignupInput{Email: "  New@Example.com ", Password: "secret1", FullName: "New Client"})
	s.Require().NoError(err)
	s.Equal("new@example.com", user.Email)

	profile, ok := s.profiles.Resolve(user.ID)
	s.Require().True(ok)
	s.Equal(models.RoleClient, profile.Role)
	s.Equal("New Client", profile.DisplayName(""))
	s.True(profile.IsActive)
}

func (s *ServicesTestSuite) TestSignup_Validation() {
	_, err := s.auth.Signup(SignupInput{Email: "not-an-email", Password: "secret1", FullName: "Name"})
	s.ErrorIs(err, ErrInvalidEmail)

	_, err = s.auth.Signup(SignupInput{Email: "a@example.com", Password: "12345", FullName: "Name"})
	s.ErrorIs(err, ErrPasswordTooShort)

	_, err = s.auth.Signup(SignupInput{Email: "a@example.com", Password: "123456", FullName: " A "})
	s.ErrorIs(err, ErrFullNameTooShort)

	s.signup("taken@example.com", models.RoleClient)
	_, err = s.auth.Signup(SignupInput{Email: "TAKEN@example.com", Password: "123456", FullName: "Name"})
	s.ErrorIs(err, ErrEmailTaken)
}

func (s *ServicesTestSuite) TestLogin() {
	s.signup("client@example.com", models.RoleClient)

	user, err := s.auth.Login(LoginInput{Email: "Client@Example.com", Password: "password123"})
	s.Require().NoError(err)
	s.Equal("client@example.com", user.Email)

	_, err = s.auth.Login(LoginInput{Email: "client@example.com", Password: "wrong-password"})
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.auth.Login(LoginInput{Email: "nobody@example.com", Password: "password123"})
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServicesTestSuite) TestLogin_DisabledAccount() {
	admin := s.signup("admin@example.com", models.RoleAdmin)
	client := s.signup("client@example.com", models.RoleClient)

	inactive := false
	_, err := s.profiles.AdminUpdate(admin.ID, client.ID, AdminUpdateInput{IsActive: &inactive})
	s.Require().NoError(err)

	_, err = s.auth.Login(LoginInput{Email: "client@example.com", Password: "password123"})
	s.ErrorIs(err, ErrAccountDisabled)
}

func (s *ServicesTestSuite) TestResolve_MissingProfile() {
	profile, ok := s.profiles.Resolve("does-not-exist")
	s.False(ok)
	s.Nil(profile)

	profile, ok = s.profiles.Resolve("")
	s.False(ok)
	s.Nil(profile)
}

func (s *ServicesTestSuite) TestAdminUpdate() {
	admin := s.signup("admin@example.com", models.RoleAdmin)
	client := s.signup("client@example.com", models.RoleClient)

	designer := models.RoleDesigner
	updated, err := s.profiles.AdminUpdate(admin.ID, client.ID, AdminUpdateInput{Role: &designer})
	s.Require().NoError(err)
	s.Equal(models.RoleDesigner, updated.Role)

	bogus := models.Role("owner")
	_, err = s.profiles.AdminUpdate(admin.ID, client.ID, AdminUpdateInput{Role: &bogus})
	s.ErrorIs(err, ErrInvalidRole)

	_, err = s.profiles.AdminUpdate(admin.ID, admin.ID, AdminUpdateInput{Role: &designer})
	s.ErrorIs(err, ErrCannotModifySelf)

	_, err = s.profiles.AdminUpdate(admin.ID, "missing", AdminUpdateInput{Role: &designer})
	s.ErrorIs(err, ErrProfileNotFound)
}

func (s *ServicesTestSuite) TestUpdateProfile() {
	client := s.signup("client@example.com", models.RoleClient)

	title := "  Head of Marketing "
	name := "Jane Client"
	updated, err := s.profiles.UpdateProfile(client.ID, UpdateProfileInput{FullName: &name, Title: &title})
	s.Require().NoError(err)
	s.Equal("Jane Client", *updated.FullName)
	s.Equal("Head of Marketing", *updated.Title)

	blank := ""
	updated, err = s.profiles.UpdateProfile(client.ID, UpdateProfileInput{Title: &blank})
	s.Require().NoError(err)
	s.Nil(updated.Title)

	short := "J"
	_, err = s.profiles.UpdateProfile(client.ID, UpdateProfileInput{FullName: &short})
	s.ErrorIs(err, ErrFullNameTooShort)
}

func (s *ServicesTestSuite) TestProjects_Ownership() {
	owner := s.signup("owner@example.com", models.RoleClient)
	other := s.signup("other@example.com", models.RoleClient)
	admin := s.signup("admin@example.com", models.RoleAdmin)
	project := s.newProject(owner)
	s.Equal(models.ProjectStatusActive, project.Status)

	_, err := s.projects.GetProjectForViewer(project.ID, other)
	s.ErrorIs(err, ErrProjectPermissionDenied)

	archived := models.ProjectStatusArchived
	updated, err := s.projects.UpdateProject(project.ID, admin, UpdateProjectInput{Status: &archived})
	s.Require().NoError(err)
	s.Equal(models.ProjectStatusArchived, updated.Status)

	bad := "paused"
	_, err = s.projects.UpdateProject(project.ID, owner, UpdateProjectInput{Status: &bad})
	s.ErrorIs(err, ErrInvalidProjectStatus)

	_, err = s.projects.CreateProject(CreateProjectInput{ClientID: owner.ID, Name: "   "})
	s.ErrorIs(err, ErrProjectNameRequired)

	mine, err := s.projects.ListProjects(&owner.ID)
	s.Require().NoError(err)
	s.Len(mine, 1)
}

func (s *ServicesTestSuite) TestCreateTask_Validation() {
	client := s.signup("client@example.com", models.RoleClient)
	other := s.signup("other@example.com", models.RoleClient)
	project := s.newProject(client)

	base := CreateTaskInput{ClientID: client.ID, ProjectID: project.ID, Title: "T", ContentType: "Reel", Platform: "Instagram", Brief: "B"}

	in := base
	in.Title = " "
	_, err := s.tasks.CreateTask(in)
	s.ErrorIs(err, ErrTitleRequired)

	in = base
	in.Brief = ""
	_, err = s.tasks.CreateTask(in)
	s.ErrorIs(err, ErrBriefRequired)

	zero := 0
	in = base
	in.DurationSeconds = &zero
	_, err = s.tasks.CreateTask(in)
	s.ErrorIs(err, ErrInvalidDuration)

	in = base
	in.Status = "accepted"
	_, err = s.tasks.CreateTask(in)
	s.ErrorIs(err, ErrInvalidTaskStatus)

	in = base
	in.ClientID = other.ID
	_, err = s.tasks.CreateTask(in)
	s.ErrorIs(err, ErrProjectPermissionDenied)

	in = base
	in.ProjectID = "missing"
	_, err = s.tasks.CreateTask(in)
	s.ErrorIs(err, ErrProjectNotFound)

	task, err := s.tasks.CreateTask(base)
	s.Require().NoError(err)
	s.Equal(models.TaskStatusDrafts, task.Status)
	s.Require().NotNil(task.Project)
	s.Equal("Spring launch", task.Project.Name)
}

func (s *ServicesTestSuite) TestAssignTask() {
	client := s.signup("client@example.com", models.RoleClient)
	designer := s.signup("designer@example.com", models.RoleDesigner)
	project := s.newProject(client)
	task := s.newTask(client, project, "Reel")

	_, err := s.tasks.AssignTask(task.ID, client.ID)
	s.ErrorIs(err, ErrInvalidTaskAssignee)

	_, err = s.tasks.AssignTask(task.ID, "")
	s.ErrorIs(err, ErrAssigneeRequired)

	_, err = s.tasks.AssignTask("missing", designer.ID)
	s.ErrorIs(err, ErrTaskNotFound)

	assigned, err := s.tasks.AssignTask(task.ID, designer.ID)
	s.Require().NoError(err)
	s.Require().NotNil(assigned.AssignedTo)
	s.Equal(designer.ID, *assigned.AssignedTo)
	s.Equal(models.TaskStatusInProgress, assigned.Status)

	completed := models.TaskStatusCompleted
	_, err = s.tasks.UpdateTask(task.ID, designer, UpdateTaskInput{Status: &completed})
	s.Require().NoError(err)

	reassigned, err := s.tasks.AssignTask(task.ID, designer.ID)
	s.Require().NoError(err)
	s.Equal(models.TaskStatusCompleted, reassigned.Status)
}

func (s *ServicesTestSuite) TestUpdateTask_Permissions() {
	client := s.signup("client@example.com", models.RoleClient)
	other := s.signup("other@example.com", models.RoleClient)
	designer := s.signup("designer@example.com", models.RoleDesigner)
	marketer := s.signup("marketer@example.com", models.RoleMarketer)
	project := s.newProject(client)
	task := s.newTask(client, project, "Reel")
	_, err := s.tasks.AssignTask(task.ID, designer.ID)
	s.Require().NoError(err)

	title := "New title"
	updated, err := s.tasks.UpdateTask(task.ID, client, UpdateTaskInput{Title: &title})
	s.Require().NoError(err)
	s.Equal("New title", updated.Title)

	_, err = s.tasks.UpdateTask(task.ID, other, UpdateTaskInput{Title: &title})
	s.ErrorIs(err, ErrTaskPermissionDenied)

	_, err = s.tasks.UpdateTask(task.ID, designer, UpdateTaskInput{Title: &title})
	s.ErrorIs(err, ErrTaskPermissionDenied)

	done := models.TaskStatusCompleted
	_, err = s.tasks.UpdateTask(task.ID, marketer, UpdateTaskInput{Status: &done})
	s.ErrorIs(err, ErrTaskPermissionDenied)

	bad := models.TaskStatus("accepted")
	_, err = s.tasks.UpdateTask(task.ID, client, UpdateTaskInput{Status: &bad})
	s.ErrorIs(err, ErrInvalidTaskStatus)

	_, err = s.tasks.GetTaskForViewer(task.ID, marketer)
	s.ErrorIs(err, ErrTaskPermissionDenied)
	_, err = s.tasks.GetTaskForViewer(task.ID, designer)
	s.NoError(err)
}

func (s *ServicesTestSuite) TestDraftBrief() {
	brief, err := s.tasks.DraftBrief(context.Background(), BriefRequest{Title: "Teaser", Platform: "TikTok"})
	s.Require().NoError(err)
	s.Equal("Drafted: Teaser", brief)
	s.Equal("TikTok", s.drafter.got.Platform)

	_, err = s.tasks.DraftBrief(context.Background(), BriefRequest{})
	s.ErrorIs(err, ErrTitleRequired)

	noAI := NewTaskService(nil, nil, nil, nil)
	_, err = noAI.DraftBrief(context.Background(), BriefRequest{Title: "x"})
	s.ErrorIs(err, ErrAIServiceNotConfigured)
}

func (s *ServicesTestSuite) TestOptions() {
	_, err := s.options.CreateContentType("Reel")
	s.Require().NoError(err)
	_, err = s.options.CreateContentType("reel")
	s.ErrorIs(err, ErrOptionExists)
	_, err = s.options.CreatePlatform(" ")
	s.ErrorIs(err, ErrOptionNameRequired)
	_, err = s.options.CreateDuration("Zero", 0)
	s.ErrorIs(err, ErrInvalidDuration)

	seed := OptionSeed{
		Platforms:    []string{"TikTok", "Instagram"},
		ContentTypes: []string{"Reel", "Story"},
		Durations:    []DurationSeed{{Label: "1 min", Seconds: 60}, {Label: "15 sec", Seconds: 15}},
	}
	n, err := s.options.Seed(seed)
	s.Require().NoError(err)
	s.Equal(6, n)

	// Seeding twice does not duplicate rows.
	_, err = s.options.Seed(seed)
	s.Require().NoError(err)

	opts := s.options.LoadAll()
	s.Len(opts.ContentTypes, 2)
	s.Equal([]string{"Instagram", "TikTok"}, []string{opts.Platforms[0].Name, opts.Platforms[1].Name})
	s.Equal(15, opts.Durations[0].Seconds)
	s.NotNil(opts.Dimensions)
	s.Empty(opts.Dimensions)

	s.Require().NoError(s.options.DeletePlatform(opts.Platforms[0].ID))
	s.ErrorIs(s.options.DeletePlatform(opts.Platforms[0].ID), ErrOptionNotFound)

	_, err = s.options.UpdateDuration(opts.Durations[0].ID, "Quarter minute", 15)
	s.NoError(err)
	_, err = s.options.UpdateDimension("missing", "Square", "1:1")
	s.ErrorIs(err, ErrOptionNotFound)
}

func (s *ServicesTestSuite) TestDashboards() {
	client := s.signup("client@example.com", models.RoleClient)
	designer := s.signup("designer@example.com", models.RoleDesigner)
	project := s.newProject(client)
	first := s.newTask(client, project, "One")
	s.newTask(client, project, "Two")
	_, err := s.tasks.AssignTask(first.ID, designer.ID)
	s.Require().NoError(err)

	admin := s.dashboards.Admin()
	s.Equal(2, admin.TotalTasks)
	s.Equal(1, admin.ActiveProjects)
	s.Equal(1, admin.DraftTasks)
	s.Len(admin.Charts.Daily, 7)
	s.Equal(2, admin.Charts.Daily[6].Count)
	s.Equal([]string{"Instagram"}, []string{admin.Charts.Platforms[0].Value})

	clientView := s.dashboards.Client(client.ID)
	s.Equal(2, clientView.TotalTasks)
	s.Equal(1, clientView.InProgress)
	s.Equal(0, clientView.Completed)

	designerView := s.dashboards.Assignee(designer.ID)
	s.Equal(1, designerView.TotalTasks)

	empty := s.dashboards.Assignee("nobody")
	s.Equal(0, empty.TotalTasks)
	s.Len(empty.Charts.Statuses, 4)
}

func TestServicesTestSuite(t *testing.T) {
	suite.Run(t, new(ServicesTestSuite))
}

func TestNameOf(t *testing.T) {
	name := "Acme"
	lookup := NameOf(map[string]models.Profile{"a": {ID: "a", FullName: &name}, "b": {ID: "b"}})

	assert.Equal(t, "Acme", lookup("a"))
	assert.Equal(t, UnknownName, lookup("b"))
	assert.Equal(t, UnknownName, lookup("zzz"))
}

func TestBriefPrompt(t *testing.T) {
	seconds := 30
	prompt := briefPrompt(BriefRequest{Title: "Teaser", Platform: "TikTok", DurationSeconds: &seconds, Notes: " launch next week "})

	require.Contains(t, prompt, "Title: Teaser")
	assert.Contains(t, prompt, "Duration: 30 seconds")
	assert.Contains(t, prompt, "Client notes:\nlaunch next week")
	assert.NotContains(t, prompt, "Content type")
}
