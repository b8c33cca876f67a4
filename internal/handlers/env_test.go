package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fazla-cloud/thunder-agency-platform/internal/constants"
	"github.com/fazla-cloud/thunder-agency-platform/internal/database"
	"github.com/fazla-cloud/thunder-agency-platform/internal/middleware"
	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/fazla-cloud/thunder-agency-platform/internal/repository"
	"github.com/fazla-cloud/thunder-agency-platform/internal/services"
	"github.com/fazla-cloud/thunder-agency-platform/internal/storage"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "supersecret"

type stubDrafter struct{}

func (stubDrafter) DraftBrief(ctx context.Context, req services.BriefRequest) (string, error) {
	return "Brief for " + req.Title, nil
}

type testEnv struct {
	db        *gorm.DB
	router    *gin.Engine
	handlers  Handlers
	auth      *services.AuthService
	profiles  *services.ProfileService
	projects  *services.ProjectService
	tasks     *services.TaskService
	options   *services.OptionService
	avatarDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})
	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	env := &testEnv{db: db, avatarDir: t.TempDir()}
	env.auth = services.NewAuthService(userRepo, profileRepo)
	env.profiles = services.NewProfileService(profileRepo, userRepo, nil)
	env.projects = services.NewProjectService(projectRepo)
	env.tasks = services.NewTaskService(taskRepo, projectRepo, profileRepo, stubDrafter{})
	env.options = services.NewOptionService(repository.NewOptionRepositories(db), nil)
	dashboards := services.NewDashboardService(taskRepo, projectRepo, time.UTC, nil)

	env.handlers = Handlers{
		Auth:      NewAuthHandler(env.auth, env.profiles),
		Dashboard: NewDashboardHandler(dashboards),
		Project:   NewProjectHandler(env.projects, env.tasks, env.profiles, env.options, time.UTC),
		Task:      NewTaskHandler(env.tasks, env.profiles, time.UTC),
		Settings:  NewSettingsHandler(env.options),
		User:      NewUserHandler(env.profiles),
		Profile:   NewProfileHandler(env.profiles, storage.NewLocalAvatarStore(env.avatarDir, "/avatars")),
	}

	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("test-secret"))))
	r.Use(middleware.SessionRefresh())
	Register(r, env.handlers, env.profiles, env.projects, env.tasks)
	env.router = r

	return env
}

// createUser signs up a user and promotes it to role.
func (e *testEnv) createUser(t *testing.T, email string, role models.Role) *models.Profile {
	t.Helper()
	user, err := e.auth.Signup(services.SignupInput{Email: email, Password: testPassword, FullName: "User " + email})
	require.NoError(t, err)
	if role != models.RoleClient {
		_, err = e.profiles.SetRoleByEmail(email, role)
		require.NoError(t, err)
	}
	profile, err := e.profiles.GetProfile(user.ID)
	require.NoError(t, err)
	return profile
}

func (e *testEnv) login(t *testing.T, email string) *http.Cookie {
	t.Helper()
	w := e.do(http.MethodPost, "/api/auth/login", map[string]string{"email": email, "password": testPassword}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	c := sessionCookie(w)
	require.NotNil(t, c)
	return c
}

func (e *testEnv) createProject(t *testing.T, clientID, name string) *models.Project {
	t.Helper()
	project, err := e.projects.CreateProject(services.CreateProjectInput{ClientID: clientID, Name: name})
	require.NoError(t, err)
	return project
}

func (e *testEnv) createTask(t *testing.T, project *models.Project, title, platform string) *models.Task {
	t.Helper()
	task, err := e.tasks.CreateTask(services.CreateTaskInput{
		ClientID:    project.ClientID,
		ProjectID:   project.ID,
		Title:       title,
		ContentType: "video",
		Platform:    platform,
		Brief:       "Brief for " + title,
	})
	require.NoError(t, err)
	return task
}

func (e *testEnv) do(method, path string, body any, c *http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		payload, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if c != nil {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// sessionCookie returns the last session cookie set by a response.
func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	var found *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == constants.SessionCookieName {
			found = c
		}
	}
	return found
}

type pageResponse struct {
	Viewer struct {
		ID   string      `json:"id"`
		Role models.Role `json:"role"`
	} `json:"viewer"`
	Nav  []map[string]string `json:"nav"`
	Data json.RawMessage     `json:"data"`
}

func decodePage(t *testing.T, w *httptest.ResponseRecorder, data any) pageResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var page pageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	if data != nil {
		require.NoError(t, json.Unmarshal(page.Data, data))
	}
	return page
}
