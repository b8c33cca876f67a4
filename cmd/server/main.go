package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fazla-cloud/thunder-agency-platform/internal/config"
	"github.com/fazla-cloud/thunder-agency-platform/internal/constants"
	"github.com/fazla-cloud/thunder-agency-platform/internal/database"
	"github.com/fazla-cloud/thunder-agency-platform/internal/handlers"
	"github.com/fazla-cloud/thunder-agency-platform/internal/logging"
	"github.com/fazla-cloud/thunder-agency-platform/internal/middleware"
	"github.com/fazla-cloud/thunder-agency-platform/internal/repository"
	"github.com/fazla-cloud/thunder-agency-platform/internal/services"
	"github.com/fazla-cloud/thunder-agency-platform/internal/storage"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
)

const avatarURLPrefix = "/avatars"

func main() {
	// Load configuration
	cfg := config.Load()

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.IsProduction())
	slog.SetDefault(logger)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	store, err := newSessionStore(cfg)
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.Use(middleware.SessionRefresh())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	optionRepos := repository.NewOptionRepositories(db)

	// AI drafting is optional
	var drafter services.BriefDrafter
	if cfg.OpenAIAPIKey != "" {
		drafter = services.NewAIService(cfg.OpenAIAPIKey)
	} else {
		logger.Info("OPENAI_API_KEY not set, brief drafting disabled")
	}

	// Services
	authService := services.NewAuthService(userRepo, profileRepo)
	profileService := services.NewProfileService(profileRepo, userRepo, logger)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, profileRepo, drafter)
	optionService := services.NewOptionService(optionRepos, logger)
	dashboardService := services.NewDashboardService(taskRepo, projectRepo, loc, logger)

	avatars := storage.NewLocalAvatarStore(cfg.AvatarDir, avatarURLPrefix)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Thunder agency platform is running",
		})
	})
	r.Static(avatarURLPrefix, avatars.Dir())

	handlers.Register(r, handlers.Handlers{
		Auth:      handlers.NewAuthHandler(authService, profileService),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
		Project:   handlers.NewProjectHandler(projectService, taskService, profileService, optionService, loc),
		Task:      handlers.NewTaskHandler(taskService, profileService, loc),
		Settings:  handlers.NewSettingsHandler(optionService),
		User:      handlers.NewUserHandler(profileService),
		Profile:   handlers.NewProfileHandler(profileService, avatars),
	}, profileService, projectService, taskService)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
	}()

	// Start server
	logger.Info("server starting", "addr", cfg.HTTPAddr, "db_driver", cfg.DBDriver, "session_store", cfg.SessionStore)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newSessionStore builds the session backend named by SESSION_STORE.
func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store
	switch cfg.SessionStore {
	case "cookie":
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	default:
		redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
		rs, err := redisStore.NewStore(
			10,        // Redis pool size
			"tcp",     // network type
			redisAddr, // Redis address from config
			"",        // username (empty for default user)
			"",        // password (empty = no password)
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, err
		}
		store = rs
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}
