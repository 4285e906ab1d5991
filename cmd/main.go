package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config2 "task-manager-service/pkg/config"

	_ "task-manager-service/docs"
	"task-manager-service/internal/handler"
	"task-manager-service/internal/repository"
	"task-manager-service/internal/router"
	"task-manager-service/internal/service"

	"github.com/go-playground/validator/v10"
)

// @title Task Manager Service API
// @version 1.0
// @description Task, team and bug tracking service with per-actor derived permissions
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Configure logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config2.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Connect to database
	pool, err := config2.MustInitDB(context.Background(), *cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	slog.Info("successfully connected to database")

	// Initialize repositories
	authRepo := repository.NewAuthRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	teamRepo := repository.NewTeamRepository(pool)
	taskRepo := repository.NewTaskRepository(pool)
	subTaskRepo := repository.NewSubTaskRepository(pool)
	bugRepo := repository.NewBugReportRepository(pool)
	attachmentRepo := repository.NewAttachmentRepository(pool)
	historyRepo := repository.NewHistoryRepository(pool)
	statsRepo := repository.NewStatisticsRepository(pool)

	// Initialize validator
	validate := validator.New()

	// Initialize services
	authService := service.NewAuthService(authRepo, userRepo, cfg.JWTSecret, cfg.TokenTTL)
	teamService := service.NewTeamService(teamRepo, userRepo)
	taskService := service.NewTaskService(taskRepo, teamRepo, userRepo, historyRepo)
	subTaskService := service.NewSubTaskService(subTaskRepo, taskRepo, teamRepo)
	bugService := service.NewBugReportService(bugRepo, taskRepo, teamRepo)
	attachmentService := service.NewAttachmentService(attachmentRepo, taskRepo, teamRepo)
	statsService := service.NewStatisticsService(statsRepo, bugRepo, teamRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, validate)
	teamHandler := handler.NewTeamHandler(teamService, validate)
	taskHandler := handler.NewTaskHandler(taskService, validate)
	subTaskHandler := handler.NewSubTaskHandler(subTaskService, validate)
	bugHandler := handler.NewBugReportHandler(bugService, validate)
	attachmentHandler := handler.NewAttachmentHandler(attachmentService, validate)
	statisticsHandler := handler.NewStatisticsHandler(statsService)
	healthHandler := handler.NewHealthHandler()

	slog.Info("successfully configured services and handlers")

	// Setup router
	r := router.SetupRouter(
		authHandler,
		teamHandler,
		taskHandler,
		subTaskHandler,
		bugHandler,
		attachmentHandler,
		statisticsHandler,
		healthHandler,
		authService,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server stopped")
}
