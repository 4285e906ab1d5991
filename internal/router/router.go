package router

import (
	"net/http"
	"time"

	middleware2 "task-manager-service/pkg/middleware"

	"task-manager-service/internal/handler"
	"task-manager-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRouter(
	authHandler *handler.AuthHandler,
	teamHandler *handler.TeamHandler,
	taskHandler *handler.TaskHandler,
	subTaskHandler *handler.SubTaskHandler,
	bugReportHandler *handler.BugReportHandler,
	attachmentHandler *handler.AttachmentHandler,
	statisticsHandler *handler.StatisticsHandler,
	healthHandler *handler.HealthHandler,
	authService middleware.AuthService,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware2.LoggingMiddleware)
	r.Use(chimiddleware.Timeout(5 * time.Second))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Public endpoints
	r.Head("/health", healthHandler.Health)
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// Protected endpoints (require JWT authentication)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(authService))

		// Team endpoints
		r.Post("/teams", teamHandler.CreateTeam)
		r.Get("/teams/{teamID}", teamHandler.GetTeam)
		r.Post("/teams/{teamID}/members", teamHandler.AddMember)
		r.Delete("/teams/{teamID}/members/{userID}", teamHandler.RemoveMember)
		r.Patch("/teams/{teamID}/members/{userID}", teamHandler.UpdateRole)

		// Task endpoints
		r.Post("/tasks", taskHandler.CreateTask)
		r.Get("/tasks", taskHandler.ListTasks)
		r.Get("/tasks/{taskID}", taskHandler.GetTask)
		r.Patch("/tasks/{taskID}", taskHandler.UpdateTask)
		r.Delete("/tasks/{taskID}", taskHandler.DeleteTask)
		r.Get("/tasks/{taskID}/history", taskHandler.GetHistory)

		// Subtask endpoints
		r.Post("/tasks/{taskID}/subtasks", subTaskHandler.CreateSubTask)
		r.Get("/tasks/{taskID}/subtasks", subTaskHandler.ListSubTasks)
		r.Patch("/subtasks/{subTaskID}", subTaskHandler.UpdateSubTask)
		r.Delete("/subtasks/{subTaskID}", subTaskHandler.DeleteSubTask)

		// Bug report endpoints
		r.Post("/tasks/{taskID}/bugs", bugReportHandler.CreateBugReport)
		r.Get("/tasks/{taskID}/bugs", bugReportHandler.ListBugReports)
		r.Patch("/bugs/{bugID}", bugReportHandler.UpdateBugReport)

		// Attachment endpoints
		r.Post("/tasks/{taskID}/attachments", attachmentHandler.UploadAttachment)
		r.Get("/tasks/{taskID}/attachments", attachmentHandler.ListAttachments)
		r.Delete("/attachments/{attachmentID}", attachmentHandler.DeleteAttachment)

		// Statistics endpoint
		r.Get("/statistics", statisticsHandler.GetStatistics)
	})

	return r
}
