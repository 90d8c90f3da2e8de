package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/argomobile/studio-api/internal/api/handler"
	"github.com/argomobile/studio-api/internal/api/middleware"
	"github.com/argomobile/studio-api/internal/core/domain"
	"github.com/argomobile/studio-api/internal/core/ports"
)

// RouterConfig carries everything the router needs: the use-case services,
// auth settings, and the optional external clients for readiness checks.
type RouterConfig struct {
	JWTSecret string

	Auth          ports.AuthService
	Users         ports.UserService
	Projects      ports.ProjectService
	Tasks         ports.TaskService
	Comments      ports.CommentService
	Notifications ports.NotificationService
	Documents     ports.DocumentService

	// Revoker, when non-nil, makes the auth middleware reject tokens
	// revoked by logout.
	Revoker ports.TokenRevoker

	// Mongo and Redis are only used by the readiness probe; nil means the
	// dependency is not wired in this deployment.
	Mongo *mongo.Database
	Redis *redis.Client

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("studio"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(cfg.Auth, cfg.Users)
	userHandler := handler.NewUserHandler(cfg.Users)
	projectHandler := handler.NewProjectHandler(cfg.Projects)
	taskHandler := handler.NewTaskHandler(cfg.Tasks)
	commentHandler := handler.NewCommentHandler(cfg.Comments)
	notificationHandler := handler.NewNotificationHandler(cfg.Notifications)
	documentHandler := handler.NewDocumentHandler(cfg.Documents)

	authRequired := middleware.Auth(cfg.JWTSecret, cfg.Revoker)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout, authRequired)
	e.GET("/api/auth/me", authHandler.Me, authRequired)

	// --- Users ---
	e.GET("/api/users", userHandler.List, authRequired)
	e.POST("/api/users", userHandler.Create, authRequired, adminOnly)
	e.PUT("/api/users/:id", userHandler.Update, authRequired)

	// --- Projects and membership ---
	e.GET("/api/projects", projectHandler.List, authRequired)
	e.POST("/api/projects", projectHandler.Create, authRequired)
	e.GET("/api/projects/:id", projectHandler.Get, authRequired)
	e.PUT("/api/projects/:id", projectHandler.Update, authRequired)
	e.DELETE("/api/projects/:id", projectHandler.Delete, authRequired)
	e.GET("/api/projects/:id/members", projectHandler.ListMembers, authRequired)
	e.POST("/api/projects/:id/members", projectHandler.AddMember, authRequired)
	e.DELETE("/api/projects/:projectId/members/:userId", projectHandler.RemoveMember, authRequired)

	// --- Tasks ---
	e.GET("/api/projects/:id/tasks", taskHandler.ListForProject, authRequired)
	e.POST("/api/projects/:id/tasks", taskHandler.Create, authRequired)
	// Static route registered before /api/tasks/:id so "assigned" never
	// parses as an id.
	e.GET("/api/tasks/assigned", taskHandler.ListAssignedToMe, authRequired)
	e.PUT("/api/tasks/:id", taskHandler.Update, authRequired)
	e.DELETE("/api/tasks/:id", taskHandler.Delete, authRequired)

	// --- Comments ---
	e.GET("/api/tasks/:id/comments", commentHandler.List, authRequired)
	e.POST("/api/tasks/:id/comments", commentHandler.Add, authRequired)

	// --- Documents ---
	e.GET("/api/projects/:id/documents", documentHandler.List, authRequired)
	e.POST("/api/projects/:id/documents", documentHandler.Create, authRequired)
	e.DELETE("/api/documents/:id", documentHandler.Delete, authRequired)

	// --- Notifications ---
	e.GET("/api/notifications", notificationHandler.List, authRequired)
	e.PUT("/api/notifications/:id/read", notificationHandler.MarkRead, authRequired)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(cfg.Mongo, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
