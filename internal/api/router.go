package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/taskdesk/taskdesk/internal/api/handler"
	"github.com/taskdesk/taskdesk/internal/api/middleware"
	"github.com/taskdesk/taskdesk/internal/auth"
	"github.com/taskdesk/taskdesk/internal/company"
	"github.com/taskdesk/taskdesk/internal/task"
	"github.com/taskdesk/taskdesk/internal/user"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	DBPinger    handler.DBPinger
	Version     string
	Tokens      *auth.Tokens
	AuthService *auth.Service
	Hasher      *auth.Hasher
	UserRepo    user.Repository
	CompanyRepo company.Repository
	TaskRepo    task.Repository
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	authHandler := handler.NewAuthHandler(deps.AuthService)
	r.Post("/auth/login", authHandler.Login)

	companyHandler := handler.NewCompanyHandler(deps.CompanyRepo)
	userHandler := handler.NewUserHandler(deps.Hasher, deps.UserRepo, deps.TaskRepo)
	taskHandler := handler.NewTaskHandler(deps.TaskRepo)

	// Everything below requires a verified bearer token.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(deps.Tokens))

		r.Route("/companies", func(r chi.Router) {
			r.Get("/", companyHandler.List)
			r.With(middleware.RequireSuperuser()).Post("/", companyHandler.Create)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.With(middleware.RequireAdmin()).Post("/", userHandler.Create)
			r.Get("/{id}/tasks", userHandler.ListTasks)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", taskHandler.List)
			r.Post("/", taskHandler.Create)
		})
	})

	return r
}
