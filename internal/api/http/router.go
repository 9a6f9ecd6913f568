package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-panel/internal/api/http/handlers"
	"github.com/spec-kit/admin-panel/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Account        *handlers.AccountHandler
	Admin          *handlers.AdminHandler
	Notices        *handlers.NoticeHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Everything under /api/admin and
// /api/edit sits behind bearer auth plus the admin role guard; handlers never
// re-check authorization.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/account/login", cfg.Account.Login)

	admin := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Get("/users/:id", cfg.Admin.GetUser)
	admin.Put("/users/:id", cfg.Admin.UpdateUser)
	admin.Delete("/users/:id", cfg.Admin.DeleteUser)
	admin.Get("/teams", cfg.Admin.ListTeams)
	admin.Get("/logs/:level?", cfg.Admin.ListLogs)
	admin.Get("/files", cfg.Admin.ListFiles)

	edit := api.Group("/edit", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	edit.Get("/notices", cfg.Notices.ListNotices)
	edit.Post("/notices", cfg.Notices.CreateNotice)
	edit.Put("/notices/:id", cfg.Notices.UpdateNotice)
	edit.Delete("/notices/:id", cfg.Notices.DeleteNotice)
}
