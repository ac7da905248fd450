package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/taskforge/go-tasks/auth"
	"github.com/taskforge/go-tasks/handlers"
	"github.com/taskforge/go-tasks/middleware"
)

// Handlers gom các handler mà router cần
type Handlers struct {
	Auth   *handlers.AuthHandler
	Tasks  *handlers.TaskHandler
	Health *handlers.HealthHandler
}

func SetupRoutes(app *fiber.App, h Handlers, verifier *auth.Verifier) {
	app.Get("/health/db-status", h.Health.DBStatus)

	protected := middleware.Protected(verifier)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Get("/all-users", protected, h.Auth.AllUsers)

	tasks := app.Group("/tasks", protected)
	tasks.Get("/", h.Tasks.GetAll)
	tasks.Post("/", h.Tasks.Create)
	// đăng ký trước /:id để "categoria" không bị nuốt làm id
	tasks.Get("/categoria/:categoria", h.Tasks.GetByCategory)
	tasks.Get("/:id", h.Tasks.GetByID)
	tasks.Put("/:id", h.Tasks.Update)
	tasks.Delete("/:id", h.Tasks.Delete)
}
