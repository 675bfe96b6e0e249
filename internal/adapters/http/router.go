// Package http provides the inbound HTTP adapter: the command routes, health
// probes, and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-bridge/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// One route per command. Static segments win over {id} in chi.
	r.Route("/api/v1/todos", func(r chi.Router) {
		r.Get("/", todoHandler.ListTodos)
		r.Post("/", todoHandler.AddTodo)
		r.Post("/import", todoHandler.ImportTodos)

		r.Put("/completed", todoHandler.ChangeAllCompleted)
		r.Delete("/completed", todoHandler.DeleteCompleted)

		r.Delete("/{id}", todoHandler.DeleteTodo)
		r.Patch("/{id}/title", todoHandler.ChangeTitle)
		r.Patch("/{id}/completed", todoHandler.ChangeCompleted)
	})

	return r
}
