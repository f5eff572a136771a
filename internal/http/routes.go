package http

import (
	"time"

	"taskshelf/internal/http/handlers"
	"taskshelf/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the todo and book APIs plus health probes onto the
// engine. The rate limiter is fail-open when Redis is not configured.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, health *handlers.HealthHandler, rateLimit int, rateWindow time.Duration) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Welcome to the taskshelf API",
			"todos":   "/todos",
			"books":   "/books",
		})
	})

	// Health checks, no rate limiting
	r.GET("/health", health.Health)
	r.GET("/healthz", health.Liveness)
	r.GET("/readyz", health.Readiness)

	rl := middleware.RedisRateLimit(rateLimit, rateWindow)

	todos := r.Group("/todos", rl)
	{
		todos.GET("", h.ListTodos)
		todos.POST("", h.CreateTodo)
		todos.GET("/stats/summary", h.TodoStats)
		todos.DELETE("/completed/all", h.DeleteCompletedTodos)
		todos.GET("/:id", h.GetTodo)
		todos.PUT("/:id", h.UpdateTodo)
		todos.PATCH("/:id/toggle", h.ToggleTodo)
		todos.DELETE("/:id", h.DeleteTodo)
	}

	books := r.Group("/books", rl)
	{
		books.GET("", h.ListBooks)
		books.POST("", h.CreateBook)
		books.DELETE("", h.DeleteAllBooks)
		books.GET("/search", h.SearchBooks)
		books.GET("/:id", h.GetBook)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
}
