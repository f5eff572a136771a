package handlers

import (
	"math"
	"net/http"

	"taskshelf/internal/domain"

	"github.com/gin-gonic/gin"
)

// ListTodos returns todos with optional completion filter and pagination.
func (h *Handler) ListTodos(c *gin.Context) {
	skip, limit, err := parsePage(c)
	if err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	complete, err := parseOptionalBool(c.Query("complete"))
	if err != nil {
		detail(c, http.StatusBadRequest, "complete "+err.Error())
		return
	}

	todos, err := h.Todos.FindMany(c.Request.Context(), domain.TodoFilter{Complete: complete}, skip, limit)
	if err != nil {
		storeError(c, err, "list todos")
		return
	}

	c.JSON(http.StatusOK, todos)
}

// GetTodo returns a single todo by id.
func (h *Handler) GetTodo(c *gin.Context) {
	todo, err := h.Todos.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err, "get todo")
		return
	}
	c.JSON(http.StatusOK, todo)
}

// CreateTodo creates a todo and returns it with its assigned id.
func (h *Handler) CreateTodo(c *gin.Context) {
	var in domain.TodoCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		bindingDetail(c, err)
		return
	}

	todo, err := h.Todos.Insert(c.Request.Context(), in)
	if err != nil {
		storeError(c, err, "create todo")
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// UpdateTodo applies a partial update; omitted fields are untouched.
func (h *Handler) UpdateTodo(c *gin.Context) {
	var in domain.TodoUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		bindingDetail(c, err)
		return
	}

	todo, err := h.Todos.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		storeError(c, err, "update todo")
		return
	}

	c.JSON(http.StatusOK, todo)
}

// ToggleTodo flips the completion flag and returns the updated todo.
func (h *Handler) ToggleTodo(c *gin.Context) {
	todo, err := h.Todos.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err, "toggle todo")
		return
	}
	c.JSON(http.StatusOK, todo)
}

// DeleteTodo removes a single todo.
func (h *Handler) DeleteTodo(c *gin.Context) {
	if err := h.Todos.Delete(c.Request.Context(), c.Param("id")); err != nil {
		storeError(c, err, "delete todo")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteCompletedTodos removes every completed todo. Zero matches is a
// success with deletedCount 0.
func (h *Handler) DeleteCompletedTodos(c *gin.Context) {
	completed := true
	count, err := h.Todos.DeleteMany(c.Request.Context(), domain.TodoFilter{Complete: &completed})
	if err != nil {
		storeError(c, err, "delete completed todos")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": count})
}

// TodoStats reports totals and the completion rate.
func (h *Handler) TodoStats(c *gin.Context) {
	ctx := c.Request.Context()

	total, err := h.Todos.Count(ctx, domain.TodoFilter{})
	if err != nil {
		storeError(c, err, "todo stats")
		return
	}

	completed := int64(0)
	if total > 0 {
		flag := true
		completed, err = h.Todos.Count(ctx, domain.TodoFilter{Complete: &flag})
		if err != nil {
			storeError(c, err, "todo stats")
			return
		}
	}

	stats := domain.TodoStats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
	}
	if total > 0 {
		rate := float64(completed) / float64(total) * 100
		stats.CompletionRate = math.Round(rate*100) / 100
	}

	c.JSON(http.StatusOK, stats)
}
