package domain

import "time"

// Todo is a todo item as returned by the API. ID is the hex form of the
// document id assigned by the store.
type Todo struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Complete    bool      `json:"complete"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TodoCreate is the request body for creating a todo.
type TodoCreate struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"required,min=1,max=500"`
	Complete    bool   `json:"complete"`
}

// TodoUpdate is the request body for a partial update. Nil fields are left
// untouched.
type TodoUpdate struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,min=1,max=500"`
	Complete    *bool   `json:"complete"`
}

// Empty reports whether the update carries no fields at all.
func (u TodoUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Complete == nil
}

// TodoFilter restricts List/DeleteMany/Count to matching documents.
// A nil Complete imposes no constraint.
type TodoFilter struct {
	Complete *bool
}

// TodoStats summarizes the collection for the stats endpoint.
type TodoStats struct {
	Total          int64   `json:"total"`
	Completed      int64   `json:"completed"`
	Pending        int64   `json:"pending"`
	CompletionRate float64 `json:"completionRate"`
}
