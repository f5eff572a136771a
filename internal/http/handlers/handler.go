package handlers

import (
	"context"

	"taskshelf/internal/domain"
)

// TodoStore is the storage contract the todo handlers depend on,
// implemented by repository.TodoRepository.
type TodoStore interface {
	Insert(ctx context.Context, in domain.TodoCreate) (domain.Todo, error)
	FindOne(ctx context.Context, id string) (domain.Todo, error)
	FindMany(ctx context.Context, filter domain.TodoFilter, skip, limit int64) ([]domain.Todo, error)
	Update(ctx context.Context, id string, in domain.TodoUpdate) (domain.Todo, error)
	Toggle(ctx context.Context, id string) (domain.Todo, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, filter domain.TodoFilter) (int64, error)
	Count(ctx context.Context, filter domain.TodoFilter) (int64, error)
}

// BookStore is the storage contract the book handlers depend on,
// implemented by the Postgres and in-memory repositories.
type BookStore interface {
	Insert(ctx context.Context, in domain.BookCreate) (domain.Book, error)
	FindOne(ctx context.Context, id int64) (domain.Book, error)
	FindMany(ctx context.Context, skip, limit int64) ([]domain.Book, error)
	Search(ctx context.Context, q domain.BookSearch) ([]domain.Book, error)
	Update(ctx context.Context, id int64, in domain.BookUpdate) (domain.Book, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type Handler struct {
	Todos TodoStore
	Books BookStore
}

func NewHandler(todos TodoStore, books BookStore) *Handler {
	return &Handler{Todos: todos, Books: books}
}
