package repository

import (
	"context"

	"taskshelf/internal/domain"
)

// BookRepository is the uniform storage contract for books, implemented by
// the Postgres and in-memory variants.
type BookRepository interface {
	Insert(ctx context.Context, in domain.BookCreate) (domain.Book, error)
	FindOne(ctx context.Context, id int64) (domain.Book, error)
	FindMany(ctx context.Context, skip, limit int64) ([]domain.Book, error)
	Search(ctx context.Context, q domain.BookSearch) ([]domain.Book, error)
	Update(ctx context.Context, id int64, in domain.BookUpdate) (domain.Book, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}
