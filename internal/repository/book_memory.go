package repository

import (
	"context"
	"strings"
	"sync"

	"taskshelf/internal/domain"
)

// MemoryBookRepository keeps books in an insertion-ordered slice with
// sequential ids, matching the shape the Postgres variant produces. Intended
// for single-instance use and tests; injected explicitly, never a global.
type MemoryBookRepository struct {
	mu     sync.RWMutex
	books  []domain.Book
	nextID int64
}

func NewMemoryBookRepository() *MemoryBookRepository {
	return &MemoryBookRepository{nextID: 1}
}

func (r *MemoryBookRepository) Insert(_ context.Context, in domain.BookCreate) (domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := domain.Book{
		ID:          r.nextID,
		Title:       in.Title,
		Author:      in.Author,
		Description: in.Description,
		Rating:      in.Rating,
	}
	r.nextID++
	r.books = append(r.books, b)
	return b, nil
}

func (r *MemoryBookRepository) FindOne(_ context.Context, id int64) (domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.books {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Book{}, domain.ErrNotFound
}

func (r *MemoryBookRepository) FindMany(_ context.Context, skip, limit int64) ([]domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Book, 0)
	for i, b := range r.books {
		if int64(i) < skip {
			continue
		}
		if int64(len(out)) >= limit {
			break
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *MemoryBookRepository) Search(_ context.Context, q domain.BookSearch) ([]domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Book, 0)
	for _, b := range r.books {
		if q.Title != "" && !containsFold(b.Title, q.Title) {
			continue
		}
		if q.Author != "" && !containsFold(b.Author, q.Author) {
			continue
		}
		if q.MinRating != nil && b.Rating < *q.MinRating {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *MemoryBookRepository) Update(_ context.Context, id int64, in domain.BookUpdate) (domain.Book, error) {
	if in.Empty() {
		return domain.Book{}, domain.ErrEmptyUpdate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.books {
		if r.books[i].ID != id {
			continue
		}
		if in.Title != nil {
			r.books[i].Title = *in.Title
		}
		if in.Author != nil {
			r.books[i].Author = *in.Author
		}
		if in.Description != nil {
			r.books[i].Description = *in.Description
		}
		if in.Rating != nil {
			r.books[i].Rating = *in.Rating
		}
		return r.books[i], nil
	}
	return domain.Book{}, domain.ErrNotFound
}

func (r *MemoryBookRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.books {
		if r.books[i].ID == id {
			r.books = append(r.books[:i], r.books[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *MemoryBookRepository) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.books))
	r.books = nil
	return n, nil
}

func (r *MemoryBookRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.books)), nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
