package repository

import (
	"context"
	"errors"
	"testing"

	"taskshelf/internal/domain"
)

func TestMemoryBookInsertAssignsSequentialIDs(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()

	first, err := repo.Insert(ctx, domain.BookCreate{Title: "Dune", Author: "Herbert", Rating: 90})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	second, err := repo.Insert(ctx, domain.BookCreate{Title: "Hyperion", Author: "Simmons", Rating: 88})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}

	// ids are stable on subsequent reads
	got, err := repo.FindOne(ctx, first.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != first {
		t.Fatalf("stored record differs: %+v vs %+v", got, first)
	}
}

func TestMemoryBookPartialUpdatePreservesOmittedFields(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()

	b, _ := repo.Insert(ctx, domain.BookCreate{Title: "Dune", Author: "Herbert", Rating: 90})

	rating := 95
	updated, err := repo.Update(ctx, b.ID, domain.BookUpdate{Rating: &rating})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Rating != 95 {
		t.Fatalf("expected rating 95, got %d", updated.Rating)
	}
	if updated.Title != "Dune" || updated.Author != "Herbert" {
		t.Fatalf("omitted fields were clobbered: %+v", updated)
	}
}

func TestMemoryBookUpdateRejectsEmptyPayload(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()

	b, _ := repo.Insert(ctx, domain.BookCreate{Title: "Dune", Author: "Herbert"})

	_, err := repo.Update(ctx, b.ID, domain.BookUpdate{})
	if !errors.Is(err, domain.ErrEmptyUpdate) {
		t.Fatalf("expected ErrEmptyUpdate, got %v", err)
	}
}

func TestMemoryBookDeleteSecondTimeNotFound(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()

	b, _ := repo.Insert(ctx, domain.BookCreate{Title: "Dune", Author: "Herbert"})

	if err := repo.Delete(ctx, b.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.Delete(ctx, b.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestMemoryBookSearchPredicatesAreANDed(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()

	repo.Insert(ctx, domain.BookCreate{Title: "Dune", Author: "Frank Herbert", Rating: 90})
	repo.Insert(ctx, domain.BookCreate{Title: "Dune Messiah", Author: "Frank Herbert", Rating: 75})
	repo.Insert(ctx, domain.BookCreate{Title: "Hyperion", Author: "Dan Simmons", Rating: 88})

	min := 80
	got, err := repo.Search(ctx, domain.BookSearch{Title: "dune", MinRating: &min})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Dune" {
		t.Fatalf("expected only Dune, got %+v", got)
	}

	// absent predicates impose no constraint
	all, err := repo.Search(ctx, domain.BookSearch{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 books, got %d", len(all))
	}
}

func TestMemoryBookFindManyWindow(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c", "d"} {
		repo.Insert(ctx, domain.BookCreate{Title: title, Author: "x"})
	}

	got, err := repo.FindMany(ctx, 1, 2)
	if err != nil {
		t.Fatalf("find many: %v", err)
	}
	if len(got) != 2 || got[0].Title != "b" || got[1].Title != "c" {
		t.Fatalf("wrong window: %+v", got)
	}
}

func TestMemoryBookDeleteAll(t *testing.T) {
	repo := NewMemoryBookRepository()
	ctx := context.Background()

	repo.Insert(ctx, domain.BookCreate{Title: "a", Author: "x"})
	repo.Insert(ctx, domain.BookCreate{Title: "b", Author: "x"})

	count, err := repo.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 deleted, got %d", count)
	}

	// empty store deletes zero without error
	count, err = repo.DeleteAll(ctx)
	if err != nil || count != 0 {
		t.Fatalf("expected 0 deleted on empty store, got %d err %v", count, err)
	}

	n, _ := repo.Count(ctx)
	if n != 0 {
		t.Fatalf("expected empty store, count %d", n)
	}
}
