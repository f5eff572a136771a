package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	"taskshelf/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Integration test: runs only if DATABASE_URL is set. Assumes the books
// schema exists (cmd/migrate or db.ConnectPostgres).
func newTestBookRepo(t *testing.T) *PostgresBookRepository {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	t.Cleanup(pool.Close)

	repo := NewPostgresBookRepository(pool)
	if _, err := repo.DeleteAll(context.Background()); err != nil {
		t.Fatalf("clean table: %v", err)
	}
	return repo
}

func TestPostgresBookLifecycleIntegration(t *testing.T) {
	repo := newTestBookRepo(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, domain.BookCreate{Title: "Dune", Author: "Herbert", Rating: 90})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, err := repo.FindOne(ctx, created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != created {
		t.Fatalf("read differs from create: %+v vs %+v", got, created)
	}

	rating := 95
	updated, err := repo.Update(ctx, created.ID, domain.BookUpdate{Rating: &rating})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Rating != 95 || updated.Title != "Dune" || updated.Author != "Herbert" {
		t.Fatalf("partial update wrong: %+v", updated)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindOne(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestPostgresBookSearchIntegration(t *testing.T) {
	repo := newTestBookRepo(t)
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
}

func TestPostgresBookRatingConstraintIntegration(t *testing.T) {
	repo := newTestBookRepo(t)
	ctx := context.Background()

	b, err := repo.Insert(ctx, domain.BookCreate{Title: "x", Author: "y", Rating: 50})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	// the CHECK constraint backs up input validation
	bad := 250
	if _, err := repo.Update(ctx, b.ID, domain.BookUpdate{Rating: &bad}); err == nil {
		t.Fatal("expected constraint violation for rating 250")
	}
}
