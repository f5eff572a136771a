package db

import (
	"context"

	"taskshelf/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// booksSchema mirrors internal/migrations/001_books.sql. Running it at
// startup keeps dev environments working without a separate migrate step.
const booksSchema = `
CREATE TABLE IF NOT EXISTS books (
    id          BIGSERIAL PRIMARY KEY,
    title       VARCHAR(200) NOT NULL,
    author      VARCHAR(100) NOT NULL,
    description VARCHAR(500),
    rating      INTEGER NOT NULL DEFAULT 0,
    CONSTRAINT valid_rating CHECK (rating >= 0 AND rating <= 100)
);
CREATE INDEX IF NOT EXISTS idx_books_title ON books (title);
CREATE INDEX IF NOT EXISTS idx_books_author ON books (author);
`

// ConnectPostgres opens the pool, verifies connectivity and ensures the
// books schema exists. Failures are fatal.
func ConnectPostgres(dsn string) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	if _, err := pool.Exec(context.Background(), booksSchema); err != nil {
		logger.Fatal("failed to ensure books schema", "error", err)
	}

	logger.Info("postgres connected")
	return pool
}
