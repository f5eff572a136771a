package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskshelf/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBookRepository stores books in the books table.
type PostgresBookRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookRepository(db *pgxpool.Pool) *PostgresBookRepository {
	return &PostgresBookRepository{db: db}
}

const bookColumns = `id, title, author, COALESCE(description, ''), rating`

func scanBook(row pgx.Row) (domain.Book, error) {
	var b domain.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Description, &b.Rating)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Book{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Book{}, err
	}
	return b, nil
}

func (r *PostgresBookRepository) Insert(ctx context.Context, in domain.BookCreate) (domain.Book, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO books (title, author, description, rating)
		 VALUES ($1, $2, NULLIF($3, ''), $4)
		 RETURNING `+bookColumns,
		in.Title, in.Author, in.Description, in.Rating,
	)
	return scanBook(row)
}

func (r *PostgresBookRepository) FindOne(ctx context.Context, id int64) (domain.Book, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id)
	return scanBook(row)
}

func (r *PostgresBookRepository) FindMany(ctx context.Context, skip, limit int64) ([]domain.Book, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookColumns+` FROM books ORDER BY id OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBooks(rows)
}

// Search combines the optional predicates with AND; absent predicates
// impose no constraint.
func (r *PostgresBookRepository) Search(ctx context.Context, q domain.BookSearch) ([]domain.Book, error) {
	where := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if q.Title != "" {
		args = append(args, "%"+q.Title+"%")
		where = append(where, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if q.Author != "" {
		args = append(args, "%"+q.Author+"%")
		where = append(where, fmt.Sprintf("author ILIKE $%d", len(args)))
	}
	if q.MinRating != nil {
		args = append(args, *q.MinRating)
		where = append(where, fmt.Sprintf("rating >= $%d", len(args)))
	}

	query := `SELECT ` + bookColumns + ` FROM books`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBooks(rows)
}

func (r *PostgresBookRepository) Update(ctx context.Context, id int64, in domain.BookUpdate) (domain.Book, error) {
	if in.Empty() {
		return domain.Book{}, domain.ErrEmptyUpdate
	}

	set := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if in.Title != nil {
		args = append(args, *in.Title)
		set = append(set, fmt.Sprintf("title = $%d", len(args)))
	}
	if in.Author != nil {
		args = append(args, *in.Author)
		set = append(set, fmt.Sprintf("author = $%d", len(args)))
	}
	if in.Description != nil {
		args = append(args, *in.Description)
		set = append(set, fmt.Sprintf("description = NULLIF($%d, '')", len(args)))
	}
	if in.Rating != nil {
		args = append(args, *in.Rating)
		set = append(set, fmt.Sprintf("rating = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE books SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), bookColumns,
	)

	return scanBook(r.db.QueryRow(ctx, query, args...))
}

func (r *PostgresBookRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresBookRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM books`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PostgresBookRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&n)
	return n, err
}

func collectBooks(rows pgx.Rows) ([]domain.Book, error) {
	books := make([]domain.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}
