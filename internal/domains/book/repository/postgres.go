package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"bookly-backend/internal/domains/book/model"
	"bookly-backend/internal/infrastructure/database"
	"bookly-backend/internal/shared"
	"bookly-backend/internal/shared/utils"
)

const bookColumns = "id, title, author, available"

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) RepositoryInterface {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.Book, error) {
	return r.query(ctx, `SELECT `+bookColumns+` FROM books ORDER BY id ASC`)
}

func (r *postgresRepository) FindByIDs(ctx context.Context, ids []int64) ([]model.Book, error) {
	if len(ids) == 0 {
		return []model.Book{}, nil
	}
	return r.query(ctx, `SELECT `+bookColumns+` FROM books WHERE id = ANY($1) ORDER BY id ASC`, ids)
}

func (r *postgresRepository) query(ctx context.Context, query string, args ...any) ([]model.Book, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Available); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	var b model.Book
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.Author, &b.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find book %d: %w", id, err)
	}

	return &b, nil
}

func (r *postgresRepository) Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, shared.NewValidationError(err)
	}

	query := `INSERT INTO books (title, author, available) VALUES ($1, $2, $3) RETURNING ` + bookColumns

	var b model.Book
	err := r.db.QueryRow(ctx, query, req.Title, req.Author, req.IsAvailable()).
		Scan(&b.ID, &b.Title, &b.Author, &b.Available)
	if err != nil {
		return nil, fmt.Errorf("insert book: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, req model.UpdateBookRequest) (*model.Book, error) {
	req.Normalize()
	if req.IsEmpty() {
		return nil, shared.ErrNothingToUpdate
	}
	if err := req.Validate(); err != nil {
		return nil, shared.NewValidationError(err)
	}

	b := utils.NewUpdateBuilder()
	if req.Title != nil {
		b.Set("title", *req.Title)
	}
	if req.Author != nil {
		b.Set("author", *req.Author)
	}
	if req.Available != nil {
		b.Set("available", *req.Available)
	}
	query, args := b.Build("books", "id", id, "id", "title", "author", "available")

	var book model.Book
	err := r.db.QueryRow(ctx, query, args...).Scan(&book.ID, &book.Title, &book.Author, &book.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update book %d: %w", id, err)
	}

	return &book, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete book %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
