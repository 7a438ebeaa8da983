package repository

import (
	"context"

	"bookly-backend/internal/domains/book/model"
)

type RepositoryInterface interface {
	FindAll(ctx context.Context) ([]model.Book, error)
	FindByID(ctx context.Context, id int64) (*model.Book, error)
	// FindByIDs resolves many ids in a single round trip. Unknown ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []int64) ([]model.Book, error)
	Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)
	Update(ctx context.Context, id int64, req model.UpdateBookRequest) (*model.Book, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
