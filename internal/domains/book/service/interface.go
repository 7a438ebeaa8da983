package service

import (
	"context"

	"bookly-backend/internal/domains/book/model"
)

type ServiceInterface interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id int64) (*model.Book, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)
	UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (*model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}
