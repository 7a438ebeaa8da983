package service

import (
	"context"
	"errors"

	"bookly-backend/internal/domains/book/model"
	"bookly-backend/internal/domains/book/repository"
	"bookly-backend/internal/shared"
)

type bookService struct {
	repo repository.RepositoryInterface
}

func NewBookService(repo repository.RepositoryInterface) ServiceInterface {
	return &bookService{repo: repo}
}

func (s *bookService) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.FindAll(ctx)
}

func (s *bookService) GetBook(ctx context.Context, id int64) (*model.Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, model.ErrBookNotFound
	}
	return b, nil
}

func (s *bookService) CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	return s.repo.Create(ctx, req)
}

func (s *bookService) UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (*model.Book, error) {
	b, err := s.repo.Update(ctx, id, req)
	switch {
	case errors.Is(err, shared.ErrNothingToUpdate):
		return s.GetBook(ctx, id)
	case err != nil:
		return nil, err
	case b == nil:
		return nil, model.ErrBookNotFound
	}
	return b, nil
}

func (s *bookService) DeleteBook(ctx context.Context, id int64) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return model.ErrBookNotFound
	}
	return nil
}
