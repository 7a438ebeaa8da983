package service

import (
	"context"
	"errors"

	"bookly-backend/internal/domains/user/model"
	"bookly-backend/internal/domains/user/repository"
	"bookly-backend/internal/shared"
)

type userService struct {
	repo repository.RepositoryInterface
}

func NewUserService(repo repository.RepositoryInterface) ServiceInterface {
	return &userService{repo: repo}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *userService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, model.ErrUserNotFound
	}
	return u, nil
}

func (s *userService) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	return s.repo.Create(ctx, req)
}

// UpdateUser answers an empty patch with the current record.
func (s *userService) UpdateUser(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error) {
	u, err := s.repo.Update(ctx, id, req)
	if errors.Is(err, shared.ErrNothingToUpdate) {
		return s.GetUser(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, model.ErrUserNotFound
	}
	return u, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return model.ErrUserNotFound
	}
	return nil
}
