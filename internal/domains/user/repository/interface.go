package repository

import (
	"context"

	"bookly-backend/internal/domains/user/model"
)

// RepositoryInterface returns nil, nil when a row does not exist.
type RepositoryInterface interface {
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
	// Update returns shared.ErrNothingToUpdate for an empty patch.
	Update(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
