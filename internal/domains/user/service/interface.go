package service

import (
	"context"

	"bookly-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
	UpdateUser(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
