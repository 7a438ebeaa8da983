package service

import (
	"context"

	bookmodel "bookly-backend/internal/domains/book/model"
	profilemodel "bookly-backend/internal/domains/profile/model"
	usermodel "bookly-backend/internal/domains/user/model"
	"bookly-backend/internal/domains/userfull/model"
	"bookly-backend/internal/shared"
)

type ServiceInterface interface {
	// GetUserFull returns model.ErrUserFullNotFound only when both stores yield nothing.
	GetUserFull(ctx context.Context, id shared.UserID) (*model.UserFull, error)
}

// The aggregation only reads, so it depends on the finder halves of the repositories.

type UserFinder interface {
	FindByID(ctx context.Context, id int64) (*usermodel.User, error)
}

type ProfileFinder interface {
	FindByID(ctx context.Context, id shared.UserID) (*profilemodel.Profile, error)
}

type BookFinder interface {
	FindByIDs(ctx context.Context, ids []int64) ([]bookmodel.Book, error)
}
