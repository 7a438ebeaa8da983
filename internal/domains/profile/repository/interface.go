package repository

import (
	"context"

	"bookly-backend/internal/domains/profile/model"
	"bookly-backend/internal/shared"
)

// RepositoryInterface returns nil, nil when a document does not exist.
type RepositoryInterface interface {
	FindAll(ctx context.Context) ([]model.Profile, error)
	FindByID(ctx context.Context, id shared.UserID) (*model.Profile, error)
	Create(ctx context.Context, req model.CreateProfileRequest) (*model.Profile, error)
	// Update sets only the supplied preference lists. An empty patch returns shared.ErrNothingToUpdate.
	Update(ctx context.Context, id shared.UserID, req model.UpdateProfileRequest) (*model.Profile, error)
	Delete(ctx context.Context, id shared.UserID) (bool, error)
	// Save rewrites the whole document; history changes are persisted this way.
	Save(ctx context.Context, p *model.Profile) error
}
