package service

import (
	"context"

	"bookly-backend/internal/domains/profile/model"
	"bookly-backend/internal/shared"
)

type ServiceInterface interface {
	ListProfiles(ctx context.Context) ([]model.Profile, error)
	GetProfile(ctx context.Context, id shared.UserID) (*model.Profile, error)
	CreateProfile(ctx context.Context, req model.CreateProfileRequest) (*model.Profile, error)
	UpdateProfile(ctx context.Context, id shared.UserID, req model.UpdateProfileRequest) (*model.Profile, error)
	DeleteProfile(ctx context.Context, id shared.UserID) error

	AddHistoryEntry(ctx context.Context, id shared.UserID, req model.HistoryEntryRequest) (*model.Profile, error)
	UpdateHistoryEntry(ctx context.Context, id shared.UserID, bookID string, patch model.HistoryPatch) (*model.Profile, error)
	RemoveHistoryEntry(ctx context.Context, id shared.UserID, bookID string) (*model.Profile, error)
}
