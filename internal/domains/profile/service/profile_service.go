package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"bookly-backend/internal/domains/profile/model"
	"bookly-backend/internal/domains/profile/repository"
	"bookly-backend/internal/shared"
)

// Sanitizer turns free-form user text into plain text.
type Sanitizer interface {
	Sanitize(raw string) string
}

type profileService struct {
	repo      repository.RepositoryInterface
	sanitizer Sanitizer
	now       func() time.Time
}

func NewProfileService(repo repository.RepositoryInterface, sanitizer Sanitizer) ServiceInterface {
	return &profileService{
		repo:      repo,
		sanitizer: sanitizer,
		now:       repository.Now,
	}
}

func (s *profileService) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	return s.repo.FindAll(ctx)
}

func (s *profileService) GetProfile(ctx context.Context, id shared.UserID) (*model.Profile, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, model.ErrProfileNotFound
	}
	return p, nil
}

func (s *profileService) CreateProfile(ctx context.Context, req model.CreateProfileRequest) (*model.Profile, error) {
	return s.repo.Create(ctx, req)
}

func (s *profileService) UpdateProfile(ctx context.Context, id shared.UserID, req model.UpdateProfileRequest) (*model.Profile, error) {
	p, err := s.repo.Update(ctx, id, req)
	switch {
	case errors.Is(err, shared.ErrNothingToUpdate):
		return s.GetProfile(ctx, id)
	case err != nil:
		return nil, err
	case p == nil:
		return nil, model.ErrProfileNotFound
	}
	return p, nil
}

func (s *profileService) DeleteProfile(ctx context.Context, id shared.UserID) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return model.ErrProfileNotFound
	}
	return nil
}

// History mutations are read-modify-write: a concurrent writer between the read and Save is
// overwritten. Callers needing the authoritative state re-fetch.

func (s *profileService) AddHistoryEntry(ctx context.Context, id shared.UserID, req model.HistoryEntryRequest) (*model.Profile, error) {
	now := s.now()
	entry := req.Entry(now)
	entry.Comment = s.clean(entry.Comment)
	if err := entry.Validate(); err != nil {
		return nil, shared.NewValidationError(err)
	}

	p, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	p.AddBookToHistory(entry, now)
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *profileService) UpdateHistoryEntry(ctx context.Context, id shared.UserID, bookID string, patch model.HistoryPatch) (*model.Profile, error) {
	patch.Comment = s.clean(patch.Comment)
	if err := patch.Validate(); err != nil {
		return nil, shared.NewValidationError(err)
	}

	p, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	if !p.UpdateBookInHistory(strings.TrimSpace(bookID), patch, s.now()) {
		return nil, model.ErrHistoryEntryNotFound
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *profileService) RemoveHistoryEntry(ctx context.Context, id shared.UserID, bookID string) (*model.Profile, error) {
	p, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	p.RemoveBookFromHistory(strings.TrimSpace(bookID), s.now())
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *profileService) clean(comment *string) *string {
	if comment == nil || s.sanitizer == nil {
		return comment
	}
	c := s.sanitizer.Sanitize(*comment)
	return &c
}
