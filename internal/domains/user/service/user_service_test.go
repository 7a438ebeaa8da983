package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookly-backend/internal/domains/user/model"
	"bookly-backend/internal/shared"
)

type fakeRepo struct {
	findAll  func(ctx context.Context) ([]model.User, error)
	findByID func(ctx context.Context, id int64) (*model.User, error)
	create   func(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
	update   func(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error)
	delete   func(ctx context.Context, id int64) (bool, error)
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]model.User, error) { return f.findAll(ctx) }
func (f *fakeRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return f.findByID(ctx, id)
}
func (f *fakeRepo) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	return f.create(ctx, req)
}
func (f *fakeRepo) Update(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error) {
	return f.update(ctx, id, req)
}
func (f *fakeRepo) Delete(ctx context.Context, id int64) (bool, error) { return f.delete(ctx, id) }

var ana = &model.User{ID: 7, Name: "Ana", Email: "ana@x.com"}

func TestGetUser(t *testing.T) {
	svc := NewUserService(&fakeRepo{
		findByID: func(ctx context.Context, id int64) (*model.User, error) {
			if id == 7 {
				return ana, nil
			}
			return nil, nil
		},
	})

	u, err := svc.GetUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, ana, u)

	_, err = svc.GetUser(context.Background(), 8)
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestUpdateUser_EmptyPatchReturnsCurrent(t *testing.T) {
	svc := NewUserService(&fakeRepo{
		update: func(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error) {
			return nil, shared.ErrNothingToUpdate
		},
		findByID: func(ctx context.Context, id int64) (*model.User, error) { return ana, nil },
	})

	u, err := svc.UpdateUser(context.Background(), 7, model.UpdateUserRequest{})

	require.NoError(t, err)
	assert.Equal(t, ana, u)
}

func TestUpdateUser_EmptyPatchOnMissingUser(t *testing.T) {
	svc := NewUserService(&fakeRepo{
		update: func(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error) {
			return nil, shared.ErrNothingToUpdate
		},
		findByID: func(ctx context.Context, id int64) (*model.User, error) { return nil, nil },
	})

	_, err := svc.UpdateUser(context.Background(), 7, model.UpdateUserRequest{})

	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestUpdateUser_NoRow(t *testing.T) {
	svc := NewUserService(&fakeRepo{
		update: func(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error) {
			return nil, nil
		},
	})

	name := "Zoe"
	_, err := svc.UpdateUser(context.Background(), 7, model.UpdateUserRequest{Name: &name})

	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestUpdateUser_PropagatesConflict(t *testing.T) {
	svc := NewUserService(&fakeRepo{
		update: func(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error) {
			return nil, model.ErrEmailAlreadyExists
		},
	})

	email := "taken@x.com"
	_, err := svc.UpdateUser(context.Background(), 7, model.UpdateUserRequest{Email: &email})

	assert.ErrorIs(t, err, model.ErrEmailAlreadyExists)
}

func TestDeleteUser(t *testing.T) {
	storeDown := errors.New("store down")
	svc := NewUserService(&fakeRepo{
		delete: func(ctx context.Context, id int64) (bool, error) {
			switch id {
			case 7:
				return true, nil
			case 8:
				return false, nil
			default:
				return false, storeDown
			}
		},
	})

	assert.NoError(t, svc.DeleteUser(context.Background(), 7))
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 8), model.ErrUserNotFound)
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 9), storeDown)
}
