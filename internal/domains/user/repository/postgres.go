package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"bookly-backend/internal/domains/user/model"
	"bookly-backend/internal/infrastructure/database"
	"bookly-backend/internal/shared"
	"bookly-backend/internal/shared/utils"
)

const userColumns = "id, name, email"

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) RepositoryInterface {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var u model.User
	err := r.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}

	return &u, nil
}

func (r *postgresRepository) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, shared.NewValidationError(err)
	}

	query := `INSERT INTO users (name, email) VALUES ($1, $2) RETURNING ` + userColumns

	var u model.User
	err := r.db.QueryRow(ctx, query, req.Name, req.Email).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, model.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &u, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error) {
	req.Normalize()
	if req.IsEmpty() {
		return nil, shared.ErrNothingToUpdate
	}
	if err := req.Validate(); err != nil {
		return nil, shared.NewValidationError(err)
	}

	b := utils.NewUpdateBuilder()
	if req.Name != nil {
		b.Set("name", *req.Name)
	}
	if req.Email != nil {
		b.Set("email", *req.Email)
	}
	query, args := b.Build("users", "id", id, "id", "name", "email")

	var u model.User
	err := r.db.QueryRow(ctx, query, args...).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if database.IsUniqueViolation(err) {
			return nil, model.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}

	return &u, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete user %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
