package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of *pgxpool.Pool the repositories need.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Ping checks the server answers within five seconds.
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close is safe to call more than once.
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		return nil
	}

	db.log.Info().Msg("closing PostgreSQL pool")
	db.Pool.Close()
	db.Pool = nil
	return nil
}

type PoolStats struct {
	AcquiredConns int32 `json:"acquiredConns"`
	IdleConns     int32 `json:"idleConns"`
	TotalConns    int32 `json:"totalConns"`
	MaxConns      int32 `json:"maxConns"`
}

// Stats returns a snapshot of the pool, reported by the connectivity diagnostic.
func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		AcquiredConns: raw.AcquiredConns(),
		IdleConns:     raw.IdleConns(),
		TotalConns:    raw.TotalConns(),
		MaxConns:      raw.MaxConns(),
	}, nil
}

// Now asks the server for its clock. The connectivity diagnostic uses it as a round-trip check.
func (db *PostgresDB) Now(ctx context.Context) (time.Time, error) {
	if db.Pool == nil {
		return time.Time{}, fmt.Errorf("database pool is not initialized")
	}

	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var now time.Time
	if err := db.Pool.QueryRow(queryCtx, "SELECT NOW()").Scan(&now); err != nil {
		return time.Time{}, fmt.Errorf("database query failed: %w", err)
	}
	return now, nil
}
