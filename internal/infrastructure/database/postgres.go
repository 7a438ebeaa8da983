package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"bookly-backend/pkg/logger"
)

type DBConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	DBName   string
	SSLMode  string

	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

// DSN renders the config as a postgres URL, usable by both pgx and lib/pq.
// Credentials are percent-encoded, so they may contain any character.
func (c *DBConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(c.Username, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *DBConfig
	log    zerolog.Logger
}

func NewPostgresDB(config *DBConfig) *PostgresDB {
	return &PostgresDB{
		Config: config,
		log:    logger.Component("postgres"),
	}
}

func (db *PostgresDB) configurePool() (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(db.Config.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	config.MaxConns = db.Config.MaxConns
	config.MinConns = db.Config.MinConns
	config.MaxConnLifetime = db.Config.MaxConnLifetime
	config.MaxConnIdleTime = db.Config.MaxConnIdleTime
	config.HealthCheckPeriod = db.Config.HealthCheckPeriod
	config.ConnConfig.ConnectTimeout = db.Config.ConnectTimeout

	return config, nil
}

// Connect builds the pool and waits for the server to answer a ping, retrying with exponential backoff.
// The pool is kept even when every ping fails: pgx dials lazily, so queries start working as soon as
// PostgreSQL comes back. The returned error only reports that the store is unreachable right now.
func (db *PostgresDB) Connect(ctx context.Context) error {
	db.log.Info().Str("host", db.Config.Host).Int("port", db.Config.Port).Msg("initializing PostgreSQL pool")

	config, err := db.configurePool()
	if err != nil {
		return fmt.Errorf("pool configuration failed: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("pool creation failed: %w", err)
	}
	db.Pool = pool

	if err := db.waitForServer(ctx); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	db.log.Info().Msg("PostgreSQL connection established")
	return nil
}

func (db *PostgresDB) waitForServer(ctx context.Context) error {
	attempts := db.Config.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		lastErr = db.Ping(pingCtx)
		cancel()

		if lastErr == nil {
			return nil
		}

		db.log.Warn().Err(lastErr).Int("attempt", attempt).Int("max_attempts", attempts).Msg("ping failed")

		if attempt < attempts {
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return fmt.Errorf("no answer after %d attempts: %w", attempts, lastErr)
}
