package docstore

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"bookly-backend/pkg/logger"
)

type Config struct {
	URI      string
	Database string
	// Timeout bounds server selection and the startup ping.
	Timeout time.Duration
}

// MongoDB owns the client for the document store.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Config   *Config
	log      zerolog.Logger
}

func NewMongoDB(config *Config) *MongoDB {
	return &MongoDB{
		Config: config,
		log:    logger.Component("mongodb"),
	}
}

// Connect creates the client and pings the primary once.
// The driver connects in the background, so a failed ping leaves a usable client behind
// and only reports that the store is unreachable right now.
func (m *MongoDB) Connect(ctx context.Context) error {
	m.log.Info().Str("database", m.Config.Database).Msg("initializing MongoDB client")

	opts := options.Client().
		ApplyURI(m.Config.URI).
		SetServerSelectionTimeout(m.Config.Timeout).
		SetConnectTimeout(m.Config.Timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("mongo client creation failed: %w", err)
	}

	m.Client = client
	m.Database = client.Database(m.Config.Database)

	if err := m.Ping(ctx); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	m.log.Info().Msg("MongoDB connection established")
	return nil
}

func (m *MongoDB) Ping(ctx context.Context) error {
	if m.Client == nil {
		return fmt.Errorf("mongo client is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, m.Config.Timeout)
	defer cancel()

	if err := m.Client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}

func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.Database.Collection(name)
}

// Close is safe to call more than once.
func (m *MongoDB) Close(ctx context.Context) error {
	if m.Client == nil {
		return nil
	}

	m.log.Info().Msg("disconnecting MongoDB client")
	err := m.Client.Disconnect(ctx)
	m.Client = nil
	m.Database = nil
	if err != nil {
		return fmt.Errorf("mongo disconnect failed: %w", err)
	}
	return nil
}
