package container

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"bookly-backend/internal/config"
	"bookly-backend/internal/infrastructure/database"
	"bookly-backend/internal/infrastructure/docstore"
	"bookly-backend/internal/infrastructure/metrics"
	"bookly-backend/internal/shared/middleware"
	"bookly-backend/internal/shared/sanitize"
	"bookly-backend/internal/shared/storeguard"
	"bookly-backend/pkg/logger"

	bookHandler "bookly-backend/internal/domains/book/handler"
	bookRepo "bookly-backend/internal/domains/book/repository"
	bookService "bookly-backend/internal/domains/book/service"
	healthHandler "bookly-backend/internal/domains/health/handler"
	profileHandler "bookly-backend/internal/domains/profile/handler"
	profileRepo "bookly-backend/internal/domains/profile/repository"
	profileService "bookly-backend/internal/domains/profile/service"
	userHandler "bookly-backend/internal/domains/user/handler"
	userRepo "bookly-backend/internal/domains/user/repository"
	userService "bookly-backend/internal/domains/user/service"
	userFullHandler "bookly-backend/internal/domains/userfull/handler"
	userFullService "bookly-backend/internal/domains/userfull/service"
)

// Container is the root of the dependency graph. Everything in it is a process-wide singleton.
type Container struct {
	Config *config.Config

	// ========================================
	// INFRASTRUCTURE
	// ========================================
	DB          *database.PostgresDB
	Mongo       *docstore.MongoDB
	Registry    *prometheus.Registry
	Metrics     *metrics.Collector
	Guard       *storeguard.Guard
	RateLimiter *middleware.RateLimiter

	// ========================================
	// REPOSITORIES
	// ========================================
	UserRepo    userRepo.RepositoryInterface
	BookRepo    bookRepo.RepositoryInterface
	ProfileRepo profileRepo.RepositoryInterface

	// ========================================
	// SERVICES
	// ========================================
	UserService     userService.ServiceInterface
	BookService     bookService.ServiceInterface
	ProfileService  profileService.ServiceInterface
	UserFullService userFullService.ServiceInterface

	// ========================================
	// HANDLERS
	// ========================================
	UserHandler     *userHandler.Handler
	BookHandler     *bookHandler.Handler
	ProfileHandler  *profileHandler.Handler
	UserFullHandler *userFullHandler.Handler
	HealthHandler   *healthHandler.Handler

	log zerolog.Logger
}

// NewContainer wires config, stores, repositories, services and handlers in that order.
//
// An unreachable store is not fatal: both drivers reconnect on their own, so the container logs a
// warning and the affected routes fail per request until the store comes back. Only configuration
// errors abort startup.
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{
		Config: cfg,
		log:    logger.Component("container"),
	}

	c.log.Info().Str("environment", cfg.App.Environment).Msg("initializing container")

	if err := c.initPostgres(); err != nil {
		return nil, err
	}
	if err := c.initMongo(); err != nil {
		c.Cleanup()
		return nil, err
	}

	c.initObservability()
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	c.log.Info().Msg("container initialized")
	return c, nil
}

func (c *Container) initPostgres() error {
	dbConfig, err := config.LoadDatabaseConfig(c.Config.Database)
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	c.DB = database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.DB.Connect(ctx); err != nil {
		if c.DB.Pool == nil {
			return fmt.Errorf("failed to create database pool: %w", err)
		}
		c.log.Warn().Err(err).Msg("PostgreSQL unreachable, starting without it")
		return nil
	}

	if err := database.RunMigrations(dbConfig.DSN()); err != nil {
		c.log.Warn().Err(err).Msg("migrations not applied")
	}
	return nil
}

func (c *Container) initMongo() error {
	c.Mongo = docstore.NewMongoDB(config.LoadMongoConfig(c.Config.Mongo))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.Mongo.Connect(ctx); err != nil {
		if c.Mongo.Client == nil {
			return fmt.Errorf("failed to create mongo client: %w", err)
		}
		c.log.Warn().Err(err).Msg("MongoDB unreachable, starting without it")
		return nil
	}

	if err := profileRepo.EnsureIndexes(ctx, c.Mongo.Collection(profileRepo.CollectionName)); err != nil {
		c.log.Warn().Err(err).Msg("profile indexes not created")
	}
	return nil
}

func (c *Container) initObservability() {
	c.Registry = prometheus.NewRegistry()
	c.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.Metrics = metrics.NewCollector(c.Registry)
	c.Guard = storeguard.New(logger.Component("storeguard"), c.Metrics)

	c.RateLimiter = middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  rate.Limit(c.Config.RateLimit.RequestsPerSecond),
		Burst: c.Config.RateLimit.Burst,
	})
}

func (c *Container) initRepositories() {
	c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool)
	c.ProfileRepo = profileRepo.NewMongoRepository(c.Mongo.Collection(profileRepo.CollectionName))
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)
	c.ProfileService = profileService.NewProfileService(c.ProfileRepo, sanitize.NewCommentSanitizer())

	// The aggregation reads through the repositories directly; the guard owns its failure policy.
	c.UserFullService = userFullService.NewUserFullService(c.UserRepo, c.ProfileRepo, c.BookRepo, c.Guard)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.ProfileHandler = profileHandler.NewProfileHandler(c.ProfileService)
	c.UserFullHandler = userFullHandler.NewUserFullHandler(c.UserFullService)
	c.HealthHandler = healthHandler.NewHealthHandler(c.DB, c.Mongo)
}

// Cleanup releases the pools and the rate limiter janitor. Safe to call on a partially built container.
func (c *Container) Cleanup() {
	c.log.Info().Msg("cleaning up container resources")

	if c.RateLimiter != nil {
		c.RateLimiter.Stop()
	}

	if c.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Mongo.Close(ctx); err != nil {
			c.log.Warn().Err(err).Msg("failed to close MongoDB client")
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			c.log.Warn().Err(err).Msg("failed to close PostgreSQL pool")
		}
	}
}
