package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"bookly-backend/internal/config"
	"bookly-backend/internal/infrastructure/database"
	"bookly-backend/pkg/logger"
)

const usage = `usage: migrate <command>

commands:
  up              apply all pending migrations
  down [-steps N] roll back N migrations (all when N is 0)
  version         print the applied schema version
`

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("production")
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init(cfg.App.Environment)

	dbConfig, err := config.LoadDatabaseConfig(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid database configuration")
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := run(dbConfig.DSN(), os.Args[1], os.Args[2:]); err != nil {
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("migration failed")
	}
}

func run(dsn, command string, args []string) error {
	switch command {
	case "up":
		if err := database.RunMigrations(dsn); err != nil {
			return err
		}
		log.Info().Msg("migrations applied")

	case "down":
		fs := flag.NewFlagSet("down", flag.ContinueOnError)
		steps := fs.Int("steps", 1, "number of migrations to roll back, 0 for all")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if err := database.RollbackMigrations(dsn, *steps); err != nil {
			return err
		}
		log.Info().Int("steps", *steps).Msg("migrations rolled back")

	case "version":
		version, dirty, err := database.MigrationVersion(dsn)
		if err != nil {
			return err
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("schema version")

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}
