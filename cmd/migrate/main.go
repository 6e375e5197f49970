package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"projectdesk/config"
	logs "projectdesk/internal/infra/log"
	"projectdesk/internal/infra/persistence/migrations"
	"projectdesk/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Supported subcommands:
// - up:     apply all pending migrations
// - down:   roll back the latest migration
// - status: print applied and pending migrations

func main() {
	timeout := flag.Duration("timeout", 5*time.Minute, "Overall deadline for the migration run")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, command string) (err error) {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&db, &logger),
	)

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start migrate dependencies")
	}
	defer func() {
		if stopErr := app.Stop(context.Background()); stopErr != nil && err == nil {
			err = errors.Wrap(stopErr, "failed to stop migrate dependencies")
		}
	}()

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get database handle")
	}

	return migrations.Run(ctx, sqlDB, logger, command)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: migrate [-timeout 5m] <command>

Commands:
  %s      Apply all pending migrations
  %s    Roll back the latest migration
  %s  Print migration status
`, migrations.CommandUp, migrations.CommandDown, migrations.CommandStatus)
}
