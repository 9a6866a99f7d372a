package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alimikegami/catalog-service/config"
	"github.com/alimikegami/catalog-service/internal/app"
	"github.com/alimikegami/catalog-service/internal/infrastructure/database"
	"github.com/alimikegami/catalog-service/internal/infrastructure/database/migrations"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	conf := config.CreateNewConfig()

	cmd := &cobra.Command{
		Use:           "catalog",
		Short:         "Storefront catalog service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.ConfigureLogger(conf.LogLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&conf.DBDriver, "db-driver", conf.DBDriver, "database driver (postgres|sqlite3)")
	cmd.PersistentFlags().StringVar(&conf.SQLitePath, "sqlite-path", conf.SQLitePath, "sqlite database file")
	cmd.PersistentFlags().StringVar(&conf.LogLevel, "log-level", conf.LogLevel, "zerolog level")

	cmd.AddCommand(newServeCommand(conf))
	cmd.AddCommand(newMigrateCommand(conf))
	cmd.AddCommand(newSeedCommand(conf))

	return cmd
}

// openStore connects and brings the schema up to date.
func openStore(ctx context.Context, conf *config.Config) (*sqlx.DB, error) {
	db, err := database.Connect(conf)
	if err != nil {
		return nil, fmt.Errorf("connect to the database: %w", err)
	}

	if err := migrations.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("driver", db.DriverName()).Msg("schema is up to date")
	return db, nil
}
