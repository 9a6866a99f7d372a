package migrations

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var (
	//go:embed postgres.sql
	postgresSchema string

	//go:embed sqlite3.sql
	sqliteSchema string
)

// Migrate applies the schema for the connection's driver. Every statement is
// idempotent so it is safe to run on each start.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	var schema string
	switch db.DriverName() {
	case "postgres":
		schema = postgresSchema
	case "sqlite3":
		schema = sqliteSchema
	default:
		return fmt.Errorf("no schema for driver %q", db.DriverName())
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements(schema) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			log.Error().Err(err).Str("component", "Migrate").Msg("")
			return fmt.Errorf("applying %q: %w", firstLine(stmt), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Info().Str("driver", db.DriverName()).Msg("schema is up to date")
	return nil
}

func statements(schema string) []string {
	var res []string
	for _, s := range strings.Split(schema, ";") {
		if s = strings.TrimSpace(s); s != "" {
			res = append(res, s)
		}
	}
	return res
}

func firstLine(stmt string) string {
	line, _, _ := strings.Cut(stmt, "\n")
	return line
}
