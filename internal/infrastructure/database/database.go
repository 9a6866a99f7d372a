package database

import (
	"fmt"

	"github.com/alimikegami/catalog-service/config"
	"github.com/alimikegami/catalog-service/internal/infrastructure/database/postgres"
	"github.com/alimikegami/catalog-service/internal/infrastructure/database/sqlite"
	"github.com/jmoiron/sqlx"
)

// Connect opens the store selected by DB_DRIVER.
func Connect(conf *config.Config) (*sqlx.DB, error) {
	switch conf.DBDriver {
	case "postgres":
		return postgres.GetDBInstance(conf.PostgreSQLConfig)
	case "sqlite3", "sqlite":
		return sqlite.Open(conf.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", conf.DBDriver)
	}
}
