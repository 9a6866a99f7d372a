package migrations

import (
	"context"
	"testing"

	"github.com/alimikegami/catalog-service/internal/infrastructure/database/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := sqlite.Open(sqlite.MemoryPath)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, Migrate(ctx, db))

	var tables []string
	err = db.SelectContext(ctx, &tables, "SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('collections', 'subcollections', 'products') ORDER BY name")
	require.NoError(t, err)
	assert.Equal(t, []string{"collections", "products", "subcollections"}, tables)
}

func TestStatementsSkipsBlanks(t *testing.T) {
	stmts := statements("CREATE TABLE a (id INT);\n\n  ;CREATE TABLE b (id INT);\n")
	assert.Equal(t, []string{"CREATE TABLE a (id INT)", "CREATE TABLE b (id INT)"}, stmts)
}
