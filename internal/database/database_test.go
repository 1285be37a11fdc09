package database

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/typist/pkg/models"
)

func openTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := Connect(filepath.Join(t.TempDir(), "data.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *Database, id int64) {
	t.Helper()
	err := NewUserRepository(db).Create(&models.UserProfile{
		ID:        id,
		Name:      fmt.Sprintf("user-%d", id),
		Avatar:    "robot",
		CreatedAt: "2024-01-01T00:00:00Z",
	})
	require.NoError(t, err)
}

func TestConnectAppliesAllMigrations(t *testing.T) {
	db := openTestDB(t)

	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, migrations[len(migrations)-1].version, version)
}

func TestConnectIsSafeToRepeat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")

	db, err := Connect(path)
	require.NoError(t, err)
	createTestUser(t, db, 1)
	require.NoError(t, db.Close())

	// Reopening must re-run the schema check without touching data
	db, err = Connect(path)
	require.NoError(t, err)
	defer db.Close()

	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, migrations[len(migrations)-1].version, version)

	count, err := NewUserRepository(db).Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestSchemaVersionLedgerHasOneRowPerVersion(t *testing.T) {
	db := openTestDB(t)

	var rows int
	require.NoError(t, db.get(&rows, "SELECT COUNT(*) FROM schema_version"))
	assert.Equal(t, len(migrations), rows)
}
