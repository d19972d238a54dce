package repositories

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"cmsadmin/database"
	"cmsadmin/logging"
)

// newTestDatabase opens a migrated sqlite database in a temporary directory.
func newTestDatabase(t *testing.T) *database.Database {
	t.Helper()

	logger := logging.NewLogger(&logging.Config{Level: "error", Format: "text", Output: "discard"})
	db, err := database.New(database.Config{
		Path:              filepath.Join(t.TempDir(), "cms.db"),
		MaxOpenConns:      4,
		MaxIdleConns:      2,
		BusyTimeoutMs:     5000,
		EnableForeignKeys: true,
		EnableWAL:         true,
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

// newSeededDatabase opens a test database populated by DemoSeeder.
func newSeededDatabase(t *testing.T) (*database.Database, *SeedResult) {
	t.Helper()

	db := newTestDatabase(t)
	seed, err := NewDemoSeeder(db).Seed(t.Context())
	require.NoError(t, err)
	return db, seed
}
