package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/kakeibo-cloud/backend/internal/database/sqlite"
	"github.com/stretchr/testify/require"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// Store returns a store backed by a fresh SQLite database.
//
// The database is closed when the test finishes.
func Store(t *testing.T) *sqlite.Store {
	store, err := sqlite.Connect(TmpFile(t))
	require.Nil(t, err, "Database initialization failed")

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}
