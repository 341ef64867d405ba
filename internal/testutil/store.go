// Package testutil builds throwaway stores for package tests.
package testutil

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/starwars-blog-api/internal/infrastructure/persistence"
)

// Logger returns a logrus logger that writes nowhere.
func Logger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// NewStore opens a migrated SQLite store in a temp dir and closes it when
// the test ends.
func NewStore(t *testing.T) *persistence.Store {
	t.Helper()
	store, err := persistence.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(Logger()))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// Str returns a pointer to s.
func Str(s string) *string { return &s }

// ID returns a pointer to id.
func ID(id int64) *int64 { return &id }
