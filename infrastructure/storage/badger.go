package storage

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// OpenBadger opens (or creates) the message database at path.
func OpenBadger(path string, log *slog.Logger) (*badger.DB, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, fmt.Errorf("database opening failed: %w", err)
	}
	log.Info("BadgerDB opened", "path", path)
	return db, nil
}

// OpenBadgerReadOnly opens an existing database without taking the write lock,
// so it can be inspected while the server runs.
func OpenBadgerReadOnly(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
