// Package storage provides durable key/value stores for widget state.
// Values are opaque strings; callers encode them (JSON in practice).
package storage

import (
	"errors"
	"fmt"
	"strings"
)

// Backend names accepted by Open
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

var (
	// ErrUnknownBackend is returned by Open for an unrecognised backend name
	ErrUnknownBackend = errors.New("unknown storage backend")
	// ErrInvalidKey is returned for keys that cannot be stored
	ErrInvalidKey = errors.New("invalid storage key")
)

// Store is a synchronous string key/value store
type Store interface {
	// GetItem returns the value for key and whether it was present
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
	Close() error
}

// Open creates a store for the named backend. path is a directory for the
// file backend and a database file for the sqlite backend; memory ignores it.
func Open(backend, path string) (Store, error) {
	switch NormalizeBackend(backend) {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile:
		return NewFileStore(path)
	case BackendSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// NormalizeBackend lowercases and trims a backend name. An empty name
// selects the file backend.
func NormalizeBackend(backend string) string {
	name := strings.ToLower(strings.TrimSpace(backend))
	if name == "" {
		return BackendFile
	}
	return name
}

func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
