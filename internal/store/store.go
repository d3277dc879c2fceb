package store

import "errors"

var (
	// ErrNotFound means no document exists under the key.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable means the backing store could not serve the read or
	// write. Callers treat this as "analytics temporarily unavailable",
	// never as data loss.
	ErrUnavailable = errors.New("store unavailable")
)

// Blobs is a key-addressed, synchronous read/write blob store. Each key
// holds one JSON document; Put replaces the whole document.
type Blobs interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}
