// Package store provides key/value persistence of JSON-serializable records.
// It is the durable-storage boundary of the application: collections, the
// session record, everything that must survive a restart goes through a Store.
package store

import "errors"

var (
	// ErrNotFound is returned by Get when the key has never been written.
	ErrNotFound = errors.New("store: key not found")
	// ErrQuotaExceeded is returned by Put when a value exceeds the backend's
	// capacity, e.g. an oversized image payload. The write is aborted whole.
	ErrQuotaExceeded = errors.New("store: value exceeds storage quota")
)

// Store is a synchronous key/value store of JSON documents. Every backend
// round-trips values through encoding/json so callers observe identical
// coercion behavior regardless of where the bytes land.
type Store interface {
	// Get decodes the value at key into v.
	Get(key string, v any) error
	// Put encodes v and durably writes it at key before returning.
	Put(key string, v any) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	// Keys returns all keys currently present, in unspecified order.
	Keys() ([]string, error)
}
