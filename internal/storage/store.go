// Package storage is the local key-value store that holds all client state:
// the user directory, session token, enrollments, progress and UI preferences.
package storage

import (
	"context"
	"errors"
)

// ErrAbort, returned from an UpdateFunc, ends Update without writing.
var ErrAbort = errors.New("storage: update aborted")

// UpdateFunc receives the current value (ok=false when absent) and returns the
// value to store. Returning ErrAbort leaves the key untouched and Update returns nil.
type UpdateFunc func(current string, ok bool) (string, error)

// Store is a string-to-string map with an atomic per-key read-modify-write.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	// Keys lists keys starting with prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Update(ctx context.Context, key string, fn UpdateFunc) error
}
