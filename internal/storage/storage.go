// Package storage defines what the record store implementations have in
// common. The store is selected once at process start: the in-memory seed
// set when no Supabase credentials are configured, the remote table
// otherwise. It is never re-selected at runtime.
package storage

import "errors"

// ErrNotFound is returned when no record exists for a valid identifier.
var ErrNotFound = errors.New("marathon not found")
