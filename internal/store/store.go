// Package store is the persistence gateway: Postgres for production and
// an in-memory implementation for tests and local development. Both
// satisfy inventory.Store, assign ids on insert, and own the canonical
// ordering (items by name ascending, export records newest first).
// Nothing above this package assumes transactionality across calls.
package store

import (
	"errors"

	"stockroom/internal/inventory"
)

// ErrNotFound is returned when an item or export record does not exist.
var ErrNotFound = errors.New("item not found")

var (
	_ inventory.Store = (*Postgres)(nil)
	_ inventory.Store = (*Memory)(nil)
)
