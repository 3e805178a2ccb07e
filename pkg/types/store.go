package types

import "errors"

// Store is the catalog's persistence boundary. Callers attach to a backend,
// run batch and scan operations, and detach when done. The in-memory catalog
// is always rebuilt from ScanAll after a mutation (reload-on-mutation); the
// store never pushes updates to callers.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Creates the data directory if it does not exist.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, operations return ErrStoreDetached.
	Detach() error

	// InsertBatch persists every product in the batch, assigning each a new
	// ID and timestamps. Inserts are applied per record with no cross-record
	// transaction: on ErrPersistenceFailed the batch may be partially
	// applied, and the caller recovers by reloading with ScanAll.
	InsertBatch(products []*Product) error

	// ScanAll returns every persisted product. Order is stable across calls
	// (creation time, then ID) but presentation order is the query view's
	// concern, not the store's.
	ScanAll() ([]*Product, error)

	// DeleteByID removes one product. Returns ErrNotFound if no product has
	// the given ID.
	DeleteByID(id string) error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Operation failure taxonomy. Every failure reaching the CLI boundary wraps
// one of these; none are fatal, and on any of them the displayed catalog
// stays at its last good snapshot.
var (
	ErrIngestionFailed   = errors.New("ingestion failed")
	ErrPersistenceFailed = errors.New("persistence failed")
	ErrLoadFailed        = errors.New("load failed")
	ErrNotFound          = errors.New("product not found")
	ErrInvalidID         = errors.New("invalid product ID")
)
