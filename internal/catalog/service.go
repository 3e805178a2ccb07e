// Package catalog orchestrates the ingestion pipeline, the store, and the
// query view into one session: upload -> normalize -> persist -> reload ->
// filter/sort -> purchase.
//
// The service holds the only in-memory copy of the catalog, and that copy
// is always a mirror of the store: after every insert or delete the full
// set is refetched rather than patched locally. On any failure the snapshot
// stays at its last successfully loaded state.
package catalog

import (
	"fmt"
	"sync"

	"github.com/openshelf/stockroom/internal/ingest"
	"github.com/openshelf/stockroom/internal/view"
	"github.com/openshelf/stockroom/pkg/types"
)

// Service drives a single user session over the catalog. Mutating flows are
// serialized under one mutex, so a second upload started before the first
// reload completes simply waits.
type Service struct {
	mu       sync.Mutex
	store    types.Store
	pipeline *ingest.Pipeline
	session  *types.PurchaseSession

	snapshot []*types.Product // last successfully loaded catalog
	query    view.Query
}

// NewService creates a Service over an attached store. The alias table may
// be nil to use the defaults.
func NewService(store types.Store, aliases ingest.AliasTable) *Service {
	return &Service{
		store:    store,
		pipeline: ingest.NewPipeline(aliases),
		session:  types.NewPurchaseSession(),
		snapshot: []*types.Product{},
	}
}

// Load refetches the full catalog from the store. On failure the previous
// snapshot is kept and the store's ErrLoadFailed-wrapped error is returned.
func (s *Service) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reload()
}

// reload refetches the snapshot. Caller must hold s.mu.
func (s *Service) reload() error {
	products, err := s.store.ScanAll()
	if err != nil {
		return err
	}
	s.snapshot = products
	return nil
}

// ImportFile runs one ingestion-and-reload cycle: parse and normalize the
// file, persist the batch, then refetch the catalog. Returns the number of
// records ingested.
//
// An ingestion failure leaves the store untouched. A persistence failure
// may leave the batch partially applied in the store; the reload that
// follows keeps the snapshot honest either way.
func (s *Service) ImportFile(path string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, err := s.pipeline.IngestFile(path)
	if err != nil {
		return 0, err
	}

	if err := s.store.InsertBatch(batch); err != nil {
		// The batch may be partially applied; resync the snapshot before
		// reporting, ignoring a secondary load failure.
		_ = s.reload()
		return 0, err
	}

	if err := s.reload(); err != nil {
		return 0, err
	}
	return len(batch), nil
}

// Delete removes one product by ID and reloads the catalog.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteByID(id); err != nil {
		return err
	}
	return s.reload()
}

// Snapshot returns the last successfully loaded catalog. The returned slice
// is a copy; mutating it does not affect the service.
func (s *Service) Snapshot() []*types.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*types.Product, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// SetSearch updates the free-text filter.
func (s *Service) SetSearch(search string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.Search = search
}

// SortBy selects a sort column with toggle semantics: re-selecting the
// current column flips direction, switching columns resets to ascending.
func (s *Service) SortBy(col view.SortColumn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = s.query.Toggle(col)
}

// SetQuery replaces the whole view state at once.
func (s *Service) SetQuery(q view.Query) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = q
}

// Query returns the current view state.
func (s *Service) Query() view.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Visible computes the ordered visible subset of the snapshot under the
// current query. Recomputed synchronously on every call; no partially
// updated view is ever observable.
func (s *Service) Visible() []*types.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.Apply(s.snapshot, s.query)
}

// Select starts a purchase for the product with the given ID, which must be
// present in the current snapshot.
func (s *Service) Select(id string) (*types.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.snapshot {
		if p.ID == id {
			if err := s.session.Select(p); err != nil {
				return nil, err
			}
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", types.ErrNotFound, id)
}

// Confirm completes the pending purchase and returns the purchased product
// for the caller's notification. The session returns to idle; the store is
// never written (stock decrements live on the snapshot until the next
// reload).
func (s *Service) Confirm() (*types.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.session.Confirm()
	if err != nil {
		return nil, err
	}
	s.session.Cancel()
	return p, nil
}

// Cancel abandons any pending purchase.
func (s *Service) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Cancel()
}
