// Product table operations: batch insert, full scan, delete-by-id. The
// store has no update-in-place operation; mutations are inserts and deletes
// followed by a caller-side full reload.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/openshelf/stockroom/pkg/types"
)

// timeLayout is a fixed-width RFC3339 variant. RFC3339Nano drops trailing
// zeros, which breaks lexicographic ORDER BY on the stored strings.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// InsertBatch persists every product in the batch. The store assigns each
// record a fresh UUID v7 and its created_at/updated_at timestamps,
// replacing any ephemeral client-side ID.
//
// Records are inserted one by one with no surrounding transaction: a
// failure part way through leaves the earlier records persisted and returns
// ErrPersistenceFailed. Callers treat the batch as atomic from the user's
// side by reporting one error and reloading.
func (b *Backend) InsertBatch(products []*types.Product) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	for _, p := range products {
		now := time.Now().UTC()
		p.ID = generateID()
		p.CreatedAt = now
		p.UpdatedAt = now

		_, err := b.db.Exec(
			`INSERT INTO products
			   (id, name, description, country, category, price, stock, features, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Description, p.Country, p.Category,
			p.Price, p.Stock, p.Features,
			now.Format(timeLayout), now.Format(timeLayout),
		)
		if err != nil {
			return fmt.Errorf("%w: inserting product %q: %v", types.ErrPersistenceFailed, p.Name, err)
		}
	}
	return nil
}

// ScanAll returns every persisted product ordered by creation time then ID.
// The ordering is stable across calls; presentation order is the query
// view's responsibility.
func (b *Backend) ScanAll() ([]*types.Product, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.Query(
		`SELECT id, name, description, country, category, price, stock, features, created_at, updated_at
		   FROM products
		  ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying products: %v", types.ErrLoadFailed, err)
	}
	defer rows.Close()

	products := []*types.Product{}
	for rows.Next() {
		p, err := hydrateProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: hydrating product: %v", types.ErrLoadFailed, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating products: %v", types.ErrLoadFailed, err)
	}
	return products, nil
}

// DeleteByID removes one product. Returns ErrNotFound if no product has the
// given ID; the caller reloads the catalog afterward either way.
func (b *Backend) DeleteByID(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	if id == "" {
		return types.ErrInvalidID
	}

	res, err := b.db.Exec("DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%w: deleting product %s: %v", types.ErrPersistenceFailed, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking delete result: %v", types.ErrPersistenceFailed, err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// hydrateProduct converts the current row of a product query into a
// *types.Product.
func hydrateProduct(rows *sql.Rows) (*types.Product, error) {
	var p types.Product
	var createdAt, updatedAt string
	if err := rows.Scan(
		&p.ID, &p.Name, &p.Description, &p.Country, &p.Category,
		&p.Price, &p.Stock, &p.Features, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	p.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	p.UpdatedAt, err = time.Parse(timeLayout, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}
