// Package view computes the visible, ordered subset of the catalog.
//
// Apply is a pure function of the full record set and an explicit Query
// value: it never mutates its input and identical inputs always produce
// identical output. Query state is owned by the caller, not by this
// package.
package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/openshelf/stockroom/pkg/types"
)

// Sortable columns. SortNone leaves the store's scan order untouched.
type SortColumn string

const (
	SortNone    SortColumn = ""
	SortCountry SortColumn = "country"
	SortPrice   SortColumn = "price"
)

// Query is the explicit view state: a free-text filter plus a sort
// directive.
type Query struct {
	Search     string
	Column     SortColumn
	Descending bool
}

// Toggle returns the query that results from selecting a sort column:
// re-selecting the current column flips the direction, switching to a new
// column resets to ascending.
func (q Query) Toggle(col SortColumn) Query {
	if q.Column == col {
		q.Descending = !q.Descending
		return q
	}
	q.Column = col
	q.Descending = false
	return q
}

// countryCollator orders country names with locale-aware comparison rather
// than raw byte order.
var countryCollator = collate.New(language.English, collate.Loose)

// Apply filters and sorts the full record set. A record is visible iff the
// query string is empty or appears case-insensitively in its name,
// description, country, or category. Sorting is stable, so records equal
// under the sort key keep their scan order.
func Apply(products []*types.Product, q Query) []*types.Product {
	visible := filter(products, q.Search)

	switch q.Column {
	case SortCountry:
		sort.SliceStable(visible, func(i, j int) bool {
			cmp := countryCollator.CompareString(visible[i].Country, visible[j].Country)
			if q.Descending {
				return cmp > 0
			}
			return cmp < 0
		})
	case SortPrice:
		sort.SliceStable(visible, func(i, j int) bool {
			if q.Descending {
				return visible[i].Price > visible[j].Price
			}
			return visible[i].Price < visible[j].Price
		})
	}
	return visible
}

// filter returns a fresh slice of the records matching the search string.
// The result set of a non-empty query is always a subset of the empty-query
// result set.
func filter(products []*types.Product, search string) []*types.Product {
	needle := strings.ToLower(strings.TrimSpace(search))

	visible := make([]*types.Product, 0, len(products))
	for _, p := range products {
		if needle == "" || strings.Contains(p.SearchText(), needle) {
			visible = append(visible, p)
		}
	}
	return visible
}
