package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/stockroom/pkg/types"
)

func sampleCatalog() []*types.Product {
	return []*types.Product{
		{ID: "1", Name: "analytics.example.com", Description: "Customer analytics", Country: "United States", Category: "Technology", Price: 2500},
		{ID: "2", Name: "shop.example.de", Description: "E-commerce transactions", Country: "Germany", Category: "Retail", Price: 1800},
		{ID: "3", Name: "research.example.ca", Description: "Survey research", Country: "Canada", Category: "Education", Price: 4500},
		{ID: "4", Name: "media.example.fr", Description: "Media archive", Country: "France", Category: "Media", Price: 1800},
	}
}

func TestApplyFilter(t *testing.T) {
	catalog := sampleCatalog()

	tests := []struct {
		name    string
		search  string
		wantIDs []string
	}{
		{name: "empty query shows everything", search: "", wantIDs: []string{"1", "2", "3", "4"}},
		{name: "match on name", search: "analytics.example", wantIDs: []string{"1"}},
		{name: "match on description", search: "transactions", wantIDs: []string{"2"}},
		{name: "match on country", search: "germany", wantIDs: []string{"2"}},
		{name: "match on category", search: "Media", wantIDs: []string{"4"}},
		{name: "case insensitive", search: "CANADA", wantIDs: []string{"3"}},
		{name: "no match", search: "zzz", wantIDs: []string{}},
		{name: "whitespace-only query shows everything", search: "   ", wantIDs: []string{"1", "2", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(catalog, Query{Search: tt.search})
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterIsMonotonic(t *testing.T) {
	catalog := sampleCatalog()
	all := Apply(catalog, Query{})

	universe := make(map[string]bool, len(all))
	for _, p := range all {
		universe[p.ID] = true
	}

	for _, search := range []string{"example", "Germany", "archive", "zzz", "e"} {
		for _, p := range Apply(catalog, Query{Search: search}) {
			assert.True(t, universe[p.ID],
				"filtered result %s not in empty-query result set", p.ID)
		}
	}
}

func TestApplySortPrice(t *testing.T) {
	catalog := sampleCatalog()

	asc := Apply(catalog, Query{Column: SortPrice})
	require.Len(t, asc, 4)
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
	}

	desc := Apply(catalog, Query{Column: SortPrice, Descending: true})
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].Price, desc[i].Price)
	}

	// Stable sort: the two 1800 records keep scan order in both directions.
	assert.Equal(t, "2", asc[1].ID)
	assert.Equal(t, "4", asc[2].ID)
}

func TestApplySortPriceReversal(t *testing.T) {
	// With no ties, descending is exactly the reverse of ascending.
	catalog := []*types.Product{
		{ID: "a", Price: 10},
		{ID: "b", Price: 30},
		{ID: "c", Price: 20},
	}

	asc := Apply(catalog, Query{Column: SortPrice})
	desc := Apply(catalog, Query{Column: SortPrice, Descending: true})

	require.Len(t, asc, 3)
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestApplySortCountry(t *testing.T) {
	catalog := sampleCatalog()

	got := Apply(catalog, Query{Column: SortCountry})
	countries := make([]string, len(got))
	for i, p := range got {
		countries[i] = p.Country
	}
	assert.Equal(t, []string{"Canada", "France", "Germany", "United States"}, countries)
}

func TestApplyIsPure(t *testing.T) {
	catalog := sampleCatalog()
	originalOrder := make([]string, len(catalog))
	for i, p := range catalog {
		originalOrder[i] = p.ID
	}

	q := Query{Search: "example", Column: SortPrice, Descending: true}
	first := Apply(catalog, q)
	second := Apply(catalog, q)

	// Idempotent: identical inputs, identical outputs.
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}

	// Input order untouched.
	for i, p := range catalog {
		assert.Equal(t, originalOrder[i], p.ID)
	}
}

func TestQueryToggle(t *testing.T) {
	q := Query{}

	q = q.Toggle(SortPrice)
	assert.Equal(t, SortPrice, q.Column)
	assert.False(t, q.Descending)

	q = q.Toggle(SortPrice)
	assert.True(t, q.Descending, "re-selecting the same column flips direction")

	q = q.Toggle(SortCountry)
	assert.Equal(t, SortCountry, q.Column)
	assert.False(t, q.Descending, "switching columns resets to ascending")
}
