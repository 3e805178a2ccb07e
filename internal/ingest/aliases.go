package ingest

import "strings"

// Canonical field names used by the alias table and the normalizer.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldCountry     = "country"
	FieldCategory    = "category"
	FieldPrice       = "price"
	FieldStock       = "stock"
	FieldFeatures    = "features"
)

// Row is one raw uploaded row: an arbitrary string-keyed mapping with
// unpredictable header naming and casing.
type Row map[string]string

// AliasTable maps each canonical field to an ordered list of accepted
// column headers. Matching is case-sensitive and the first alias carrying a
// non-empty value wins, so earlier aliases take priority over later ones.
type AliasTable map[string][]string

// DefaultAliases returns the alias table for the canonical product schema.
// The domain-based headers come first; the BIN-based headers of the legacy
// catalog variant are carried as lower-priority aliases of the same fields
// rather than as a second schema.
func DefaultAliases() AliasTable {
	return AliasTable{
		FieldName:        {"Domain", "domain", "Name", "name", "BIN", "bin"},
		FieldDescription: {"Description", "description", "Details", "details"},
		FieldCountry:     {"Country", "country", "City", "city"},
		FieldCategory:    {"Type", "type", "Category", "category"},
		FieldPrice:       {"Price", "price", "Cost", "cost"},
		FieldStock:       {"Stock", "stock", "Quantity", "quantity"},
		FieldFeatures:    {"Features", "features"},
	}
}

// Resolve returns the value of the first alias for field that is present in
// the row with a non-empty value, and whether one was found. It never
// errors and has no side effects.
func (a AliasTable) Resolve(row Row, field string) (string, bool) {
	for _, alias := range a[field] {
		if v, ok := row[alias]; ok {
			if v = strings.TrimSpace(v); v != "" {
				return v, true
			}
		}
	}
	return "", false
}
