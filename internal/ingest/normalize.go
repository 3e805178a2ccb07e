package ingest

import (
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/openshelf/stockroom/pkg/types"
)

// Normalizer converts raw rows into canonical products using an alias table.
type Normalizer struct {
	aliases AliasTable
}

// NewNormalizer returns a Normalizer using the given alias table, or the
// default table when aliases is nil.
func NewNormalizer(aliases AliasTable) *Normalizer {
	if aliases == nil {
		aliases = DefaultAliases()
	}
	return &Normalizer{aliases: aliases}
}

// Normalize produces exactly one product from a raw row. It is a total
// function: missing fields take their fallback literals, an unparsable
// price becomes 0, and no input causes the row to be rejected.
//
// The assigned ID is a UUID v7, unique within a batch of any size even when
// rows are processed inside the same clock tick. It is ephemeral: the store
// replaces it on insert.
func (n *Normalizer) Normalize(row Row) *types.Product {
	return &types.Product{
		ID:          ephemeralID(),
		Name:        n.stringField(row, FieldName, types.FallbackName),
		Description: n.stringField(row, FieldDescription, types.FallbackDescription),
		Country:     n.stringField(row, FieldCountry, types.FallbackCountry),
		Category:    n.stringField(row, FieldCategory, types.FallbackCategory),
		Price:       n.priceField(row),
		Stock:       n.stockField(row),
		Features:    n.featuresField(row),
	}
}

// stringField resolves a canonical string field, substituting the field's
// fixed fallback literal when no alias matches.
func (n *Normalizer) stringField(row Row, field, fallback string) string {
	if v, ok := n.aliases.Resolve(row, field); ok {
		return v
	}
	return fallback
}

// priceField resolves and coerces the price. Coercion failures (absent,
// non-numeric, NaN, infinite) and negative values all normalize to 0; a bad
// price never rejects the row.
func (n *Normalizer) priceField(row Row) float64 {
	raw, ok := n.aliases.Resolve(row, FieldPrice)
	if !ok {
		return 0
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0
	}
	return price
}

// stockField resolves the optional stock counter, flooring at 0.
func (n *Normalizer) stockField(row Row) int {
	raw, ok := n.aliases.Resolve(row, FieldStock)
	if !ok {
		return 0
	}
	stock, err := strconv.Atoi(raw)
	if err != nil || stock < 0 {
		return 0
	}
	return stock
}

// featuresField resolves the optional features text; absent means empty,
// not a fallback literal.
func (n *Normalizer) featuresField(row Row) string {
	v, _ := n.aliases.Resolve(row, FieldFeatures)
	return v
}

// ephemeralID generates a UUID v7 for pre-save rows, falling back to v4 if
// v7 generation fails.
func ephemeralID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
