package types

import (
	"strings"
	"time"
)

// Fallback values substituted by the normalizer when an uploaded row has no
// matching column for a field. Each literal is distinct and descriptive so a
// bad upload is recognizable when browsing the catalog.
const (
	FallbackName        = "Unnamed Product"
	FallbackDescription = "No description available"
	FallbackCountry     = "Unknown Country"
	FallbackCategory    = "Unknown Type"
)

// Product is the canonical catalog record. Every uploaded row, whatever its
// column naming, is normalized into this one shape; there are no per-variant
// record types.
type Product struct {
	ID          string    `json:"id"`          // Store-assigned UUID v7; ephemeral pre-save IDs are replaced on insert.
	Name        string    `json:"name"`        // Primary identifying attribute (name, domain, or code).
	Description string    `json:"description"` // Free-text description.
	Country     string    `json:"country"`     // Categorical geographic attribute.
	Category    string    `json:"category"`    // Categorical classification attribute.
	Price       float64   `json:"price"`       // Always finite and >= 0; unparsable input normalizes to 0.
	Stock       int       `json:"stock"`       // Optional extension field; never negative.
	Features    string    `json:"features"`    // Optional extension field; free text.
	CreatedAt   time.Time `json:"created_at"`  // Maintained by the store, not the client.
	UpdatedAt   time.Time `json:"updated_at"`  // Maintained by the store, not the client.
}

// SearchText returns the lower-cased concatenation of the searchable fields.
// The query view matches free-text queries as substrings of this value.
func (p *Product) SearchText() string {
	return strings.ToLower(strings.Join([]string{
		p.Name, p.Description, p.Country, p.Category,
	}, " "))
}

// HasFallbacks reports whether any string field carries a fallback literal.
// A correctly filled template row ingests with no fallbacks.
func (p *Product) HasFallbacks() bool {
	return p.Name == FallbackName ||
		p.Description == FallbackDescription ||
		p.Country == FallbackCountry ||
		p.Category == FallbackCategory
}

// DecrementStock lowers the stock counter by one, flooring at zero.
// Returns true if the counter changed.
func (p *Product) DecrementStock() bool {
	if p.Stock <= 0 {
		return false
	}
	p.Stock--
	return true
}
