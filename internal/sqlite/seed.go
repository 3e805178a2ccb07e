// Demonstration content for fresh installs. Seeded products go through the
// normal insert path and are indistinguishable from uploaded ones.
package sqlite

import "github.com/openshelf/stockroom/pkg/types"

// demoProducts returns the static demonstration catalog.
func demoProducts() []*types.Product {
	return []*types.Product{
		{
			Name:        "analytics.example.com",
			Description: "Web analytics starter dataset with sample traffic reports",
			Country:     "United States",
			Category:    "Technology",
			Price:       2500,
			Stock:       5,
		},
		{
			Name:        "shop.example.de",
			Description: "Demo storefront inventory with seasonal pricing",
			Country:     "Germany",
			Category:    "Retail",
			Price:       1800,
			Stock:       12,
		},
		{
			Name:        "research.example.ca",
			Description: "Anonymized survey results for workshop exercises",
			Country:     "Canada",
			Category:    "Education",
			Price:       4500,
			Stock:       3,
		},
	}
}

// Seed inserts the demonstration products and returns how many were added.
// Seeding an already-populated catalog adds the rows again; it is a demo
// convenience, not an idempotent migration.
func (b *Backend) Seed() (int, error) {
	products := demoProducts()
	if err := b.InsertBatch(products); err != nil {
		return 0, err
	}
	return len(products), nil
}
