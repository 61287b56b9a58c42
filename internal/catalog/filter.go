package catalog

import "github.com/drstein77/techaurex/internal/models"

// Filter returns the products satisfying every supplied criterion, in input
// order. With no criteria the input slice itself is returned.
func Filter(products []models.Product, c models.Criteria) []models.Product {
	if c.Empty() {
		return products
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matches(p, c) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p models.Product, c models.Criteria) bool {
	if c.Category != "" && p.Category != c.Category {
		return false
	}
	if c.Company != "" && p.Company != c.Company {
		return false
	}
	if c.MinPrice != nil && p.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}
	return true
}
