package storefront

import (
	"strings"

	"jeansfactory/internal/models"
)

// FilterAll is the category filter that matches everything.
const FilterAll = "All"

// Filter narrows the catalog client-side. The selection matches a product
// when it equals its category, its gender, or "Sale" for sale-flagged items;
// a non-empty search term additionally requires a case-insensitive name
// match.
func Filter(products []models.Product, selection, search string) []models.Product {
	search = strings.ToLower(strings.TrimSpace(search))

	var out []models.Product
	for _, p := range products {
		if !matchesSelection(p, selection) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSelection(p models.Product, selection string) bool {
	switch selection {
	case "", FilterAll:
		return true
	case "Sale":
		return p.IsSale
	case "Men", "Women":
		return p.Gender == selection
	default:
		return p.Category == selection
	}
}
