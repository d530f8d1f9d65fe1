// Package catalog derives what the product views show from the last fetched
// product and category lists. Everything here is a pure function of its
// inputs: no I/O, no shared state.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultFeatured is how many products the home view shows.
const DefaultFeatured = 6

// ParseSortKey maps user input to a SortKey. Unknown or empty input yields
// SortByName. The price-low/price-high spellings are accepted as aliases.
func ParseSortKey(s string) models.SortKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "price-asc", "price-low":
		return models.SortByPriceAsc
	case "price-desc", "price-high":
		return models.SortByPriceDesc
	case "newest":
		return models.SortByNewest
	default:
		return models.SortByName
	}
}

// Apply filters and orders products for display, collating names as English.
// The input slice is not modified.
func Apply(products []models.Product, c models.Criteria) []models.Product {
	return ApplyLocale(products, c, language.English)
}

// ApplyLocale is Apply with an explicit collation locale for the name sort.
//
// A product is kept when the search term is empty or is a case-insensitive
// substring of its name or description, and the category filter is empty or
// among its category ids. The kept products are then stably sorted by the
// criteria's sort key.
func ApplyLocale(products []models.Product, c models.Criteria, tag language.Tag) []models.Product {
	term := strings.ToLower(c.SearchTerm)

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesSearch(p, term) && matchesCategory(p, c.CategoryFilter) {
			out = append(out, p)
		}
	}

	sortProducts(out, ParseSortKey(string(c.SortKey)), tag)
	return out
}

func matchesSearch(p models.Product, lowerTerm string) bool {
	if lowerTerm == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), lowerTerm) ||
		strings.Contains(strings.ToLower(p.Description), lowerTerm)
}

func matchesCategory(p models.Product, categoryID string) bool {
	return categoryID == "" || p.InCategory(categoryID)
}

func sortProducts(ps []models.Product, key models.SortKey, tag language.Tag) {
	switch key {
	case models.SortByPriceAsc:
		slices.SortStableFunc(ps, func(a, b models.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case models.SortByPriceDesc:
		slices.SortStableFunc(ps, func(a, b models.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case models.SortByNewest:
		slices.SortStableFunc(ps, func(a, b models.Product) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	default:
		// collators keep internal buffers, so one per call
		col := collate.New(tag)
		slices.SortStableFunc(ps, func(a, b models.Product) int {
			return col.CompareString(a.Name, b.Name)
		})
	}
}
