package catalog

import (
	"math"
	"strings"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

// Stats is what the dashboard shows.
type Stats struct {
	Products   int
	Categories int
}

// AveragePerCategory is products per category, rounded half up. Zero
// categories gives zero.
func (s Stats) AveragePerCategory() int {
	if s.Categories == 0 {
		return 0
	}
	return int(math.Round(float64(s.Products) / float64(s.Categories)))
}

func Summarize(products []models.Product, categories []models.Category) Stats {
	return Stats{Products: len(products), Categories: len(categories)}
}

// CountByCategory counts products referencing categoryID.
func CountByCategory(products []models.Product, categoryID string) int {
	n := 0
	for _, p := range products {
		if p.InCategory(categoryID) {
			n++
		}
	}
	return n
}

// Featured returns at most n products from the head of the list, in the
// order the API returned them. n <= 0 means DefaultFeatured.
func Featured(products []models.Product, n int) []models.Product {
	if n <= 0 {
		n = DefaultFeatured
	}
	if len(products) < n {
		n = len(products)
	}
	return products[:n:n]
}

// ResolveCategory maps user input to a category id: an exact id match wins,
// then a case-insensitive name match. Empty input resolves to "" (no filter).
func ResolveCategory(categories []models.Category, input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", true
	}
	for _, c := range categories {
		if c.ID == input {
			return c.ID, true
		}
	}
	for _, c := range categories {
		if strings.EqualFold(c.Name, input) {
			return c.ID, true
		}
	}
	return "", false
}
