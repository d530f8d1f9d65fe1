package models

// SortKey orders the visible product list.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPriceAsc  SortKey = "price-asc"
	SortByPriceDesc SortKey = "price-desc"
	SortByNewest    SortKey = "newest"
)

// Criteria is what the user typed into the product list filters.
// Zero value means: no filter, sorted by name.
type Criteria struct {
	SearchTerm     string
	CategoryFilter string
	SortKey        SortKey
}
