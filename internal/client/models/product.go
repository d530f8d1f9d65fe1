package models

import (
	"encoding/json"
	"time"
)

type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Price       float64       `json:"price"`
	Categories  []CategoryRef `json:"categories"`
	Image       string        `json:"image,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

func (p *Product) UnmarshalJSON(b []byte) error {
	var w struct {
		docID
		Name        string        `json:"name"`
		Description string        `json:"description"`
		Price       float64       `json:"price"`
		Categories  []CategoryRef `json:"categories"`
		Image       string        `json:"image"`
		CreatedAt   time.Time     `json:"createdAt"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	// null entries decode to refs without an id
	refs := w.Categories[:0]
	for _, r := range w.Categories {
		if r.ID != "" {
			refs = append(refs, r)
		}
	}
	*p = Product{
		ID:          w.value(),
		Name:        w.Name,
		Description: w.Description,
		Price:       w.Price,
		Categories:  refs,
		Image:       w.Image,
		CreatedAt:   w.CreatedAt,
	}
	return nil
}

// CategoryIDs returns the ids of p's categories in order.
func (p Product) CategoryIDs() []string {
	ids := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// InCategory reports whether p references the category with id.
func (p Product) InCategory(id string) bool {
	for _, c := range p.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
