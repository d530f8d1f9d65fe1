package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (c *Category) UnmarshalJSON(b []byte) error {
	var w struct {
		docID
		Name        string    `json:"name"`
		Description string    `json:"description"`
		CreatedAt   time.Time `json:"createdAt"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*c = Category{ID: w.value(), Name: w.Name, Description: w.Description, CreatedAt: w.CreatedAt}
	return nil
}

var ErrInvalidCategoryRef = errors.New("category reference must be an id or an object")

// CategoryRef points at a category. Name is filled only when the API
// embedded the category document; equality is by ID alone.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

func (r *CategoryRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return ErrInvalidCategoryRef
	}

	switch b[0] {
	case 'n':
		return nil
	case '"':
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*r = CategoryRef{ID: id}
		return nil
	case '{':
		var c Category
		if err := json.Unmarshal(b, &c); err != nil {
			return err
		}
		*r = CategoryRef{ID: c.ID, Name: c.Name}
		return nil
	default:
		return ErrInvalidCategoryRef
	}
}

// Label is the name when known, else the id.
func (r CategoryRef) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}
