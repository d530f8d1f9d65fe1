package forms

import (
	"strings"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

const (
	MsgProductNameRequired  = "Product name is required"
	MsgPriceInvalid         = "Price must be a number greater than or equal to 0"
	MsgCategoryNameRequired = "Category name is required"
	MsgProfileRequired      = "Username and email are required"
)

// ProductForm holds product fields as typed at the prompt.
type ProductForm struct {
	Name        string `validate:"required"`
	Description string
	Price       string `validate:"price"`
	Categories  []string
}

var productFormRules = []rule{
	{field: "Name", tag: "required", message: MsgProductNameRequired},
	{field: "Price", tag: "price", message: MsgPriceInvalid},
}

// Input validates the form and converts it. The image is left for the caller.
func (f *ProductForm) Input() (models.ProductInput, error) {
	f.Name = strings.TrimSpace(f.Name)
	if err := check(f, productFormRules); err != nil {
		return models.ProductInput{}, err
	}
	price, _ := ParsePrice(f.Price)

	cats := make([]string, 0, len(f.Categories))
	for _, c := range f.Categories {
		if c = strings.TrimSpace(c); c != "" {
			cats = append(cats, c)
		}
	}

	return models.ProductInput{
		Name:        f.Name,
		Description: strings.TrimSpace(f.Description),
		Price:       price,
		Categories:  cats,
	}, nil
}

type productInput struct {
	Name  string  `validate:"required"`
	Price float64 `validate:"gte=0"`
}

var productInputRules = []rule{
	{field: "Name", tag: "required", message: MsgProductNameRequired},
	{field: "Price", tag: "gte", message: MsgPriceInvalid},
}

// CheckProduct validates an already converted product. NaN prices fail.
func CheckProduct(in models.ProductInput) error {
	return check(&productInput{Name: strings.TrimSpace(in.Name), Price: in.Price}, productInputRules)
}

type categoryInput struct {
	Name string `validate:"required"`
}

var categoryRules = []rule{
	{field: "Name", tag: "required", message: MsgCategoryNameRequired},
}

func CheckCategory(in models.CategoryInput) error {
	return check(&categoryInput{Name: strings.TrimSpace(in.Name)}, categoryRules)
}

type profileInput struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
}

var profileRules = []rule{
	{tag: "required", message: MsgProfileRequired},
	{field: "Email", tag: "email", message: MsgInvalidEmail},
}

func CheckProfile(in models.ProfileInput) error {
	return check(&profileInput{
		Username: strings.TrimSpace(in.Username),
		Email:    strings.TrimSpace(in.Email),
	}, profileRules)
}
