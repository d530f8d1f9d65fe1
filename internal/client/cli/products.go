package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storeadmin/internal/client/catalog"
	"github.com/dmitrijs2005/storeadmin/internal/client/client"
	"github.com/dmitrijs2005/storeadmin/internal/client/forms"
	"github.com/dmitrijs2005/storeadmin/internal/client/media"
	"github.com/dmitrijs2005/storeadmin/internal/client/models"
	"github.com/dmitrijs2005/storeadmin/internal/filex"
)

// parseCriteria reads "products" arguments: -q search, -c category (name or
// id), -s sort key. Plain words anywhere in args are appended to the search
// term.
func parseCriteria(args []string) (search, category string, sortKey models.SortKey, err error) {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	q := fs.String("q", "", "search term")
	c := fs.String("c", "", "category name or id")
	s := fs.String("s", string(models.SortByName), "sort key")
	// flag stops at the first plain word, so resume parsing after each one.
	var words []string
	for {
		if err := fs.Parse(args); err != nil {
			return "", "", "", err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		words = append(words, rest[0])
		args = rest[1:]
	}

	search = strings.TrimSpace(strings.Join(append([]string{*q}, words...), " "))
	return search, *c, catalog.ParseSortKey(*s), nil
}

// loadCategories is best effort: without categories products still list,
// showing category ids.
func (a *App) loadCategories(ctx context.Context) []models.Category {
	cs, err := a.categories.List(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to load categories", "error", err)
		return nil
	}
	return cs
}

// Products lists products after applying search, category filter and sort.
func (a *App) Products(ctx context.Context, args []string) error {
	search, category, sortKey, err := parseCriteria(args)
	if err != nil {
		a.printf("Error: %s\n", err)
		return err
	}

	products, err := a.products.List(ctx)
	if err != nil {
		return a.fail(ctx, err, "Failed to load products", false)
	}
	categories := a.loadCategories(ctx)

	categoryID, ok := catalog.ResolveCategory(categories, category)
	if !ok {
		// Unknown names filter on the raw input; nothing will match.
		categoryID = strings.TrimSpace(category)
	}

	visible := catalog.Apply(products, models.Criteria{
		SearchTerm:     search,
		CategoryFilter: categoryID,
		SortKey:        sortKey,
	})

	if len(visible) == 0 {
		if search != "" || categoryID != "" {
			a.println("No products match your search criteria.")
		} else {
			a.println("No products available at the moment.")
		}
		return nil
	}

	writeProductTable(a.out, visible, categories)
	a.printf("Showing %d of %d products\n", len(visible), len(products))
	return nil
}

// Featured shows the first products the API returns, as the home page does.
func (a *App) Featured(ctx context.Context) error {
	products, err := a.products.List(ctx)
	if err != nil {
		return a.fail(ctx, err, "Failed to load featured products", false)
	}

	featured := catalog.Featured(products, catalog.DefaultFeatured)
	if len(featured) == 0 {
		a.println("No products available yet. Use 'addproduct' to create one.")
		return nil
	}
	writeProductTable(a.out, featured, a.loadCategories(ctx))
	return nil
}

func (a *App) idArg(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Product ID")
	if err != nil {
		return err
	}

	p, err := a.products.Get(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return a.fail(ctx, err, "Product not found", false)
		}
		return a.fail(ctx, err, "Failed to load product details", false)
	}

	a.printf("%s\n", p.Name)
	a.printf("  ID:          %s\n", p.ID)
	a.printf("  Price:       %s\n", formatPrice(p.Price))
	a.printf("  Categories:  %s\n", categoryLabels(p.Categories, a.loadCategories(ctx)))
	a.printf("  Added:       %s\n", formatDate(p.CreatedAt))
	a.printf("  Image:       %s\n", a.media.Resolve(ctx, p.Image, media.ProductPlaceholder))
	if p.Description != "" {
		a.printf("\n%s\n", p.Description)
	}
	return nil
}

func (a *App) AddProduct(ctx context.Context) error {
	in, err := a.promptProduct(ctx, nil)
	if err != nil {
		return a.fail(ctx, err, "Failed to save product", true)
	}

	p, err := a.products.Create(ctx, in)
	if err != nil {
		return a.fail(ctx, err, "Failed to save product", true)
	}
	a.printf("Product %q created (id %s)\n", p.Name, p.ID)
	return nil
}

func (a *App) EditProduct(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Product ID")
	if err != nil {
		return err
	}

	current, err := a.products.Get(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return a.fail(ctx, err, "Product not found", false)
		}
		return a.fail(ctx, err, "Failed to load product details", false)
	}

	in, err := a.promptProduct(ctx, current)
	if err != nil {
		return a.fail(ctx, err, "Failed to save product", true)
	}

	p, err := a.products.Update(ctx, id, in)
	if err != nil {
		return a.fail(ctx, err, "Failed to save product", true)
	}
	a.printf("Product %q updated\n", p.Name)
	return nil
}

func (a *App) DeleteProduct(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Product ID")
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, "Are you sure you want to delete this product?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled")
		return nil
	}

	if err := a.products.Delete(ctx, id); err != nil {
		return a.fail(ctx, err, "Failed to delete product", false)
	}
	a.println("Product deleted")
	return a.Products(ctx, nil)
}

// promptProduct collects product fields. With current set, empty answers
// keep the current values and "-" clears the category list.
func (a *App) promptProduct(ctx context.Context, current *models.Product) (models.ProductInput, error) {
	var cur models.Product
	if current != nil {
		cur = *current
	}
	curPrice := ""
	if current != nil {
		curPrice = strconv.FormatFloat(cur.Price, 'f', -1, 64)
	}

	name, err := GetTextWithDefault(a.reader, "Name", cur.Name, a.out)
	if err != nil {
		return models.ProductInput{}, err
	}
	description, err := GetTextWithDefault(a.reader, "Description", cur.Description, a.out)
	if err != nil {
		return models.ProductInput{}, err
	}
	price, err := GetTextWithDefault(a.reader, "Price", curPrice, a.out)
	if err != nil {
		return models.ProductInput{}, err
	}

	categories := a.loadCategories(ctx)
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	prompt := "Categories (comma separated names or ids"
	if len(names) > 0 {
		prompt += "; available: " + strings.Join(names, ", ")
	}
	prompt += ")"
	if current != nil {
		prompt += fmt.Sprintf(" [%s]", categoryLabels(cur.Categories, categories))
	}
	rawCats, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return models.ProductInput{}, err
	}

	var catIDs []string
	switch {
	case rawCats == "-":
	case rawCats == "" && current != nil:
		catIDs = cur.CategoryIDs()
	default:
		for _, item := range SplitList(rawCats) {
			id, ok := catalog.ResolveCategory(categories, item)
			if !ok {
				return models.ProductInput{}, &forms.ValidationError{Field: "Categories", Message: "Unknown category: " + item}
			}
			catIDs = append(catIDs, id)
		}
	}

	imagePath, err := getSimpleText(a.reader, "Image file (empty to skip)", a.out)
	if err != nil {
		return models.ProductInput{}, err
	}

	f := forms.ProductForm{Name: name, Description: description, Price: price, Categories: catIDs}
	in, err := f.Input()
	if err != nil {
		return models.ProductInput{}, err
	}

	if imagePath != "" {
		upload, err := loadUpload(imagePath)
		if err != nil {
			return models.ProductInput{}, err
		}
		in.Image = upload
	}
	return in, nil
}

// loadUpload reads an image for upload. Problems are reported as validation
// errors so the user sees the reason.
func loadUpload(path string) (*models.Upload, error) {
	f, err := filex.ReadImage(path)
	if err != nil {
		msg := "Cannot read image file"
		if errors.Is(err, filex.ErrNotImage) {
			msg = "Please choose an image file"
		}
		return nil, &forms.ValidationError{Field: "Image", Message: msg}
	}
	return &models.Upload{FileName: f.Name, ContentType: f.ContentType, Data: f.Data}, nil
}
