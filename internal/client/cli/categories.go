package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/storeadmin/internal/client/catalog"
	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

var errCategoryNotFound = errors.New("category not found")

// Categories lists categories with the number of products in each, then
// the overall statistics.
func (a *App) Categories(ctx context.Context) error {
	categories, err := a.categories.List(ctx)
	if err != nil {
		return a.fail(ctx, err, "Failed to load categories", false)
	}
	if len(categories) == 0 {
		a.println("No categories available at the moment. Use 'addcategory' to create one.")
		return nil
	}

	products, err := a.products.List(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to load products", "error", err)
		products = nil
	}

	writeCategoryTable(a.out, categories, products, catalog.CountByCategory)

	stats := catalog.Summarize(products, categories)
	a.printf("Total categories: %d  Total products: %d  Avg products per category: %d\n",
		stats.Categories, stats.Products, stats.AveragePerCategory())
	return nil
}

// findCategory resolves a name or id typed by the user to a category.
func (a *App) findCategory(ctx context.Context, args []string) (*models.Category, error) {
	input, err := a.idArg(args, "Category name or ID")
	if err != nil {
		return nil, err
	}

	categories, err := a.categories.List(ctx)
	if err != nil {
		return nil, a.fail(ctx, err, "Failed to load categories", false)
	}

	id, ok := catalog.ResolveCategory(categories, input)
	if !ok || id == "" {
		a.println("Error: Category not found")
		return nil, errCategoryNotFound
	}
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], nil
		}
	}
	return nil, errCategoryNotFound
}

func (a *App) promptCategory(current *models.Category) (models.CategoryInput, error) {
	var cur models.Category
	if current != nil {
		cur = *current
	}
	name, err := GetTextWithDefault(a.reader, "Name", cur.Name, a.out)
	if err != nil {
		return models.CategoryInput{}, err
	}
	description, err := GetTextWithDefault(a.reader, "Description", cur.Description, a.out)
	if err != nil {
		return models.CategoryInput{}, err
	}
	return models.CategoryInput{Name: name, Description: description}, nil
}

func (a *App) AddCategory(ctx context.Context) error {
	in, err := a.promptCategory(nil)
	if err != nil {
		return err
	}

	c, err := a.categories.Create(ctx, in)
	if err != nil {
		return a.fail(ctx, err, "Failed to save category", true)
	}
	a.printf("Category %q created (id %s)\n", c.Name, c.ID)
	return nil
}

func (a *App) EditCategory(ctx context.Context, args []string) error {
	current, err := a.findCategory(ctx, args)
	if err != nil {
		return err
	}

	in, err := a.promptCategory(current)
	if err != nil {
		return err
	}

	c, err := a.categories.Update(ctx, current.ID, in)
	if err != nil {
		return a.fail(ctx, err, "Failed to save category", true)
	}
	a.printf("Category %q updated\n", c.Name)
	return nil
}

func (a *App) DeleteCategory(ctx context.Context, args []string) error {
	c, err := a.findCategory(ctx, args)
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, "Are you sure you want to delete this category?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled")
		return nil
	}

	if err := a.categories.Delete(ctx, c.ID); err != nil {
		return a.fail(ctx, err, "Failed to delete category", false)
	}
	a.printf("Category %q deleted\n", c.Name)
	return a.Categories(ctx)
}
