package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

func formatPrice(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02")
}

// categoryLabels names each ref, preferring the embedded name, then the
// name from categories, then the id.
func categoryLabels(refs []models.CategoryRef, categories []models.Category) string {
	if len(refs) == 0 {
		return "No categories"
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	labels := make([]string, 0, len(refs))
	for _, r := range refs {
		if r.Name == "" && names[r.ID] != "" {
			r.Name = names[r.ID]
		}
		labels = append(labels, r.Label())
	}
	return strings.Join(labels, ", ")
}

func writeProductTable(w io.Writer, products []models.Product, categories []models.Category) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tCATEGORIES")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, formatPrice(p.Price), categoryLabels(p.Categories, categories))
	}
	_ = tw.Flush()
}

func writeCategoryTable(w io.Writer, categories []models.Category, products []models.Product, count func([]models.Product, string) int) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRODUCTS\tDESCRIPTION")
	for _, c := range categories {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", c.ID, c.Name, count(products, c.ID), c.Description)
	}
	_ = tw.Flush()
}
