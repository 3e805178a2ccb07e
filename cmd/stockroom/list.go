// List command shows the visible catalog under a search filter and sort
// directive.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openshelf/stockroom/internal/view"
)

var (
	listSearch string
	listSort   string
	listDesc   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog products",
	Long: `List displays the catalog, optionally filtered by a free-text search
and sorted by country or price.

The search matches case-insensitively against name, description, country,
and type.

Example:
  stockroom list
  stockroom list --search germany
  stockroom list --sort price --desc
  stockroom list --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "free-text filter")
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort column (country, price)")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "sort descending")
}

func runList(cmd *cobra.Command, args []string) error {
	svc, backend, err := attachService()
	if err != nil {
		return err
	}
	defer backend.Detach()

	q := view.Query{Search: listSearch, Descending: listDesc}
	switch listSort {
	case "":
		q.Column = view.SortNone
	case "country":
		q.Column = view.SortCountry
	case "price":
		q.Column = view.SortPrice
	default:
		return fmt.Errorf("unknown sort column %q (valid: country, price)", listSort)
	}
	svc.SetQuery(q)

	visible := svc.Visible()
	if flagJSON {
		return printJSON(visible)
	}
	printProductTable(visible)
	return nil
}
