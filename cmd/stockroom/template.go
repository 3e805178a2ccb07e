// Template command exports a one-row example upload file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openshelf/stockroom/internal/ingest"
)

var templateCmd = &cobra.Command{
	Use:   "template [path]",
	Short: "Write an example upload file with the canonical column headers",
	Long: `Template writes a file containing one example row with every canonical
column header correctly named, for filling in and re-importing. The format
follows the extension: .xlsx produces a workbook, anything else CSV.

The default output path is product_template.csv.

Example:
  stockroom template
  stockroom template catalog_template.xlsx`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplate,
}

func runTemplate(cmd *cobra.Command, args []string) error {
	path := "product_template.csv"
	if len(args) == 1 {
		path = args[0]
	}

	if err := ingest.WriteTemplate(path); err != nil {
		return fmt.Errorf("write template: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"template": path})
	}
	fmt.Printf("Template written to %s\n", path)
	return nil
}
