// Import command runs one ingestion-and-reload cycle over an uploaded file.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openshelf/stockroom/pkg/types"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Ingest a CSV or XLSX product file into the catalog",
	Long: `Import parses a tabular product file, normalizes each row into the
canonical schema, persists the batch, and reloads the catalog.

Column headers are matched against the alias table (Domain/Name,
Description, Country, Type, Price, ...). Rows with unrecognized or missing
columns are kept with fallback values rather than dropped.

Example:
  stockroom import products.csv
  stockroom import inventory.xlsx --json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	svc, backend, err := attachService()
	if err != nil {
		return err
	}
	defer backend.Detach()

	count, err := svc.ImportFile(args[0])
	if err != nil {
		if errors.Is(err, types.ErrIngestionFailed) {
			return fmt.Errorf("could not process %q: %w", args[0], err)
		}
		return fmt.Errorf("import: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]any{
			"imported": count,
			"total":    len(svc.Snapshot()),
		})
	}
	fmt.Printf("Imported %d product(s); catalog now has %d.\n", count, len(svc.Snapshot()))
	return nil
}
