// Export command writes a JSONL snapshot of the catalog.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export the catalog as a JSONL snapshot",
	Long: `Export writes every persisted product to a JSONL file, one JSON object
per line, using an atomic write (temp file, fsync, rename).

Example:
  stockroom export catalog.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	if err := backend.ExportJSONL(args[0]); err != nil {
		return fmt.Errorf("export catalog: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"exported": args[0]})
	}
	fmt.Printf("Catalog exported to %s\n", args[0])
	return nil
}
