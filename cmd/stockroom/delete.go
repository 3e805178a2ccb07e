// Delete command removes a product by ID.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openshelf/stockroom/pkg/types"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product by ID",
	Long: `Delete removes one product from the catalog store and reloads the
catalog.

Example:
  stockroom delete 0190cafe-1234-7abc-8def-0123456789ab
  stockroom delete 0190cafe-1234-7abc-8def-0123456789ab --json`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	svc, backend, err := attachService()
	if err != nil {
		return err
	}
	defer backend.Detach()

	if err := svc.Delete(id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("product %q not found", id)
		}
		return fmt.Errorf("delete product: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{
			"deleted": id,
			"status":  "success",
		})
	}
	fmt.Printf("Deleted product: %s\n", id)
	return nil
}
