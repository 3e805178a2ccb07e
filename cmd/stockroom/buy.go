// Buy command drives the purchase session: select a product, then confirm
// or cancel. No money moves; a confirmed purchase only produces a
// notification and an in-memory stock decrement.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openshelf/stockroom/pkg/types"
)

var buyCancel bool

var buyCmd = &cobra.Command{
	Use:   "buy <id>",
	Short: "Purchase a product by ID",
	Long: `Buy selects a product and completes the purchase workflow. With
--cancel the selection is abandoned instead of confirmed, leaving the
session idle.

Example:
  stockroom buy 0190cafe-1234-7abc-8def-0123456789ab
  stockroom buy 0190cafe-1234-7abc-8def-0123456789ab --cancel`,
	Args: cobra.ExactArgs(1),
	RunE: runBuy,
}

func init() {
	buyCmd.Flags().BoolVar(&buyCancel, "cancel", false, "select the product, then cancel instead of confirming")
}

func runBuy(cmd *cobra.Command, args []string) error {
	svc, backend, err := attachService()
	if err != nil {
		return err
	}
	defer backend.Detach()

	selected, err := svc.Select(args[0])
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("product %q not found", args[0])
		}
		return fmt.Errorf("select product: %w", err)
	}

	if buyCancel {
		svc.Cancel()
		if flagJSON {
			return printJSON(map[string]string{"status": "cancelled", "id": selected.ID})
		}
		fmt.Printf("Cancelled purchase of %s.\n", selected.Name)
		return nil
	}

	purchased, err := svc.Confirm()
	if err != nil {
		return fmt.Errorf("confirm purchase: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]any{
			"status": "confirmed",
			"id":     purchased.ID,
			"name":   purchased.Name,
			"price":  purchased.Price,
		})
	}
	fmt.Printf("Purchase confirmed: %s ($%.2f)\n", purchased.Name, purchased.Price)
	return nil
}
