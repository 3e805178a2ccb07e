// Seed command inserts demonstration products.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demonstration products into the catalog",
	Long: `Seed inserts a small set of static demonstration products through the
normal insert path. Running it again adds the rows again.

Example:
  stockroom seed`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	n, err := backend.Seed()
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]int{"seeded": n})
	}
	fmt.Printf("Seeded %d demonstration product(s).\n", n)
	return nil
}
