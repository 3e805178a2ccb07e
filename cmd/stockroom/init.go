// Init command prepares the config and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the catalog store",
	Long: `Init creates the configuration directory with a default config.yaml
(done automatically on first run of any command) and initializes the
catalog database in the data directory.

Example:
  stockroom init
  stockroom init --data-dir ./catalog-data`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(map[string]string{"data_dir": dataDir, "status": "initialized"})
	}
	fmt.Printf("Catalog store initialized in %s\n", dataDir)
	return nil
}
