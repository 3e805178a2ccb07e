// Root command for the stockroom CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openshelf/stockroom/internal/catalog"
	"github.com/openshelf/stockroom/internal/paths"
)

// Global flag values.
var (
	flagConfigDir  string
	flagDataDir    string
	flagPassphrase string
	flagJSON       bool
)

// Values loaded from config.yaml by PersistentPreRunE, shared by all
// subcommands.
var (
	configDataDir    string
	configPassphrase string
)

// EnvPassphrase lets scripts supply the access code without a flag.
const EnvPassphrase = "STOCKROOM_PASSPHRASE"

var rootCmd = &cobra.Command{
	Use:     "stockroom",
	Short:   "Stockroom is a catalog manager for tabular product uploads",
	Version: version,
	Long: `Stockroom ingests CSV or XLSX product files with unpredictable column
naming, normalizes them into one canonical schema, persists them to the
catalog store, and serves a searchable, sortable view with a purchase
workflow.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configPassphrase = cfg.GetString(cfgKeyPassphrase)

		return checkGate(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.stockroom-db)")
	rootCmd.PersistentFlags().StringVar(&flagPassphrase, "passphrase", "", "access code for the catalog (or "+EnvPassphrase+" env)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(seedCmd)
}

// checkGate enforces the static pass-phrase configured in config.yaml. The
// version and template commands never touch the catalog and are exempt. An
// unset passphrase leaves the gate open.
func checkGate(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "version", "template", "help":
		return nil
	}

	code := flagPassphrase
	if code == "" {
		code = os.Getenv(EnvPassphrase)
	}
	if !catalog.NewGate(configPassphrase).Admit(code) {
		return fmt.Errorf("invalid access code")
	}
	return nil
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > STOCKROOM_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > STOCKROOM_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
