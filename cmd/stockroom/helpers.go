// Shared helpers for stockroom CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/openshelf/stockroom/internal/catalog"
	"github.com/openshelf/stockroom/internal/sqlite"
	"github.com/openshelf/stockroom/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend:    types.BackendSQLite,
		DataDir:    dataDir,
		Passphrase: configPassphrase,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// attachService attaches a backend and wraps it in a catalog service with
// the catalog loaded. The caller must defer backend.Detach().
func attachService() (*catalog.Service, *sqlite.Backend, error) {
	backend, err := attachBackend()
	if err != nil {
		return nil, nil, err
	}

	svc := catalog.NewService(backend, nil)
	if err := svc.Load(); err != nil {
		backend.Detach()
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	return svc, backend, nil
}

// printJSON writes v as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printProductTable prints products in a human-readable table format.
func printProductTable(products []*types.Product) {
	if len(products) == 0 {
		fmt.Println("No products found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tCOUNTRY\tTYPE\tPRICE\tSTOCK")
	fmt.Fprintln(w, "--\t----\t-------\t----\t-----\t-----")
	for _, p := range products {
		name := p.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		shortID := p.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%d\n",
			shortID, name, p.Country, p.Category, p.Price, p.Stock)
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(output, "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d product(s)\n", len(products))
}
