// Shared helpers for cadastro CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/RodneySerpa/cadastro-pf-excel/internal/registry"
	"github.com/RodneySerpa/cadastro-pf-excel/pkg/types"
)

// storePath resolves the data directory and returns the workbook path.
func storePath() (string, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	return filepath.Join(dataDir, cfg.StoreFile), nil
}

// openStore returns a registry store over the configured workbook.
func openStore() (*registry.Store, error) {
	path, err := storePath()
	if err != nil {
		return nil, err
	}
	return registry.NewWorkbookStore(path), nil
}

// parseID parses a record id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid record id %q", arg)
	}
	return id, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal JSON:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(out))
}

// printValidationErrors lists every collected failure on stderr.
func printValidationErrors(errs types.ValidationErrors) {
	for _, msg := range errs.Messages() {
		fmt.Fprintln(os.Stderr, msg)
	}
}

// filterFlags holds the query filter flag values shared by list and
// export.
type filterFlags struct {
	name  string
	city  string
	state string
}

func (f filterFlags) filter() registry.Filter {
	return registry.Filter{
		NameContains: f.name,
		CityContains: f.city,
		StateEquals:  f.state,
	}
}
