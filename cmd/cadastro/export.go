// Export command writes filtered records to a standalone workbook.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	exportFilters filterFlags
	exportOutput  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export records to an Excel file",
	Long: `Export writes the records matching the given filters to a new
workbook. The output file defaults to a timestamped name in the
current directory.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFilters.name, "name", "", "keep records whose name contains this text")
	exportCmd.Flags().StringVar(&exportFilters.city, "city", "", "keep records whose city contains this text")
	exportCmd.Flags().StringVar(&exportFilters.state, "state", "", "keep records with this exact state code")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file path (default cadastros_filtrados_<timestamp>.xlsx)")
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(exitSysError)
	}

	data, err := store.Export(exportFilters.filter())
	if err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(exitSysError)
	}

	out := exportOutput
	if out == "" {
		out = fmt.Sprintf("cadastros_filtrados_%s.xlsx", time.Now().Format("20060102_1504"))
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(exitSysError)
	}

	if flagJSON {
		printJSON(map[string]string{"file": out})
		return nil
	}
	fmt.Println("Exported to", out)
	return nil
}
