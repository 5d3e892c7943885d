// Stats command summarizes the registry.
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/RodneySerpa/cadastro-pf-excel/internal/registry"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show registry statistics",
	Long: `Stats shows aggregate counts over the registry: total records,
records registered today, distinct states and cities, the state
distribution, and the ten most frequent cities.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "stats:", err)
		os.Exit(exitSysError)
	}

	st, err := store.Stats()
	if err != nil {
		fmt.Fprintln(os.Stderr, "stats:", err)
		os.Exit(exitSysError)
	}

	if flagJSON {
		printJSON(st)
		return nil
	}

	fmt.Printf("Total records:     %d\n", st.Total)
	fmt.Printf("Registered today:  %d\n", st.RegisteredToday)
	fmt.Printf("States represented: %d\n", st.DistinctStates)
	fmt.Printf("Distinct cities:   %d\n", st.DistinctCities)

	if len(st.ByState) > 0 {
		fmt.Println("\nBy state:")
		printDistribution(st.ByState)
	}
	if len(st.TopCities) > 0 {
		fmt.Println("\nTop cities:")
		printDistribution(st.TopCities)
	}
	return nil
}

// printDistribution prints one aligned name/count line per entry.
func printDistribution(entries []registry.CountEntry) {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(w, "  %s\t%d\n", e.Name, e.Count)
	}
	w.Flush()
	fmt.Print(sb.String())
}
