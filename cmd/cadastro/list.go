// List command queries the registry with optional filters.
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/RodneySerpa/cadastro-pf-excel/pkg/types"
)

var listFlags filterFlags

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List person records",
	Long: `List shows the records matching the supplied filters.

Name and city match case-insensitive substrings; state matches exactly.
All supplied filters are combined.

Example:
  cadastro list
  cadastro list --city paulo
  cadastro list --name silva --state SP
  cadastro list --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listFlags.name, "name", "", "filter by name substring")
	listCmd.Flags().StringVar(&listFlags.city, "city", "", "filter by city substring")
	listCmd.Flags().StringVar(&listFlags.state, "state", "", "filter by exact state code")
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "list:", err)
		os.Exit(exitSysError)
	}

	seq, err := store.Query(listFlags.filter())
	if err != nil {
		fmt.Fprintln(os.Stderr, "list:", err)
		os.Exit(exitSysError)
	}

	var people []types.PersonSummary
	for p := range seq {
		people = append(people, p.Summary())
	}

	if flagJSON {
		if people == nil {
			people = []types.PersonSummary{}
		}
		printJSON(people)
		return nil
	}

	printSummaryTable(people)
	return nil
}

// printSummaryTable prints the display subset in a human-readable table.
func printSummaryTable(people []types.PersonSummary) {
	if len(people) == 0 {
		fmt.Println("No records found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tCPF\tEMAIL\tPHONE\tCITY\tSTATE")
	fmt.Fprintln(w, "--\t----\t---\t-----\t-----\t----\t-----")
	for _, p := range people {
		name := p.FullName
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, name, p.CPF, p.Email, p.Phone, p.City, p.State)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d record(s)\n", len(people))
}
