// Get command shows one record in full.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RodneySerpa/cadastro-pf-excel/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a person record by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "get:", err)
		os.Exit(exitUserError)
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "get:", err)
		os.Exit(exitSysError)
	}

	p, err := store.Get(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "record %d not found\n", id)
			os.Exit(exitUserError)
		}
		fmt.Fprintln(os.Stderr, "get:", err)
		os.Exit(exitSysError)
	}

	if flagJSON {
		printJSON(p)
		return nil
	}

	printPerson(p)
	return nil
}

// printPerson writes the full record as labeled lines.
func printPerson(p types.Person) {
	birth := "-"
	if !p.BirthDate.IsZero() {
		birth = p.BirthDate.Format(types.DateLayout)
	}
	orDash := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}

	fmt.Printf("ID:          %d\n", p.ID)
	fmt.Printf("Full Name:   %s\n", p.FullName)
	fmt.Printf("CPF:         %s\n", p.CPF)
	fmt.Printf("RG:          %s\n", orDash(p.RG))
	fmt.Printf("Birth Date:  %s\n", birth)
	fmt.Printf("Email:       %s\n", p.Email)
	fmt.Printf("Phone:       %s\n", orDash(p.Phone))
	fmt.Printf("Postal Code: %s\n", orDash(p.PostalCode))
	fmt.Printf("Address:     %s\n", orDash(p.Address))
	fmt.Printf("City:        %s\n", orDash(p.City))
	fmt.Printf("State:       %s\n", orDash(p.State))
	fmt.Printf("Profession:  %s\n", orDash(p.Profession))
	fmt.Printf("Created At:  %s\n", p.CreatedAt.Format(types.TimestampLayout))
}
