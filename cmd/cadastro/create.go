// Create command registers a new person record.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RodneySerpa/cadastro-pf-excel/pkg/types"
)

var createInput types.PersonInput

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new person record",
	Long: `Create validates the submitted fields and registers a new person.

Name, CPF, and email are required; CPF and email must be unique across
the registry. Every validation problem is reported at once.

Example:
  cadastro create --name "João da Silva" --cpf 123.456.789-09 --email joao@example.com
  cadastro create --name "Ana Lima" --cpf 98765432100 --email ana@example.com --city Recife --state PE`,
	RunE: runCreate,
}

func init() {
	registerFieldFlags(createCmd, &createInput)
	createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagRequired("cpf")
	createCmd.MarkFlagRequired("email")
}

// registerFieldFlags binds the person field flags shared by create and
// update onto cmd.
func registerFieldFlags(cmd *cobra.Command, in *types.PersonInput) {
	cmd.Flags().StringVar(&in.FullName, "name", "", "full name (required)")
	cmd.Flags().StringVar(&in.CPF, "cpf", "", "CPF, 11 digits (required)")
	cmd.Flags().StringVar(&in.RG, "rg", "", "RG")
	cmd.Flags().StringVar(&in.BirthDate, "birth-date", "", "birth date (DD/MM/YYYY)")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&in.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&in.PostalCode, "postal-code", "", "postal code")
	cmd.Flags().StringVar(&in.Address, "address", "", "street address")
	cmd.Flags().StringVar(&in.City, "city", "", "city")
	cmd.Flags().StringVar(&in.State, "state", "", "two-letter state code")
	cmd.Flags().StringVar(&in.Profession, "profession", "", "profession")
}

func runCreate(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "create:", err)
		os.Exit(exitSysError)
	}

	id, err := store.Create(createInput)
	if err != nil {
		var verrs types.ValidationErrors
		if errors.As(err, &verrs) {
			printValidationErrors(verrs)
			os.Exit(exitUserError)
		}
		fmt.Fprintln(os.Stderr, "create:", err)
		os.Exit(exitSysError)
	}

	if flagJSON {
		printJSON(map[string]int64{"id": id})
	} else {
		fmt.Printf("Created record %d\n", id)
	}
	return nil
}
