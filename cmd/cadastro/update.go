// Update command edits an existing record.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RodneySerpa/cadastro-pf-excel/pkg/types"
)

var updateInput types.PersonInput

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit a person record",
	Long: `Update edits a person record. Only the supplied flags change; every
other field keeps its current value. ID and creation time never change.

Example:
  cadastro update 3 --city Campinas
  cadastro update 3 --email novo@example.com --phone "(19) 98888-7777"`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	registerFieldFlags(updateCmd, &updateInput)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "update:", err)
		os.Exit(exitUserError)
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "update:", err)
		os.Exit(exitSysError)
	}

	current, err := store.Get(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "record %d not found\n", id)
			os.Exit(exitUserError)
		}
		fmt.Fprintln(os.Stderr, "update:", err)
		os.Exit(exitSysError)
	}

	// Start from the stored values and overlay only the changed flags,
	// so the store always sees the full field set.
	in := current.Input()
	overlay := map[string]struct {
		dst *string
		src string
	}{
		"name":        {&in.FullName, updateInput.FullName},
		"cpf":         {&in.CPF, updateInput.CPF},
		"rg":          {&in.RG, updateInput.RG},
		"birth-date":  {&in.BirthDate, updateInput.BirthDate},
		"email":       {&in.Email, updateInput.Email},
		"phone":       {&in.Phone, updateInput.Phone},
		"postal-code": {&in.PostalCode, updateInput.PostalCode},
		"address":     {&in.Address, updateInput.Address},
		"city":        {&in.City, updateInput.City},
		"state":       {&in.State, updateInput.State},
		"profession":  {&in.Profession, updateInput.Profession},
	}
	for flag, f := range overlay {
		if cmd.Flags().Changed(flag) {
			*f.dst = f.src
		}
	}

	if err := store.Update(id, in); err != nil {
		var verrs types.ValidationErrors
		if errors.As(err, &verrs) {
			printValidationErrors(verrs)
			os.Exit(exitUserError)
		}
		fmt.Fprintln(os.Stderr, "update:", err)
		os.Exit(exitSysError)
	}

	if flagJSON {
		printJSON(map[string]any{"id": id, "status": "updated"})
	} else {
		fmt.Printf("Updated record %d\n", id)
	}
	return nil
}
