// Delete command removes a record after a two-step confirmation.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RodneySerpa/cadastro-pf-excel/pkg/types"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a person record",
	Long: `Delete removes a person record by ID.

The first invocation arms a pending confirmation; running the same
command again performs the removal. Requesting a different ID in between
re-arms the confirmation instead of deleting.

Example:
  cadastro delete 3
  cadastro delete 3   (confirms)`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "delete:", err)
		os.Exit(exitUserError)
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "delete:", err)
		os.Exit(exitSysError)
	}

	configDir, err := resolveConfigDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "delete:", err)
		os.Exit(exitSysError)
	}

	sess := loadSession(configDir)
	delErr := store.Delete(sess, id)
	if err := saveSession(configDir, sess); err != nil {
		fmt.Fprintln(os.Stderr, "delete: save session:", err)
		os.Exit(exitSysError)
	}

	switch {
	case errors.Is(delErr, types.ErrConfirmRequired):
		if flagJSON {
			printJSON(map[string]any{"id": id, "status": "confirm_required"})
		} else {
			fmt.Printf("Record %d is pending deletion. Run the same command again to confirm.\n", id)
		}
	case errors.Is(delErr, types.ErrNotFound):
		fmt.Fprintf(os.Stderr, "record %d not found\n", id)
		os.Exit(exitUserError)
	case delErr != nil:
		fmt.Fprintln(os.Stderr, "delete:", delErr)
		os.Exit(exitSysError)
	default:
		if flagJSON {
			printJSON(map[string]any{"id": id, "status": "deleted"})
		} else {
			fmt.Printf("Deleted record %d\n", id)
		}
	}
	return nil
}
