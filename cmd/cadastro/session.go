// Delete-confirmation session persistence for the CLI.
//
// The CLI is one process per invocation, so the per-caller confirmation
// state is kept as a small JSON file in the config directory; the file
// plays the role a session cookie plays for the HTTP server.
package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/RodneySerpa/cadastro-pf-excel/internal/registry"
)

const sessionFileName = "pending_delete.json"

// loadSession reads the persisted session, returning a fresh unarmed one
// when the file is missing or unreadable.
func loadSession(configDir string) *registry.Session {
	data, err := os.ReadFile(filepath.Join(configDir, sessionFileName))
	if err != nil {
		return &registry.Session{}
	}
	var sess registry.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return &registry.Session{}
	}
	return &sess
}

// saveSession persists the session; an unarmed session removes the file.
func saveSession(configDir string, sess *registry.Session) error {
	path := filepath.Join(configDir, sessionFileName)
	if sess.PendingDeleteID == 0 {
		err := os.Remove(path)
		if err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
