package registry

// Session tracks the delete-confirmation handshake for one caller. Each
// caller owns its own Session; the flag is never process-global, so two
// callers can never confirm each other's deletions. The zero value is an
// unarmed session ready for use.
type Session struct {
	PendingDeleteID int64 `json:"pending_delete_id"`
}

// Armed reports whether the session holds a pending confirmation for id.
func (s *Session) Armed(id int64) bool {
	return id != 0 && s.PendingDeleteID == id
}

// Arm records id as pending deletion, replacing any previous pending id.
func (s *Session) Arm(id int64) {
	s.PendingDeleteID = id
}

// Disarm clears the pending confirmation.
func (s *Session) Disarm() {
	s.PendingDeleteID = 0
}
