// Package auditlog keeps a local history of panel operations issued by
// the CLI. Every mutating command (power actions, backup lifecycle, mod
// changes, reinstalls) is recorded with its outcome so `craftdeck audit
// list` can answer "what did I do to this server, and when".
package auditlog

import "time"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// AuditEntry represents a persisted audit event.
type AuditEntry struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Command    string    `json:"command"`
	Args       string    `json:"args,omitempty"`
	ServerID   string    `json:"server_id,omitempty"`
	ServerName string    `json:"server_name,omitempty"`
	Outcome    string    `json:"outcome"`
	Detail     string    `json:"detail,omitempty"`
	DurationMs int64     `json:"duration_ms"`
}
