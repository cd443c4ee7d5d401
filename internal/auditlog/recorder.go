package auditlog

import (
	"os"
	"strings"
	"time"
)

// Record times fn and persists an audit entry for it. Audit storage
// failures are swallowed: a broken local database must never block a
// panel operation. The error from fn is returned unchanged.
func Record(command, serverID, serverName string, fn func() error) error {
	start := time.Now()
	err := fn()

	entry := &AuditEntry{
		Command:    command,
		Args:       strings.Join(SanitizeArgs(os.Args[1:]), " "),
		ServerID:   serverID,
		ServerName: serverName,
		Outcome:    OutcomeSuccess,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		entry.Outcome = OutcomeError
		entry.Detail = err.Error()
	}

	if repo, openErr := Open(); openErr == nil {
		_ = repo.Save(entry)
		_ = repo.Close()
	}

	return err
}
