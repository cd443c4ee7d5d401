package auditlog

import (
	"path/filepath"
	"testing"
	"time"
)

func tempRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "craftdeck.db")
	r, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestSave_AssignsIDAndTimestamp(t *testing.T) {
	r := tempRepo(t)

	entry := &AuditEntry{
		Command:    "craftdeck server start",
		ServerID:   "srv1",
		Outcome:    OutcomeSuccess,
		DurationMs: 12,
	}

	if err := r.Save(entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if entry.ID == 0 {
		t.Error("expected ID to be assigned")
	}
	if entry.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestList(t *testing.T) {
	r := tempRepo(t)

	for i := range 3 {
		entry := &AuditEntry{
			Command:   "craftdeck server start",
			Outcome:   OutcomeSuccess,
			Timestamp: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := r.List(2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Timestamp.Before(entries[1].Timestamp) {
		t.Error("expected entries sorted by timestamp descending")
	}
}

func TestListByServer(t *testing.T) {
	r := tempRepo(t)

	entries := []*AuditEntry{
		{Command: "craftdeck server start", ServerID: "srv1", Outcome: OutcomeSuccess},
		{Command: "craftdeck backup create", ServerID: "srv2", Outcome: OutcomeSuccess},
		{Command: "craftdeck server stop", ServerID: "srv1", Outcome: OutcomeError},
	}
	for _, entry := range entries {
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	got, err := r.ListByServer("srv1", 10)
	if err != nil {
		t.Fatalf("ListByServer failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries for srv1, got %d", len(got))
	}
	for _, e := range got {
		if e.ServerID != "srv1" {
			t.Errorf("entry %d has ServerID %q, want srv1", e.ID, e.ServerID)
		}
	}
}

func TestPrune(t *testing.T) {
	r := tempRepo(t)

	old := &AuditEntry{
		Command:   "craftdeck server start",
		Outcome:   OutcomeSuccess,
		Timestamp: time.Now().UTC().Add(-48 * time.Hour),
	}
	recent := &AuditEntry{
		Command: "craftdeck server stop",
		Outcome: OutcomeSuccess,
	}
	for _, e := range []*AuditEntry{old, recent} {
		if err := r.Save(e); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	removed, err := r.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 removed entry, got %d", removed)
	}

	remaining, err := r.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Command != "craftdeck server stop" {
		t.Errorf("unexpected remaining entries: %+v", remaining)
	}
}

func TestSanitizeArgs(t *testing.T) {
	got := SanitizeArgs([]string{"auth", "login", "--token", "secret-value"})
	want := []string{"auth", "login", "--token", "<redacted>"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SanitizeArgs[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	got = SanitizeArgs([]string{"--token=secret"})
	if got[0] != "--token=<redacted>" {
		t.Errorf("inline token not redacted: %q", got[0])
	}
}
