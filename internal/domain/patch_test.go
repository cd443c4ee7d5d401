package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestServerPatch_Apply(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	base := Server{
		ID:        "srv1",
		Name:      "alpha",
		Status:    "running",
		Subdomain: "alpha",
		Modpack:   "ver-42",
		CreatedAt: created,
		Backups:   []Backup{{ID: "b1", Name: "first"}},
	}

	t.Run("only patched fields change", func(t *testing.T) {
		srv := base
		name := "omega"
		ServerPatch{Name: &name}.Apply(&srv)

		want := base
		want.Name = "omega"
		if diff := cmp.Diff(want, srv); diff != "" {
			t.Errorf("unexpected changes (-want +got):\n%s", diff)
		}
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		srv := base
		ServerPatch{}.Apply(&srv)
		if diff := cmp.Diff(base, srv); diff != "" {
			t.Errorf("empty patch changed fields (-want +got):\n%s", diff)
		}
	})

	t.Run("multiple fields", func(t *testing.T) {
		srv := base
		status := "stopped"
		project := &Project{ID: "proj-7", Title: "Fabulous Pack"}
		backups := []Backup{{ID: "b2", Name: "second"}}
		ServerPatch{Status: &status, Project: project, Backups: backups}.Apply(&srv)

		if srv.Status != "stopped" {
			t.Errorf("Status = %q, want %q", srv.Status, "stopped")
		}
		if srv.Project != project {
			t.Error("Project pointer not replaced")
		}
		if len(srv.Backups) != 1 || srv.Backups[0].ID != "b2" {
			t.Error("Backups not replaced")
		}
		if srv.Name != "alpha" {
			t.Error("unpatched Name changed")
		}
	})

	t.Run("empty string overwrites", func(t *testing.T) {
		srv := base
		empty := ""
		ServerPatch{Subdomain: &empty}.Apply(&srv)
		if srv.Subdomain != "" {
			t.Errorf("Subdomain = %q, want cleared", srv.Subdomain)
		}
	})
}
