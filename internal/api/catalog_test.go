package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vgskye/craftdeck/internal/domain"
)

func newTestCatalogClient(t *testing.T, handler http.HandlerFunc) *CatalogClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewCatalogClient(srv.URL)
}

func TestGetVersion(t *testing.T) {
	c := newTestCatalogClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Error("catalog requests must be unauthenticated")
		}
		if r.URL.Path != "/version/ver-42" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":             "ver-42",
			"project_id":     "proj-7",
			"name":           "Fabulous Pack",
			"version_number": "3.1.0",
		})
	})

	got, err := c.GetVersion(context.Background(), "ver-42")
	if err != nil {
		t.Fatalf("GetVersion failed: %v", err)
	}
	want := domain.ModpackVersion{ID: "ver-42", ProjectID: "proj-7", Name: "Fabulous Pack", VersionNumber: "3.1.0"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("version mismatch (-want +got):\n%s", diff)
	}
}

func TestGetProject_NotFound(t *testing.T) {
	c := newTestCatalogClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
	})

	_, err := c.GetProject(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want %v sentinel", err, domain.ErrNotFound)
	}
}
