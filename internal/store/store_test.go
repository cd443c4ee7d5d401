package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vgskye/craftdeck/internal/api"
	"github.com/vgskye/craftdeck/internal/domain"
)

// --- Test helpers ---

// jsonHandler writes v as a JSON response.
func jsonHandler(v any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
}

// errorHandler writes a panel error response with the given status.
func errorHandler(status int, description string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":       http.StatusText(status),
			"description": description,
		})
	}
}

// newTestStore builds a store against httptest panel and catalog servers
// routed by the given mux handler maps (keyed "METHOD /path").
func newTestStore(t *testing.T, panelHandlers, catalogHandlers map[string]http.HandlerFunc) *Store {
	t.Helper()

	route := func(handlers map[string]http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if h, ok := handlers[r.Method+" "+r.URL.Path]; ok {
				h(w, r)
				return
			}
			http.NotFound(w, r)
		}
	}

	panel := httptest.NewServer(route(panelHandlers))
	t.Cleanup(panel.Close)
	catalog := httptest.NewServer(route(catalogHandlers))
	t.Cleanup(catalog.Close)

	return New(api.NewClient(panel.URL, "test-token"), api.NewCatalogClient(catalog.URL))
}

func testServerJSON(id, name, modpack string) map[string]any {
	return map[string]any{
		"id":           id,
		"name":         name,
		"status":       "running",
		"subdomain":    name,
		"game_version": "1.21.1",
		"modpack":      modpack,
		"created_at":   "2024-01-15T10:00:00Z",
	}
}

func testBackupJSON(id, name, createdAt string) map[string]any {
	return map[string]any{
		"id":         id,
		"name":       name,
		"size":       int64(1 << 20),
		"created_at": createdAt,
	}
}

// --- FetchServerData ---

func TestFetchServerData_PopulatesCache(t *testing.T) {
	s := newTestStore(t,
		map[string]http.HandlerFunc{
			"GET /servers/srv1": jsonHandler(testServerJSON("srv1", "alpha", "")),
			"GET /servers/srv1/backups": jsonHandler([]any{
				testBackupJSON("b1", "old", "2024-01-01T00:00:00Z"),
				testBackupJSON("b2", "new", "2024-03-01T00:00:00Z"),
			}),
		},
		nil,
	)

	got, err := s.FetchServerData(context.Background(), "srv1")
	if err != nil {
		t.Fatalf("FetchServerData failed: %v", err)
	}
	if got.Name != "alpha" {
		t.Errorf("Name = %q, want %q", got.Name, "alpha")
	}

	cached, ok := s.GetServerData("srv1")
	if !ok {
		t.Fatal("expected srv1 to be cached")
	}
	wantOrder := []string{"b2", "b1"}
	for i, want := range wantOrder {
		if cached.Backups[i].ID != want {
			t.Errorf("Backups[%d].ID = %q, want %q (newest first)", i, cached.Backups[i].ID, want)
		}
	}
	if s.HasError() {
		t.Error("expected no error after successful fetch")
	}
}

func TestFetchServerData_ResolvesModpack(t *testing.T) {
	s := newTestStore(t,
		map[string]http.HandlerFunc{
			"GET /servers/srv1":         jsonHandler(testServerJSON("srv1", "alpha", "ver-42")),
			"GET /servers/srv1/backups": jsonHandler([]any{}),
		},
		map[string]http.HandlerFunc{
			"GET /version/ver-42": jsonHandler(map[string]any{
				"id": "ver-42", "project_id": "proj-7", "name": "Fabulous Pack", "version_number": "3.1.0",
			}),
			"GET /project/proj-7": jsonHandler(map[string]any{
				"id": "proj-7", "slug": "fabulous-pack", "title": "Fabulous Pack",
			}),
		},
	)

	got, err := s.FetchServerData(context.Background(), "srv1")
	if err != nil {
		t.Fatalf("FetchServerData failed: %v", err)
	}
	if got.ModpackID != "ver-42" {
		t.Errorf("ModpackID = %q, want %q", got.ModpackID, "ver-42")
	}
	wantProject := &domain.Project{ID: "proj-7", Slug: "fabulous-pack", Title: "Fabulous Pack"}
	if diff := cmp.Diff(wantProject, got.Project); diff != "" {
		t.Errorf("Project mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchServerData_FailureLeavesCacheUntouched(t *testing.T) {
	handlers := map[string]http.HandlerFunc{
		"GET /servers/srv1":         jsonHandler(testServerJSON("srv1", "alpha", "")),
		"GET /servers/srv1/backups": jsonHandler([]any{}),
	}
	s := newTestStore(t, handlers, nil)

	if _, err := s.FetchServerData(context.Background(), "srv1"); err != nil {
		t.Fatalf("initial fetch failed: %v", err)
	}

	// Subsequent fetches fail at the backup stage.
	handlers["GET /servers/srv1/backups"] = errorHandler(http.StatusInternalServerError, "boom")

	if _, err := s.FetchServerData(context.Background(), "srv1"); err == nil {
		t.Fatal("expected fetch to fail")
	}
	if !s.HasError() {
		t.Error("expected error slot to be set after failed fetch")
	}

	cached, ok := s.GetServerData("srv1")
	if !ok {
		t.Fatal("expected prior cache entry to survive a failed fetch")
	}
	if cached.Name != "alpha" {
		t.Errorf("cached Name = %q, want %q", cached.Name, "alpha")
	}
}

func TestFetchServerData_ModpackResolutionFailureFailsFetch(t *testing.T) {
	s := newTestStore(t,
		map[string]http.HandlerFunc{
			"GET /servers/srv1":         jsonHandler(testServerJSON("srv1", "alpha", "ver-42")),
			"GET /servers/srv1/backups": jsonHandler([]any{}),
		},
		map[string]http.HandlerFunc{
			"GET /version/ver-42": errorHandler(http.StatusNotFound, "no such version"),
		},
	)

	if _, err := s.FetchServerData(context.Background(), "srv1"); err == nil {
		t.Fatal("expected fetch to fail when modpack resolution fails")
	}
	if _, ok := s.GetServerData("srv1"); ok {
		t.Error("expected no cache entry after failed fetch")
	}
	if !s.HasError() {
		t.Error("expected error slot to be set")
	}
}

func TestFetchServerData_SuccessClearsErrorSlot(t *testing.T) {
	s := newTestStore(t,
		map[string]http.HandlerFunc{
			"GET /servers/srv1":         jsonHandler(testServerJSON("srv1", "alpha", "")),
			"GET /servers/srv1/backups": jsonHandler([]any{}),
			"GET /servers/gone":         errorHandler(http.StatusNotFound, "no such server"),
		},
		nil,
	)

	if _, err := s.FetchServerData(context.Background(), "gone"); err == nil {
		t.Fatal("expected fetch of missing server to fail")
	}
	if !s.HasError() {
		t.Fatal("expected error slot to be set")
	}

	if _, err := s.FetchServerData(context.Background(), "srv1"); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if s.HasError() {
		t.Error("expected error slot to be cleared by successful fetch")
	}
}

// --- Getters and cache semantics ---

func TestGetServerData_AbsentForUnknownID(t *testing.T) {
	s := newTestStore(t, nil, nil)

	if _, ok := s.GetServerData("never-fetched"); ok {
		t.Error("expected absent result for unknown server ID")
	}
}

func TestGetServerData_ReturnsDetachedCopy(t *testing.T) {
	s := newTestStore(t,
		map[string]http.HandlerFunc{
			"GET /servers/srv1": jsonHandler(testServerJSON("srv1", "alpha", "")),
			"GET /servers/srv1/backups": jsonHandler([]any{
				testBackupJSON("b1", "only", "2024-01-01T00:00:00Z"),
			}),
		},
		nil,
	)
	if _, err := s.FetchServerData(context.Background(), "srv1"); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	first, _ := s.GetServerData("srv1")
	first.Backups[0].Name = "mutated"

	second, _ := s.GetServerData("srv1")
	if second.Backups[0].Name != "only" {
		t.Error("mutating a returned copy leaked into the cache")
	}
}

func TestUpdateServerData_ShallowMerge(t *testing.T) {
	s := newTestStore(t,
		map[string]http.HandlerFunc{
			"GET /servers/srv1":         jsonHandler(testServerJSON("srv1", "alpha", "")),
			"GET /servers/srv1/backups": jsonHandler([]any{}),
		},
		nil,
	)
	before, err := s.FetchServerData(context.Background(), "srv1")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	newName := "renamed"
	s.UpdateServerData("srv1", domain.ServerPatch{Name: &newName})

	after, _ := s.GetServerData("srv1")
	if after.Name != "renamed" {
		t.Errorf("Name = %q, want %q", after.Name, "renamed")
	}

	// Every other field must be untouched.
	before.Name = "renamed"
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("merge touched unrelated fields (-want +got):\n%s", diff)
	}
}

func TestUpdateServerData_UncachedIsNoOp(t *testing.T) {
	s := newTestStore(t, nil, nil)

	name := "whatever"
	s.UpdateServerData("srv1", domain.ServerPatch{Name: &name})

	if _, ok := s.GetServerData("srv1"); ok {
		t.Error("merge against an uncached server must not create an entry")
	}
}

// --- Error slot ---

func TestClearError(t *testing.T) {
	s := newTestStore(t,
		map[string]http.HandlerFunc{
			"GET /servers/gone": errorHandler(http.StatusNotFound, "no such server"),
		},
		nil,
	)

	s.ClearError()
	if s.HasError() {
		t.Error("ClearError on an empty slot must leave HasError false")
	}

	if _, err := s.FetchServerData(context.Background(), "gone"); err == nil {
		t.Fatal("expected fetch to fail")
	}
	if !s.HasError() {
		t.Fatal("expected error slot to be set")
	}

	s.ClearError()
	if s.HasError() {
		t.Error("expected HasError false after ClearError")
	}
	if s.LastError() != nil {
		t.Error("expected LastError nil after ClearError")
	}
}

// --- Collection and backup reads ---

func TestListServers_DoesNotPopulateCache(t *testing.T) {
	s := newTestStore(t,
		map[string]http.HandlerFunc{
			"GET /servers": jsonHandler(map[string]any{"data": []any{
				testServerJSON("srv1", "alpha", ""),
				testServerJSON("srv2", "beta", ""),
			}}),
		},
		nil,
	)

	servers, err := s.ListServers(context.Background())
	if err != nil {
		t.Fatalf("ListServers failed: %v", err)
	}
	if len(servers) != 2 {
		t.Fatalf("expected 2 servers, got %d", len(servers))
	}
	if _, ok := s.GetServerData("srv1"); ok {
		t.Error("ListServers must not populate the cache")
	}
}

func TestListServers_FailureReturnsFreshError(t *testing.T) {
	s := newTestStore(t,
		map[string]http.HandlerFunc{
			"GET /servers": errorHandler(http.StatusUnauthorized, "session expired"),
		},
		nil,
	)

	_, err := s.ListServers(context.Background())
	if err == nil {
		t.Fatal("expected ListServers to fail")
	}
	// The returned error is the one just caught, not a stale slot value.
	if got, want := err, s.LastError(); got != want {
		t.Errorf("returned error %v does not match error slot %v", got, want)
	}
}

func TestFetchServerBackups_SortedNewestFirst(t *testing.T) {
	s := newTestStore(t,
		map[string]http.HandlerFunc{
			"GET /servers/srv1/backups": jsonHandler([]any{
				testBackupJSON("t1", "january", "2024-01-01T00:00:00Z"),
				testBackupJSON("t2", "march", "2024-03-01T00:00:00Z"),
			}),
		},
		nil,
	)

	backups, err := s.FetchServerBackups(context.Background(), "srv1")
	if err != nil {
		t.Fatalf("FetchServerBackups failed: %v", err)
	}
	if backups[0].ID != "t2" || backups[1].ID != "t1" {
		t.Errorf("got order [%s %s], want [t2 t1]", backups[0].ID, backups[1].ID)
	}
}

func TestSortBackups_StableForEqualTimestamps(t *testing.T) {
	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	backups := []domain.Backup{
		{ID: "a", CreatedAt: at},
		{ID: "b", CreatedAt: at},
		{ID: "c", CreatedAt: at.Add(-time.Hour)},
	}
	sortBackups(backups)

	wantOrder := []string{"a", "b", "c"}
	for i, want := range wantOrder {
		if backups[i].ID != want {
			t.Fatalf("position %d = %q, want %q", i, backups[i].ID, want)
		}
	}
}

// --- Rename ---

func TestUpdateServerName_MergesIntoCache(t *testing.T) {
	s := newTestStore(t,
		map[string]http.HandlerFunc{
			"GET /servers/srv1":         jsonHandler(testServerJSON("srv1", "alpha", "")),
			"GET /servers/srv1/backups": jsonHandler([]any{}),
			"POST /servers/srv1/name":   jsonHandler(map[string]any{}),
		},
		nil,
	)
	if _, err := s.FetchServerData(context.Background(), "srv1"); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if err := s.UpdateServerName(context.Background(), "srv1", "omega"); err != nil {
		t.Fatalf("UpdateServerName failed: %v", err)
	}
	cached, _ := s.GetServerData("srv1")
	if cached.Name != "omega" {
		t.Errorf("cached Name = %q, want %q", cached.Name, "omega")
	}
}

func TestUpdateServerName_UncachedServerWarnsWithoutError(t *testing.T) {
	s := newTestStore(t,
		map[string]http.HandlerFunc{
			"POST /servers/srv1/name": jsonHandler(map[string]any{}),
		},
		nil,
	)

	if err := s.UpdateServerName(context.Background(), "srv1", "omega"); err != nil {
		t.Fatalf("rename of uncached server must not error: %v", err)
	}
	if _, ok := s.GetServerData("srv1"); ok {
		t.Error("rename must not create a cache entry")
	}
}

// --- Subscriptions ---

func TestSubscribe_NotifiedOnCacheMutations(t *testing.T) {
	s := newTestStore(t,
		map[string]http.HandlerFunc{
			"GET /servers/srv1":         jsonHandler(testServerJSON("srv1", "alpha", "")),
			"GET /servers/srv1/backups": jsonHandler([]any{}),
		},
		nil,
	)

	var notified []string
	cancel := s.Subscribe(func(serverID string) {
		notified = append(notified, serverID)
	})

	if _, err := s.FetchServerData(context.Background(), "srv1"); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	name := "renamed"
	s.UpdateServerData("srv1", domain.ServerPatch{Name: &name})

	want := []string{"srv1", "srv1"}
	if diff := cmp.Diff(want, notified); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}

	cancel()
	s.UpdateServerData("srv1", domain.ServerPatch{Name: &name})
	if len(notified) != 2 {
		t.Error("expected no notifications after cancel")
	}
}

func TestSubscribe_NoNotificationForUncachedMerge(t *testing.T) {
	s := newTestStore(t, nil, nil)

	calls := 0
	s.Subscribe(func(string) { calls++ })

	name := "x"
	s.UpdateServerData("ghost", domain.ServerPatch{Name: &name})
	if calls != 0 {
		t.Error("no-op merge must not notify subscribers")
	}
}
