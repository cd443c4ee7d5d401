package auth

import (
	"errors"
	"testing"
)

func TestMockStoreRoundTrip(t *testing.T) {
	store := NewMockStore()

	if _, err := store.GetToken(KeyPanel); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}

	if err := store.SetToken(KeyPanel, "sess_abc123"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	token, err := store.GetToken(KeyPanel)
	if err != nil {
		t.Fatalf("GetToken: %v", err)
	}
	if token != "sess_abc123" {
		t.Errorf("got token %q", token)
	}

	if err := store.DeleteToken(KeyPanel); err != nil {
		t.Fatalf("DeleteToken: %v", err)
	}
	if err := store.DeleteToken(KeyPanel); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound after delete, got %v", err)
	}
}

func TestNormalizeKey(t *testing.T) {
	if got := NormalizeKey("  Panel "); got != "panel" {
		t.Errorf("NormalizeKey = %q", got)
	}
}
