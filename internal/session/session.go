// Package session assembles an authenticated data store from the user's
// saved configuration and keychain credential. CLI commands open a
// session rather than wiring clients themselves.
package session

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/vgskye/craftdeck/internal/api"
	"github.com/vgskye/craftdeck/internal/auth"
	"github.com/vgskye/craftdeck/internal/config"
	"github.com/vgskye/craftdeck/internal/store"
)

// opener builds the store for Open. Replaced in tests via SetOpener.
var opener = defaultOpen

// SetOpener overrides session construction. Intended for testing.
func SetOpener(fn func() (*store.Store, error)) { opener = fn }

// ResetOpener restores the default session construction. Intended for testing.
func ResetOpener() { opener = defaultOpen }

// Open returns a data store backed by the configured panel and catalog
// APIs, authenticated with the keychain session credential.
func Open() (*store.Store, error) {
	return opener()
}

func defaultOpen() (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	token, err := auth.DefaultStore().GetToken(auth.KeyPanel)
	if err != nil {
		if errors.Is(err, auth.ErrTokenNotFound) {
			return nil, fmt.Errorf("session: not logged in (run 'craftdeck auth login')")
		}
		return nil, fmt.Errorf("session: %w", err)
	}

	panel := api.NewClient(cfg.ResolvedPanelURL(), token)
	catalog := api.NewCatalogClient(cfg.ResolvedCatalogURL())
	return store.New(panel, catalog, store.WithLogger(log.Logger)), nil
}

// DefaultServer resolves the server ID for a command: the explicit flag
// value when given, otherwise the configured default.
func DefaultServer(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("session: %w", err)
	}
	if cfg.DefaultServer == "" {
		return "", fmt.Errorf("no server specified: use --server or set a default with 'craftdeck config set default-server <id>'")
	}
	return cfg.DefaultServer, nil
}
