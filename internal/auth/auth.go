// Package auth stores the panel session credential in the OS keychain.
// The credential is opaque: it is read once at session construction and
// handed to the API client, never inspected or logged.
package auth

import (
	"errors"

	"github.com/vgskye/craftdeck/internal/util"
)

const ServiceName = "craftdeck"

// KeyPanel is the keychain entry holding the panel session credential.
const KeyPanel = "panel"

var ErrTokenNotFound = errors.New("auth token not found")

type Store interface {
	SetToken(key string, token string) error
	GetToken(key string) (string, error)
	DeleteToken(key string) error
}

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// NormalizeKey normalizes a credential key for consistent lookup.
func NormalizeKey(key string) string {
	return util.NormalizeKey(key)
}
