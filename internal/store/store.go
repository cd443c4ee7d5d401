// Package store implements the client-side data store for panel servers.
//
// The Store caches server records keyed by server ID, exposes synchronous
// read accessors over the cache, and keeps a single error slot holding the
// most recent failure. Cache entries are created by a full fetch, updated
// by shallow-merge patches, and never evicted; they live for the process
// lifetime. Consumers that want to re-render on changes register a
// subscriber with Subscribe.
//
// Two concurrent fetches for the same server ID are not de-duplicated:
// the later-completing one wins the cache slot wholesale. This is a known
// limitation, not something the store guards against.
package store

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vgskye/craftdeck/internal/api"
	"github.com/vgskye/craftdeck/internal/domain"
)

// Store is the server data store. Construct with New; the zero value is
// not usable.
type Store struct {
	panel   *api.Client
	catalog *api.CatalogClient
	log     zerolog.Logger

	mu      sync.RWMutex
	servers map[string]domain.Server
	lastErr error

	subMu   sync.Mutex
	subs    map[int]func(serverID string)
	nextSub int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for failure and warning output.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New returns an empty store backed by the given panel and catalog
// clients.
func New(panel *api.Client, catalog *api.CatalogClient, opts ...Option) *Store {
	s := &Store{
		panel:   panel,
		catalog: catalog,
		log:     zerolog.Nop(),
		servers: make(map[string]domain.Server),
		subs:    make(map[int]func(string)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetServerData returns a copy of the cached record for serverID, and
// whether one exists. The copy shares no mutable state with the cache.
func (s *Store) GetServerData(serverID string) (domain.Server, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	srv, ok := s.servers[serverID]
	if !ok {
		return domain.Server{}, false
	}
	return cloneServer(srv), true
}

// UpdateServerData shallow-merges patch into the cached record for
// serverID. If the server is not cached, the update is dropped with a
// warning; an entry is never created this way.
func (s *Store) UpdateServerData(serverID string, patch domain.ServerPatch) {
	s.mu.Lock()
	srv, ok := s.servers[serverID]
	if !ok {
		s.mu.Unlock()
		s.log.Warn().Str("server_id", serverID).Msg("update for server not in cache, ignoring")
		return
	}
	patch.Apply(&srv)
	s.servers[serverID] = srv
	s.mu.Unlock()

	s.notify(serverID)
}

// HasError reports whether the error slot is non-empty.
func (s *Store) HasError() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr != nil
}

// LastError returns the most recent failure, or nil.
func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// ClearError resets the error slot.
func (s *Store) ClearError() {
	s.mu.Lock()
	s.lastErr = nil
	s.mu.Unlock()
}

// Subscribe registers fn to be called with the server ID after every
// cache mutation. The returned cancel function removes the subscription.
func (s *Store) Subscribe(fn func(serverID string)) (cancel func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// notify invokes all subscribers for a changed server ID. Subscribers
// run on the mutating goroutine, outside the cache lock.
func (s *Store) notify(serverID string) {
	s.subMu.Lock()
	fns := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(serverID)
	}
}

// fail records err in the error slot, logs it with the failed operation,
// and returns the wrapped error. Every failing panel operation funnels
// through here; there is no retry or fallback anywhere in the store.
func (s *Store) fail(op, serverID string, err error) error {
	wrapped := fmt.Errorf("%s: %w", op, err)

	evt := s.log.Error().Str("op", op)
	if serverID != "" {
		evt = evt.Str("server_id", serverID)
	}
	evt.Err(err).Msg("panel operation failed")

	s.mu.Lock()
	s.lastErr = wrapped
	s.mu.Unlock()
	return wrapped
}

// cloneServer returns a copy of srv detached from cache-owned memory.
func cloneServer(srv domain.Server) domain.Server {
	if srv.Backups != nil {
		backups := make([]domain.Backup, len(srv.Backups))
		copy(backups, srv.Backups)
		srv.Backups = backups
	}
	if srv.Project != nil {
		project := *srv.Project
		srv.Project = &project
	}
	return srv
}
