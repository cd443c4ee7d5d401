package store

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vgskye/craftdeck/internal/domain"
)

// FetchServerData fetches a full server record: the base record, the
// resolved modpack project (when the server references one), and the
// backup list sorted newest-first. On success the cache entry for
// serverID is replaced wholesale and the error slot is cleared. On any
// failure the prior cache state is left untouched, the error slot is
// set, and the error is returned.
func (s *Store) FetchServerData(ctx context.Context, serverID string) (domain.Server, error) {
	srv, err := s.panel.GetServer(ctx, serverID)
	if err != nil {
		return domain.Server{}, s.fail("fetch server data", serverID, err)
	}

	// The backup list and the modpack resolution chain are independent;
	// hydrate them in parallel. Either failure fails the whole fetch.
	g, gctx := errgroup.WithContext(ctx)

	var backups []domain.Backup
	g.Go(func() error {
		list, err := s.panel.ListBackups(gctx, serverID)
		if err != nil {
			return fmt.Errorf("backups: %w", err)
		}
		sortBackups(list)
		backups = list
		return nil
	})

	if srv.Modpack != "" {
		g.Go(func() error {
			version, err := s.catalog.GetVersion(gctx, srv.Modpack)
			if err != nil {
				return fmt.Errorf("modpack version: %w", err)
			}
			project, err := s.catalog.GetProject(gctx, version.ProjectID)
			if err != nil {
				return fmt.Errorf("modpack project: %w", err)
			}
			srv.ModpackID = version.ID
			srv.Project = &project
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Server{}, s.fail("fetch server data", serverID, err)
	}
	srv.Backups = backups

	s.mu.Lock()
	s.servers[serverID] = srv
	s.lastErr = nil
	s.mu.Unlock()

	s.notify(serverID)
	return cloneServer(srv), nil
}

// ListServers fetches the full collection of servers visible to the
// session. The result is read-through only: it never populates the
// cache.
func (s *Store) ListServers(ctx context.Context) ([]domain.Server, error) {
	servers, err := s.panel.ListServers(ctx)
	if err != nil {
		return nil, s.fail("list servers", "", err)
	}
	return servers, nil
}

// FetchServerBackups returns the server's backups sorted by creation
// time descending; ties keep the panel's order.
func (s *Store) FetchServerBackups(ctx context.Context, serverID string) ([]domain.Backup, error) {
	backups, err := s.panel.ListBackups(ctx, serverID)
	if err != nil {
		return nil, s.fail("fetch server backups", serverID, err)
	}
	sortBackups(backups)
	return backups, nil
}

// FetchModpackVersion resolves version metadata for a modpack version ID
// via the unauthenticated catalog API.
func (s *Store) FetchModpackVersion(ctx context.Context, versionID string) (domain.ModpackVersion, error) {
	version, err := s.catalog.GetVersion(ctx, versionID)
	if err != nil {
		return domain.ModpackVersion{}, s.fail("fetch modpack version", "", err)
	}
	return version, nil
}

// FetchProject resolves project metadata via the catalog API.
func (s *Store) FetchProject(ctx context.Context, projectID string) (domain.Project, error) {
	project, err := s.catalog.GetProject(ctx, projectID)
	if err != nil {
		return domain.Project{}, s.fail("fetch project", "", err)
	}
	return project, nil
}

// sortBackups orders backups newest-first, preserving input order for
// equal timestamps.
func sortBackups(backups []domain.Backup) {
	sort.SliceStable(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})
}
