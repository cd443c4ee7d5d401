package store

import (
	"context"

	"github.com/vgskye/craftdeck/internal/domain"
)

// Mutating panel operations. None of these touch the local cache (except
// UpdateServerName, which merges the new name into an existing entry):
// the panel applies changes asynchronously, so callers re-fetch to
// observe them.

// RequestWebsocket requests a live console ticket for a server.
func (s *Store) RequestWebsocket(ctx context.Context, serverID string) (domain.WebsocketTicket, error) {
	ticket, err := s.panel.RequestWebsocket(ctx, serverID)
	if err != nil {
		return domain.WebsocketTicket{}, s.fail("request websocket", serverID, err)
	}
	return ticket, nil
}

// SendPowerAction issues a power command against a server.
func (s *Store) SendPowerAction(ctx context.Context, serverID string, action domain.PowerAction) error {
	if err := s.panel.SendPowerAction(ctx, serverID, action); err != nil {
		return s.fail("send power action", serverID, err)
	}
	return nil
}

// UpdateServerName renames a server on the panel. On success the new
// name is merged into the cache entry when one exists; a missing entry
// produces a warning, never a new entry.
func (s *Store) UpdateServerName(ctx context.Context, serverID, name string) error {
	if err := s.panel.RenameServer(ctx, serverID, name); err != nil {
		return s.fail("update server name", serverID, err)
	}
	s.UpdateServerData(serverID, domain.ServerPatch{Name: &name})
	return nil
}

// CreateBackup takes a new named snapshot of a server.
func (s *Store) CreateBackup(ctx context.Context, serverID, name string) (domain.Backup, error) {
	backup, err := s.panel.CreateBackup(ctx, serverID, name)
	if err != nil {
		return domain.Backup{}, s.fail("create backup", serverID, err)
	}
	return backup, nil
}

// RenameBackup changes a backup's display name.
func (s *Store) RenameBackup(ctx context.Context, serverID, backupID, name string) error {
	if err := s.panel.RenameBackup(ctx, serverID, backupID, name); err != nil {
		return s.fail("rename backup", serverID, err)
	}
	return nil
}

// DeleteBackup removes a backup permanently.
func (s *Store) DeleteBackup(ctx context.Context, serverID, backupID string) error {
	if err := s.panel.DeleteBackup(ctx, serverID, backupID); err != nil {
		return s.fail("delete backup", serverID, err)
	}
	return nil
}

// RestoreBackup rolls a server back to the given backup.
func (s *Store) RestoreBackup(ctx context.Context, serverID, backupID string) error {
	if err := s.panel.RestoreBackup(ctx, serverID, backupID); err != nil {
		return s.fail("restore backup", serverID, err)
	}
	return nil
}

// DownloadBackup returns a one-shot download link for a backup archive.
func (s *Store) DownloadBackup(ctx context.Context, serverID, backupID string) (string, error) {
	url, err := s.panel.DownloadBackup(ctx, serverID, backupID)
	if err != nil {
		return "", s.fail("download backup", serverID, err)
	}
	return url, nil
}

// InitiateWorldDownload starts exporting the server's world into a
// downloadable artifact.
func (s *Store) InitiateWorldDownload(ctx context.Context, serverID string) error {
	if err := s.panel.InitiateWorldDownload(ctx, serverID); err != nil {
		return s.fail("initiate world download", serverID, err)
	}
	return nil
}

// GetWorldDownloadURL returns the link for a previously initiated world
// export.
func (s *Store) GetWorldDownloadURL(ctx context.Context, serverID string) (string, error) {
	url, err := s.panel.GetWorldDownloadURL(ctx, serverID)
	if err != nil {
		return "", s.fail("get world download url", serverID, err)
	}
	return url, nil
}

// FetchConfigFile reads a named configuration file's contents. The data
// is opaque to the store.
func (s *Store) FetchConfigFile(ctx context.Context, serverID, fileName string) ([]byte, error) {
	data, err := s.panel.GetConfigFile(ctx, serverID, fileName)
	if err != nil {
		return nil, s.fail("fetch config file", serverID, err)
	}
	return data, nil
}

// SaveConfigFile overwrites a named configuration file's contents.
func (s *Store) SaveConfigFile(ctx context.Context, serverID, fileName string, data []byte) error {
	if err := s.panel.SaveConfigFile(ctx, serverID, fileName, data); err != nil {
		return s.fail("save config file", serverID, err)
	}
	return nil
}

// CheckSubdomainAvailability reports whether a public subdomain is free.
func (s *Store) CheckSubdomainAvailability(ctx context.Context, subdomain string) (bool, error) {
	available, err := s.panel.CheckSubdomainAvailability(ctx, subdomain)
	if err != nil {
		return false, s.fail("check subdomain availability", "", err)
	}
	return available, nil
}

// ChangeSubdomain reassigns a server's public subdomain.
func (s *Store) ChangeSubdomain(ctx context.Context, serverID, subdomain string) error {
	if err := s.panel.ChangeSubdomain(ctx, serverID, subdomain); err != nil {
		return s.fail("change subdomain", serverID, err)
	}
	return nil
}

// InstallMod adds a catalog mod version to a server's mod list.
func (s *Store) InstallMod(ctx context.Context, serverID, projectID, versionID string) error {
	if err := s.panel.InstallMod(ctx, serverID, projectID, versionID); err != nil {
		return s.fail("install mod", serverID, err)
	}
	return nil
}

// RemoveMod removes an installed mod from a server.
func (s *Store) RemoveMod(ctx context.Context, serverID, modID string) error {
	if err := s.panel.RemoveMod(ctx, serverID, modID); err != nil {
		return s.fail("remove mod", serverID, err)
	}
	return nil
}

// ReinstallMod replaces an installed mod with a different version.
func (s *Store) ReinstallMod(ctx context.Context, serverID, modID, versionID string) error {
	if err := s.panel.ReinstallMod(ctx, serverID, modID, versionID); err != nil {
		return s.fail("reinstall mod", serverID, err)
	}
	return nil
}

// ReinstallServer reprovisions a server onto a different catalog
// project/version.
func (s *Store) ReinstallServer(ctx context.Context, serverID, projectID, versionID string) error {
	if err := s.panel.ReinstallServer(ctx, serverID, projectID, versionID); err != nil {
		return s.fail("reinstall server", serverID, err)
	}
	return nil
}
