package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/vgskye/craftdeck/internal/domain"
)

// apiBackup is the panel's backup resource.
type apiBackup struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	CreatedAt string `json:"created_at"`
}

func toDomainBackup(b apiBackup) domain.Backup {
	created, _ := time.Parse(time.RFC3339, b.CreatedAt)
	return domain.Backup{
		ID:        b.ID,
		Name:      b.Name,
		Size:      b.Size,
		CreatedAt: created,
	}
}

func backupPath(serverID string, rest ...string) string {
	p := "/servers/" + url.PathEscape(serverID) + "/backups"
	for _, r := range rest {
		p += "/" + url.PathEscape(r)
	}
	return p
}

// ListBackups returns a server's backups in the order the panel reports
// them. Sorting is the caller's concern.
func (c *Client) ListBackups(ctx context.Context, serverID string) ([]domain.Backup, error) {
	var out []apiBackup
	if err := c.doJSON(ctx, http.MethodGet, backupPath(serverID), nil, &out); err != nil {
		return nil, err
	}
	backups := make([]domain.Backup, 0, len(out))
	for _, b := range out {
		backups = append(backups, toDomainBackup(b))
	}
	return backups, nil
}

// CreateBackup takes a new named snapshot of the server.
func (c *Client) CreateBackup(ctx context.Context, serverID, name string) (domain.Backup, error) {
	var out apiBackup
	if err := c.doJSON(ctx, http.MethodPost, backupPath(serverID), nameBody{Name: name}, &out); err != nil {
		return domain.Backup{}, err
	}
	return toDomainBackup(out), nil
}

// RenameBackup changes a backup's display name.
func (c *Client) RenameBackup(ctx context.Context, serverID, backupID, name string) error {
	return c.doJSON(ctx, http.MethodPost, backupPath(serverID, backupID, "rename"), nameBody{Name: name}, nil)
}

// DeleteBackup removes a backup permanently.
func (c *Client) DeleteBackup(ctx context.Context, serverID, backupID string) error {
	return c.doJSON(ctx, http.MethodDelete, backupPath(serverID, backupID), nil, nil)
}

// RestoreBackup rolls the server's state back to the given backup.
func (c *Client) RestoreBackup(ctx context.Context, serverID, backupID string) error {
	return c.doJSON(ctx, http.MethodPost, backupPath(serverID, backupID, "restore"), nil, nil)
}

// DownloadBackup returns a one-shot download link for a backup archive.
func (c *Client) DownloadBackup(ctx context.Context, serverID, backupID string) (string, error) {
	var out apiDownload
	if err := c.doJSON(ctx, http.MethodGet, backupPath(serverID, backupID, "download"), nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}
