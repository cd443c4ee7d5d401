package api

import (
	"context"
	"net/http"
	"net/url"
)

// installModBody carries the catalog identifiers for a mod install.
type installModBody struct {
	RinthIDs rinthIDs `json:"rinth_ids"`
}

type rinthIDs struct {
	ProjectID string `json:"project_id"`
	VersionID string `json:"version_id"`
}

type reinstallModBody struct {
	VersionID string `json:"version_id"`
}

func modPath(serverID string, rest ...string) string {
	p := "/servers/" + url.PathEscape(serverID) + "/mods"
	for _, r := range rest {
		p += "/" + url.PathEscape(r)
	}
	return p
}

// InstallMod adds a catalog mod version to the server's mod list.
func (c *Client) InstallMod(ctx context.Context, serverID, projectID, versionID string) error {
	body := installModBody{RinthIDs: rinthIDs{ProjectID: projectID, VersionID: versionID}}
	return c.doJSON(ctx, http.MethodPost, modPath(serverID), body, nil)
}

// RemoveMod removes an installed mod from the server.
func (c *Client) RemoveMod(ctx context.Context, serverID, modID string) error {
	return c.doJSON(ctx, http.MethodDelete, modPath(serverID, modID), nil, nil)
}

// ReinstallMod replaces an installed mod with a different version.
func (c *Client) ReinstallMod(ctx context.Context, serverID, modID, versionID string) error {
	return c.doJSON(ctx, http.MethodPost, modPath(serverID, modID, "reinstall"), reinstallModBody{VersionID: versionID}, nil)
}
