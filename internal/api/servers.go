package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/vgskye/craftdeck/internal/domain"
)

// --- Wire types ---

// apiServer is the panel's server resource.
type apiServer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Subdomain   string `json:"subdomain"`
	Address     string `json:"address"`
	GameVersion string `json:"game_version"`
	Modpack     string `json:"modpack"`
	CreatedAt   string `json:"created_at"`
}

// apiServerList is the envelope for the server collection.
type apiServerList struct {
	Data []apiServer `json:"data"`
}

// apiWebsocket is the live-connection ticket response.
type apiWebsocket struct {
	URL   string `json:"url"`
	Token string `json:"token"`
}

// apiDownload wraps a one-shot download link.
type apiDownload struct {
	URL string `json:"url"`
}

type powerBody struct {
	Action string `json:"action"`
}

type nameBody struct {
	Name string `json:"name"`
}

type reinstallBody struct {
	ProjectID string `json:"project_id"`
	VersionID string `json:"version_id"`
}

func toDomainServer(s apiServer) domain.Server {
	created, _ := time.Parse(time.RFC3339, s.CreatedAt)
	return domain.Server{
		ID:          s.ID,
		Name:        s.Name,
		Status:      s.Status,
		Subdomain:   s.Subdomain,
		Address:     s.Address,
		GameVersion: s.GameVersion,
		Modpack:     s.Modpack,
		CreatedAt:   created,
	}
}

// --- Server operations ---

// GetServer fetches a single server record.
func (c *Client) GetServer(ctx context.Context, serverID string) (domain.Server, error) {
	var out apiServer
	path := "/servers/" + url.PathEscape(serverID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return domain.Server{}, err
	}
	return toDomainServer(out), nil
}

// ListServers fetches the full collection of servers visible to the
// session credential.
func (c *Client) ListServers(ctx context.Context) ([]domain.Server, error) {
	var out apiServerList
	if err := c.doJSON(ctx, http.MethodGet, "/servers", nil, &out); err != nil {
		return nil, err
	}
	servers := make([]domain.Server, 0, len(out.Data))
	for _, s := range out.Data {
		servers = append(servers, toDomainServer(s))
	}
	return servers, nil
}

// RequestWebsocket requests a live console ticket for a server.
func (c *Client) RequestWebsocket(ctx context.Context, serverID string) (domain.WebsocketTicket, error) {
	var out apiWebsocket
	path := "/servers/" + url.PathEscape(serverID) + "/ws"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return domain.WebsocketTicket{}, err
	}
	return domain.WebsocketTicket{URL: out.URL, Token: out.Token}, nil
}

// SendPowerAction issues a power command. The panel applies it
// asynchronously; callers re-fetch to observe the state change.
func (c *Client) SendPowerAction(ctx context.Context, serverID string, action domain.PowerAction) error {
	if !action.Valid() {
		return fmt.Errorf("panel: invalid power action %q", action)
	}
	path := "/servers/" + url.PathEscape(serverID) + "/power"
	return c.doJSON(ctx, http.MethodPost, path, powerBody{Action: string(action)}, nil)
}

// RenameServer changes a server's display name.
func (c *Client) RenameServer(ctx context.Context, serverID, name string) error {
	path := "/servers/" + url.PathEscape(serverID) + "/name"
	return c.doJSON(ctx, http.MethodPost, path, nameBody{Name: name}, nil)
}

// ReinstallServer reprovisions a server onto a different catalog
// project/version. Destroys the current installation.
func (c *Client) ReinstallServer(ctx context.Context, serverID, projectID, versionID string) error {
	path := "/servers/" + url.PathEscape(serverID) + "/reinstall"
	return c.doJSON(ctx, http.MethodPost, path, reinstallBody{ProjectID: projectID, VersionID: versionID}, nil)
}

// InitiateWorldDownload asks the panel to start exporting the server's
// world into a downloadable artifact.
func (c *Client) InitiateWorldDownload(ctx context.Context, serverID string) error {
	path := "/servers/" + url.PathEscape(serverID) + "/world/download"
	return c.doJSON(ctx, http.MethodPost, path, nil, nil)
}

// GetWorldDownloadURL returns the link for a previously initiated world
// export.
func (c *Client) GetWorldDownloadURL(ctx context.Context, serverID string) (string, error) {
	var out apiDownload
	path := "/servers/" + url.PathEscape(serverID) + "/world/download"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// GetConfigFile reads a named configuration file's contents. The
// contents are opaque bytes.
func (c *Client) GetConfigFile(ctx context.Context, serverID, fileName string) ([]byte, error) {
	path := "/servers/" + url.PathEscape(serverID) + "/config/" + url.PathEscape(fileName)
	return c.doRaw(ctx, http.MethodGet, path, nil, "")
}

// SaveConfigFile overwrites a named configuration file's contents.
func (c *Client) SaveConfigFile(ctx context.Context, serverID, fileName string, data []byte) error {
	path := "/servers/" + url.PathEscape(serverID) + "/config/" + url.PathEscape(fileName)
	_, err := c.doRaw(ctx, http.MethodPut, path, data, "application/octet-stream")
	return err
}
