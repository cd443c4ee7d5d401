package domain

import "time"

// Server represents a provisioned game server instance on the panel.
type Server struct {
	// Core fields returned by every server endpoint.
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"` // e.g. "running", "stopped", "installing"
	Subdomain   string    `json:"subdomain,omitempty"`
	Address     string    `json:"address,omitempty"`
	GameVersion string    `json:"game_version,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	// Modpack is the catalog version ID of the installed modpack,
	// empty for vanilla servers.
	Modpack string `json:"modpack,omitempty"`

	// ModpackID and Project are resolved lazily from Modpack via the
	// catalog API; they are only set on records hydrated by a full fetch.
	ModpackID string   `json:"modpack_id,omitempty"`
	Project   *Project `json:"project,omitempty"`

	// Backups holds the server's backup list, newest first.
	Backups []Backup `json:"backups,omitempty"`
}

// WebsocketTicket is a short-lived handle for opening a live console
// connection to a server.
type WebsocketTicket struct {
	URL   string `json:"url"`
	Token string `json:"token"`
}

// PowerAction is a power command issued against a server.
type PowerAction string

const (
	PowerStart   PowerAction = "start"
	PowerStop    PowerAction = "stop"
	PowerRestart PowerAction = "restart"
	PowerKill    PowerAction = "kill"
)

// Valid reports whether the action is one the panel accepts.
func (a PowerAction) Valid() bool {
	switch a {
	case PowerStart, PowerStop, PowerRestart, PowerKill:
		return true
	}
	return false
}
