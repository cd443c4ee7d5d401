package domain

import "time"

// Backup is a named, timestamped snapshot of a server's persistent state.
// Immutable once taken except for rename; deleted explicitly.
type Backup struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Size      int64     `json:"size,omitempty"` // bytes
	CreatedAt time.Time `json:"created_at"`
}
