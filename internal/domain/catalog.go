package domain

// Project is catalog metadata for a modpack or mod, resolved by ID from
// the public catalog API. Read-only from this module's perspective.
type Project struct {
	ID          string `json:"id"`
	Slug        string `json:"slug,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`
}

// ModpackVersion is a single published version of a catalog project.
// A server's Modpack field references one of these by ID.
type ModpackVersion struct {
	ID            string `json:"id"`
	ProjectID     string `json:"project_id"`
	Name          string `json:"name"`
	VersionNumber string `json:"version_number"`
}
