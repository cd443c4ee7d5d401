package domain

// ServerPatch is a partial update for a cached Server. Nil fields are
// left untouched; non-nil fields overwrite the corresponding Server
// field wholesale (shallow merge).
type ServerPatch struct {
	Name        *string
	Status      *string
	Subdomain   *string
	Address     *string
	GameVersion *string
	Modpack     *string
	ModpackID   *string
	Project     *Project
	Backups     []Backup
}

// Apply merges the patch into srv, field by field.
func (p ServerPatch) Apply(srv *Server) {
	if p.Name != nil {
		srv.Name = *p.Name
	}
	if p.Status != nil {
		srv.Status = *p.Status
	}
	if p.Subdomain != nil {
		srv.Subdomain = *p.Subdomain
	}
	if p.Address != nil {
		srv.Address = *p.Address
	}
	if p.GameVersion != nil {
		srv.GameVersion = *p.GameVersion
	}
	if p.Modpack != nil {
		srv.Modpack = *p.Modpack
	}
	if p.ModpackID != nil {
		srv.ModpackID = *p.ModpackID
	}
	if p.Project != nil {
		srv.Project = p.Project
	}
	if p.Backups != nil {
		srv.Backups = p.Backups
	}
}
