package server

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/domain"
	"github.com/vgskye/craftdeck/internal/session"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Width(12)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

func ShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show a full server record",
		Long: `Fetch and display a server record, including its resolved modpack
project and backup list (newest first).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			serverID, err := session.DefaultServer(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}
			s, err := session.Open()
			if err != nil {
				return err
			}

			var srv domain.Server
			var fetchErr error
			_ = spinner.New().
				Title("Fetching server...").
				Action(func() {
					srv, fetchErr = s.FetchServerData(cmd.Context(), serverID)
				}).
				Run()
			if fetchErr != nil {
				return fetchErr
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderServer(srv))
			return nil
		},
	}
}

func renderServer(srv domain.Server) string {
	var b strings.Builder

	row := func(label, value string) {
		if value == "" {
			value = dimStyle.Render("-")
		}
		b.WriteString(labelStyle.Render(label) + value + "\n")
	}

	row("ID", srv.ID)
	row("Name", srv.Name)
	row("Status", srv.Status)
	row("Subdomain", srv.Subdomain)
	row("Version", srv.GameVersion)
	if srv.Project != nil {
		row("Modpack", fmt.Sprintf("%s (%s)", srv.Project.Title, srv.ModpackID))
	}
	if !srv.CreatedAt.IsZero() {
		row("Created", srv.CreatedAt.Format("2006-01-02 15:04"))
	}

	if len(srv.Backups) > 0 {
		b.WriteString("\nBackups (newest first):\n")
		for _, backup := range srv.Backups {
			b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
				backup.CreatedAt.Format("2006-01-02 15:04"),
				backup.ID,
				backup.Name,
			))
		}
	}

	return b.String()
}
