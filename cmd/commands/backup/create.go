package backup

import (
	"fmt"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/auditlog"
	"github.com/vgskye/craftdeck/internal/domain"
	"github.com/vgskye/craftdeck/internal/session"
)

func CreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "create <name>",
		Short:        "Create a new backup of the server",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			serverID, err := session.DefaultServer(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}
			s, err := session.Open()
			if err != nil {
				return err
			}

			var created domain.Backup
			err = auditlog.Record("craftdeck backup create", serverID, name, func() error {
				var opErr error
				spinErr := spinner.New().
					Title("Creating backup...").
					Action(func() {
						created, opErr = s.CreateBackup(cmd.Context(), serverID, name)
					}).
					Run()
				if spinErr != nil {
					return spinErr
				}
				return opErr
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created backup %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
}
