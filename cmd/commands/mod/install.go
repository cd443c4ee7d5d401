package mod

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/auditlog"
	"github.com/vgskye/craftdeck/internal/session"
)

func InstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "install <project-id> <version-id>",
		Short:        "Install a mod version from the catalog",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, versionID := args[0], args[1]

			serverID, err := session.DefaultServer(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}
			s, err := session.Open()
			if err != nil {
				return err
			}

			err = auditlog.Record("craftdeck mod install", serverID, projectID, func() error {
				return s.InstallMod(cmd.Context(), serverID, projectID, versionID)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Installed %s@%s on %s\n", projectID, versionID, serverID)
			return nil
		},
	}
}
