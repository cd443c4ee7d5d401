package mod

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/auditlog"
	"github.com/vgskye/craftdeck/internal/session"
)

func ReinstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "reinstall <mod-id> <version-id>",
		Short:        "Reinstall a mod at a specific version",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			modID, versionID := args[0], args[1]

			serverID, err := session.DefaultServer(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}
			s, err := session.Open()
			if err != nil {
				return err
			}

			err = auditlog.Record("craftdeck mod reinstall", serverID, modID, func() error {
				return s.ReinstallMod(cmd.Context(), serverID, modID, versionID)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Reinstalled %s at %s on %s\n", modID, versionID, serverID)
			return nil
		},
	}
}
