package mod

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/auditlog"
	"github.com/vgskye/craftdeck/internal/session"
)

func RemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "remove <mod-id>",
		Short:        "Remove an installed mod",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			modID := args[0]

			serverID, err := session.DefaultServer(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}
			s, err := session.Open()
			if err != nil {
				return err
			}

			err = auditlog.Record("craftdeck mod remove", serverID, modID, func() error {
				return s.RemoveMod(cmd.Context(), serverID, modID)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", modID, serverID)
			return nil
		},
	}
}
