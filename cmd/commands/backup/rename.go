package backup

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/auditlog"
	"github.com/vgskye/craftdeck/internal/session"
)

func RenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "rename <backup-id> <new-name>",
		Short:        "Rename a backup",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			backupID, name := args[0], args[1]

			serverID, err := session.DefaultServer(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}
			s, err := session.Open()
			if err != nil {
				return err
			}

			err = auditlog.Record("craftdeck backup rename", serverID, name, func() error {
				return s.RenameBackup(cmd.Context(), serverID, backupID, name)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Renamed backup %s to %s\n", backupID, name)
			return nil
		},
	}
}
