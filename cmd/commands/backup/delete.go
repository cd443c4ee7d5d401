package backup

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/auditlog"
	"github.com/vgskye/craftdeck/internal/session"
)

func DeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:          "delete <backup-id>",
		Short:        "Delete a backup",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			backupID := args[0]

			serverID, err := session.DefaultServer(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}
			s, err := session.Open()
			if err != nil {
				return err
			}

			if !yes {
				confirm := false
				field := huh.NewConfirm().
					Title(fmt.Sprintf("Delete backup %s? This action cannot be undone.", backupID)).
					Affirmative("Yes, delete").
					Negative("Cancel").
					Value(&confirm)
				if err := huh.NewForm(huh.NewGroup(field)).Run(); err != nil {
					return err
				}
				if !confirm {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			err = auditlog.Record("craftdeck backup delete", serverID, backupID, func() error {
				return s.DeleteBackup(cmd.Context(), serverID, backupID)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted backup %s\n", backupID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
