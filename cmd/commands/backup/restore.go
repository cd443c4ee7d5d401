package backup

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/auditlog"
	"github.com/vgskye/craftdeck/internal/session"
)

func RestoreCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:          "restore <backup-id>",
		Short:        "Restore the server from a backup",
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
					Title(fmt.Sprintf("Restore %s from backup %s? Current server files will be replaced.", serverID, backupID)).
					Affirmative("Yes, restore").
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

			err = auditlog.Record("craftdeck backup restore", serverID, backupID, func() error {
				var opErr error
				spinErr := spinner.New().
					Title("Requesting restore...").
					Action(func() {
						opErr = s.RestoreBackup(cmd.Context(), serverID, backupID)
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

			fmt.Fprintf(cmd.OutOrStdout(), "Restore from %s started\n", backupID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
