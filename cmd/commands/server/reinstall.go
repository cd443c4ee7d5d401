package server

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/auditlog"
	"github.com/vgskye/craftdeck/internal/session"
)

func ReinstallCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:          "reinstall <project-id> <version-id>",
		Short:        "Wipe a server and install a different modpack version",
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

			if !yes {
				confirm := false
				field := huh.NewConfirm().
					Title(fmt.Sprintf("Reinstall %s with %s@%s? Current server files will be replaced.", serverID, projectID, versionID)).
					Affirmative("Yes, reinstall").
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

			err = auditlog.Record("craftdeck server reinstall", serverID, "", func() error {
				var opErr error
				spinErr := spinner.New().
					Title("Requesting reinstall...").
					Action(func() {
						opErr = s.ReinstallServer(cmd.Context(), serverID, projectID, versionID)
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

			fmt.Fprintf(cmd.OutOrStdout(), "Reinstall of %s started with %s@%s\n", serverID, projectID, versionID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
