package server

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/auditlog"
	"github.com/vgskye/craftdeck/internal/domain"
	"github.com/vgskye/craftdeck/internal/session"
)

// PowerCommand builds one of the power subcommands (start, stop,
// restart, kill); the action name doubles as the command name.
func PowerCommand(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:          action,
		Short:        short,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			serverID, err := session.DefaultServer(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}
			s, err := session.Open()
			if err != nil {
				return err
			}

			err = auditlog.Record("craftdeck server "+action, serverID, "", func() error {
				return s.SendPowerAction(cmd.Context(), serverID, domain.PowerAction(action))
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Sent %s to %s. Run 'craftdeck server show' to observe the state change.\n", action, serverID)
			return nil
		},
	}
}
