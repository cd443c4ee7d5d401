package server

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/auditlog"
	"github.com/vgskye/craftdeck/internal/session"
)

func RenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "rename <new-name>",
		Short:        "Rename a server",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("name cannot be empty")
			}

			serverID, err := session.DefaultServer(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}
			s, err := session.Open()
			if err != nil {
				return err
			}

			err = auditlog.Record("craftdeck server rename", serverID, name, func() error {
				return s.UpdateServerName(cmd.Context(), serverID, name)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %q\n", serverID, name)
			return nil
		},
	}
}
