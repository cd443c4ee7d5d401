package backup

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/session"
)

func DownloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "download <backup-id>",
		Short:        "Print a download URL for a backup",
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

			url, err := s.DownloadBackup(cmd.Context(), serverID, backupID)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
}
