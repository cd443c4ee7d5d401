package server

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/auditlog"
	"github.com/vgskye/craftdeck/internal/session"
)

func WorldCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "world",
		Short: "Export and download the server's world",
	}

	cmd.AddCommand(worldExportCommand())
	cmd.AddCommand(worldURLCommand())

	return cmd
}

func worldExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "export",
		Short:        "Start packaging the world for download",
		Args:         cobra.NoArgs,
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

			err = auditlog.Record("craftdeck server world export", serverID, "", func() error {
				return s.InitiateWorldDownload(cmd.Context(), serverID)
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "World export started. Run 'craftdeck server world url' once packaging finishes.")
			return nil
		},
	}
}

func worldURLCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "url",
		Short:        "Print the download URL for a packaged world",
		Args:         cobra.NoArgs,
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

			url, err := s.GetWorldDownloadURL(cmd.Context(), serverID)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
}
