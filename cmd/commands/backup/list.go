package backup

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/session"
)

func ListCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List backups for a server, newest first",
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

			backups, err := s.FetchServerBackups(cmd.Context(), serverID)
			if err != nil {
				return err
			}

			if len(backups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No backups found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSIZE\tCREATED")
			fmt.Fprintln(w, "--\t----\t----\t-------")

			for _, b := range backups {
				size := "-"
				if b.Size > 0 {
					size = humanize.IBytes(uint64(b.Size))
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					b.ID,
					b.Name,
					size,
					b.CreatedAt.Format("2006-01-02 15:04"),
				)
			}

			return w.Flush()
		},
	}
}
