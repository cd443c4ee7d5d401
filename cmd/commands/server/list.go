package server

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/session"
)

func ListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all servers",
		Long:  `List all servers visible to the stored session credential.`,
		Run: func(cmd *cobra.Command, args []string) {
			s, err := session.Open()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return
			}

			servers, err := s.ListServers(cmd.Context())
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error listing servers: %v\n", err)
				return
			}

			if len(servers) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No servers found.")
				return
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSTATUS\tSUBDOMAIN\tVERSION")
			fmt.Fprintln(w, "--\t----\t------\t---------\t-------")

			for _, srv := range servers {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					srv.ID,
					srv.Name,
					srv.Status,
					srv.Subdomain,
					srv.GameVersion,
				)
			}

			w.Flush()
		},
	}
}
