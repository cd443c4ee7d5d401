package server

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/auditlog"
	"github.com/vgskye/craftdeck/internal/session"
	"github.com/vgskye/craftdeck/internal/util"
)

func SubdomainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subdomain",
		Short: "Check and change a server's public subdomain",
	}

	cmd.AddCommand(subdomainCheckCommand())
	cmd.AddCommand(subdomainSetCommand())

	return cmd
}

func subdomainCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "check <subdomain>",
		Short:        "Check whether a subdomain is available",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			subdomain := util.NormalizeKey(args[0])
			if err := util.ValidateSubdomain(subdomain); err != nil {
				return err
			}

			s, err := session.Open()
			if err != nil {
				return err
			}

			available, err := s.CheckSubdomainAvailability(cmd.Context(), subdomain)
			if err != nil {
				return err
			}
			if available {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is available\n", subdomain)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is taken\n", subdomain)
			}
			return nil
		},
	}
}

func subdomainSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "set <subdomain>",
		Short:        "Reassign a server's public subdomain",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			subdomain := util.NormalizeKey(args[0])
			if err := util.ValidateSubdomain(subdomain); err != nil {
				return err
			}

			serverID, err := session.DefaultServer(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}
			s, err := session.Open()
			if err != nil {
				return err
			}

			err = auditlog.Record("craftdeck server subdomain set", serverID, subdomain, func() error {
				return s.ChangeSubdomain(cmd.Context(), serverID, subdomain)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Assigned %s to %s\n", subdomain, serverID)
			return nil
		},
	}
}
