package mod

import "github.com/spf13/cobra"

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mod",
		Short: "Manage mods installed on a server",
		Long:  `Install, remove, and change the version of individual mods on a server.`,
	}

	cmd.AddCommand(InstallCommand())
	cmd.AddCommand(RemoveCommand())
	cmd.AddCommand(ReinstallCommand())

	cmd.PersistentFlags().String("server", "", "Server ID (overrides the configured default)")

	return cmd
}
