package server

import "github.com/spf13/cobra"

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Manage your hosted game servers",
		Long:  `Inspect servers, control power state, rename, and manage server-level resources.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(PowerCommand("start", "Start the server"))
	cmd.AddCommand(PowerCommand("stop", "Stop the server"))
	cmd.AddCommand(PowerCommand("restart", "Restart the server"))
	cmd.AddCommand(PowerCommand("kill", "Force-kill the server process"))
	cmd.AddCommand(RenameCommand())
	cmd.AddCommand(SubdomainCommand())
	cmd.AddCommand(ReinstallCommand())
	cmd.AddCommand(WorldCommand())
	cmd.AddCommand(ConfigFileCommand())
	cmd.AddCommand(ConsoleCommand())

	cmd.PersistentFlags().String("server", "", "Server ID (overrides the configured default)")

	return cmd
}
