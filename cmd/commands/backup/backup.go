package backup

import "github.com/spf13/cobra"

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Manage server backups",
		Long:  `Create, list, rename, restore, delete, and download backups for a server.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(RenameCommand())
	cmd.AddCommand(DeleteCommand())
	cmd.AddCommand(RestoreCommand())
	cmd.AddCommand(DownloadCommand())

	cmd.PersistentFlags().String("server", "", "Server ID (overrides the configured default)")

	return cmd
}
