package config

import "github.com/spf13/cobra"

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage persistent craftdeck configuration",
		Long:  `Read and write configuration values stored in the user config file.`,
	}

	cmd.AddCommand(GetCommand())
	cmd.AddCommand(SetCommand())

	return cmd
}
