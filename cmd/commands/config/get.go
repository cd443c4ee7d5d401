package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/config"
)

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a configuration value",
		Long: `Print a configuration value.

` + config.KeysHelp(),
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := config.Lookup(args[0])
			if key == nil {
				return fmt.Errorf("unknown key %q (available: %s)", args[0], strings.Join(config.KeyNames(), ", "))
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			value := key.Get(cfg)
			if value == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is not set\n", key.Name)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}
