package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/config"
)

func SetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value.

` + config.KeysHelp(),
		Args:         cobra.ExactArgs(2),
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

			key.Set(cfg, strings.TrimSpace(args[1]))
			if err := cfg.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", key.Name)
			return nil
		},
	}
}
