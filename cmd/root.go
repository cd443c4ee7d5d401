package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/cmd/commands/audit"
	"github.com/vgskye/craftdeck/cmd/commands/auth"
	"github.com/vgskye/craftdeck/cmd/commands/backup"
	cfgcmd "github.com/vgskye/craftdeck/cmd/commands/config"
	"github.com/vgskye/craftdeck/cmd/commands/mod"
	"github.com/vgskye/craftdeck/cmd/commands/server"
	"github.com/vgskye/craftdeck/internal/logger"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "craftdeck",
		Short: "A CLI for managing hosted game servers",
		Long: `craftdeck is a command-line client for a hosted game-server panel.
It manages server power state, backups, mods, config files, and
subdomains, and resolves modpack metadata from the public catalog.

Quick start:
  craftdeck auth login             # Store your panel session token
  craftdeck server list            # List your servers
  craftdeck server show <id>       # Full server record with backups
  craftdeck backup create <name>   # Snapshot the server`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(server.NewCommand())
	cmd.AddCommand(backup.NewCommand())
	cmd.AddCommand(mod.NewCommand())
	cmd.AddCommand(audit.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	root := rootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
