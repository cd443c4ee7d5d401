package server

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/auditlog"
	"github.com/vgskye/craftdeck/internal/session"
)

func ConfigFileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Read and write server configuration files",
	}

	cmd.AddCommand(fileGetCommand())
	cmd.AddCommand(fileSetCommand())

	return cmd
}

func fileGetCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:          "get <name>",
		Short:        "Print a configuration file, e.g. server.properties",
		Args:         cobra.ExactArgs(1),
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

			data, err := s.FetchConfigFile(cmd.Context(), serverID, args[0])
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", output, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
				return nil
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the file to a local path instead of stdout")

	return cmd
}

func fileSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "set <name> <local-path>",
		Short:        "Replace a configuration file with local content",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fileName, localPath := args[0], args[1]

			data, err := os.ReadFile(localPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", localPath, err)
			}

			serverID, err := session.DefaultServer(cmd.Flag("server").Value.String())
			if err != nil {
				return err
			}
			s, err := session.Open()
			if err != nil {
				return err
			}

			err = auditlog.Record("craftdeck server file set", serverID, fileName, func() error {
				return s.SaveConfigFile(cmd.Context(), serverID, fileName, data)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s to %s\n", fileName, serverID)
			return nil
		},
	}
}
