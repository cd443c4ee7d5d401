package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vgskye/craftdeck/internal/auth"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a panel session token",
		Long: `Store the panel session token in the local keychain.

Example:
  craftdeck auth login`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			token, err := cmd.Flags().GetString("token")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}

			token = strings.TrimSpace(token)
			if token == "" {
				fmt.Fprint(os.Stdout, "Enter session token: ")
				bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(os.Stdout)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					return
				}
				token = strings.TrimSpace(string(bytes))
			}

			if token == "" {
				fmt.Fprintln(os.Stderr, "token cannot be empty")
				return
			}

			store := auth.DefaultStore()
			if err := store.SetToken(auth.KeyPanel, token); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}

			fmt.Fprintln(os.Stdout, "Saved panel session token")
		},
	}

	cmd.Flags().String("token", "", "Session token (prompted interactively when omitted)")

	return cmd
}
