package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/auth"
)

func StatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a panel session token is stored",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			store := auth.DefaultStore()
			_, err := store.GetToken(auth.KeyPanel)
			if errors.Is(err, auth.ErrTokenNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in (run 'craftdeck auth login')")
				return
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged in (session token stored in keychain)")
		},
	}
}
