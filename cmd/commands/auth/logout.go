package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/auth"
)

func LogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored panel session token",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			store := auth.DefaultStore()
			err := store.DeleteToken(auth.KeyPanel)
			if errors.Is(err, auth.ErrTokenNotFound) {
				fmt.Fprintln(os.Stdout, "No session token stored")
				return
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			fmt.Fprintln(os.Stdout, "Removed panel session token")
		},
	}
}
