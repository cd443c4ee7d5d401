package server

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vgskye/craftdeck/internal/session"
)

func ConsoleCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "console",
		Short:        "Stream the live server console",
		Long:         "Attach to the server's console over a websocket. Lines typed on stdin are sent as commands. Press Ctrl+C to detach.",
		Args:         cobra.NoArgs,
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

			ticket, err := s.RequestWebsocket(cmd.Context(), serverID)
			if err != nil {
				return err
			}

			header := http.Header{}
			header.Set("Authorization", "Bearer "+ticket.Token)
			conn, resp, err := websocket.DefaultDialer.DialContext(cmd.Context(), ticket.URL, header)
			if err != nil {
				if resp != nil {
					return fmt.Errorf("console dial failed (%s): %w", resp.Status, err)
				}
				return fmt.Errorf("console dial failed: %w", err)
			}
			defer conn.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Attached to %s. Ctrl+C to detach.\n", serverID)

			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt)
			defer signal.Stop(interrupt)

			done := make(chan error, 1)
			go func() {
				for {
					_, message, err := conn.ReadMessage()
					if err != nil {
						done <- err
						return
					}
					fmt.Fprintln(cmd.OutOrStdout(), string(message))
				}
			}()

			go func() {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					line := scanner.Text()
					if line == "" {
						continue
					}
					if err := conn.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
						log.Debug().Err(err).Msg("console write failed")
						return
					}
				}
			}()

			select {
			case err := <-done:
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					return nil
				}
				return fmt.Errorf("console stream: %w", err)
			case <-interrupt:
				msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
				_ = conn.WriteMessage(websocket.CloseMessage, msg)
				return nil
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}
		},
	}
}
