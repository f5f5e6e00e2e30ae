package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/butterfly/internal/cli"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the portal session API over HTTP. Each session holds one actor's portal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Channel to listen for interrupt or terminate signals.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return withApp(ctx, cmd, func(app *cli.App) error {
			addr := app.Config.HTTP.Addr
			if cmd.Flags().Changed("addr") {
				addr, _ = cmd.Flags().GetString("addr")
			}

			if err := cli.Serve(ctx, app, addr); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
}
