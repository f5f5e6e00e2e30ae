package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/butterfly/internal/cli"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts Butterfly as an MCP server so agents can render portals and press
buttons as tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		useSSE, _ := cmd.Flags().GetBool("sse")
		port, _ := cmd.Flags().GetInt("port")

		// Create a context that cancels on interrupt signal
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return withApp(ctx, cmd, func(app *cli.App) error {
			srv := cli.NewMCPServer(app)

			if !useSSE {
				// Ensure logs don't corrupt JSON-RPC on Stdout
				log.SetOutput(os.Stderr)
				app.Logger.Info("Starting Butterfly MCP Server (Stdio)...")
				if err := srv.ServeStdio(); err != nil {
					return fmt.Errorf("MCP server execution failed: %w", err)
				}
				return nil
			}

			app.Logger.Info("Starting Butterfly MCP Server (SSE)", slog.Int("port", port))
			if err := srv.ServeSSE(ctx, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("MCP server execution failed: %w", err)
			}
			app.Logger.Info("MCP Server stopped gracefully")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().Bool("sse", false, "Serve over SSE instead of stdio")
	mcpCmd.Flags().Int("port", 8080, "Port for the SSE transport")
}
