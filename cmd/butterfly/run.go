package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/butterfly/internal/cli"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive portal",
	Long: `Renders the portal for an actor and lets you press its buttons.

The terminal UI is used when stdout is a terminal. Use --json for NDJSON frames
on stdout, e.g. when driving butterfly from another program.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		useTUI, _ := cmd.Flags().GetBool("tui")
		useJSON, _ := cmd.Flags().GetBool("json")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		mode := cli.ModeAuto
		switch {
		case useJSON:
			mode = cli.ModeJSON
		case useTUI:
			mode = cli.ModeTUI
		}

		return withApp(ctx, cmd, func(app *cli.App) error {
			return cli.RunInteractive(ctx, app, cli.RunOptions{Mode: mode, Actor: app.DefaultActor()})
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("actor", "", "Actor to render the portal for (default: first declared actor)")
	runCmd.Flags().Bool("tui", false, "Force the terminal UI")
	runCmd.Flags().Bool("json", false, "Exchange NDJSON frames on stdin/stdout")
}
