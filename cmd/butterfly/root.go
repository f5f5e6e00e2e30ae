package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/butterfly/internal/cli"
	"github.com/aretw0/butterfly/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "butterfly",
	Short: "Butterfly renders actor-scoped portals from use-case diagrams",
	Long: `Butterfly turns a use-case diagram into a portal: a set of buttons, one per
use case, where each actor only sees the buttons it is associated with.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Configuration file")
	rootCmd.PersistentFlags().String("diagram", "", "Diagram file (.yaml) or Loam directory; empty uses the built-in forum demo")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// loadConfig reads the configuration file and applies the flags that were set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("diagram") {
		cfg.Diagram, _ = cmd.Flags().GetString("diagram")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if f := cmd.Flags().Lookup("actor"); f != nil && f.Changed {
		cfg.Actor = f.Value.String()
	}
	return cfg, nil
}

// withApp loads the configuration for cmd and runs fn with the resulting
// app, which is closed before withApp returns.
func withApp(ctx context.Context, cmd *cobra.Command, fn func(*cli.App) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	return cli.WithApp(ctx, cfg, fn)
}
