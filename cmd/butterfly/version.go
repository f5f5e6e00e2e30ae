package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/butterfly"
	"github.com/aretw0/butterfly/internal/presentation/tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of butterfly",
	Run: func(cmd *cobra.Command, args []string) {
		version := strings.TrimSpace(butterfly.Version)
		if term.IsTerminal(int(os.Stdout.Fd())) {
			tui.PrintBanner(os.Stdout, version)
			return
		}
		fmt.Printf("butterfly version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
