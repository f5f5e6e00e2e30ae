package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/butterfly/internal/cli"
	"github.com/aretw0/butterfly/pkg/diagram/codegen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a Go portal definition from the diagram",
	Long: `Writes Go source declaring one portal button per use case, with its actor set
spelled out, so a diagram can be compiled into a program.`,
	Run: func(cmd *cobra.Command, args []string) {
		pkg, _ := cmd.Flags().GetString("package")
		name, _ := cmd.Flags().GetString("name")
		out, _ := cmd.Flags().GetString("output")

		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		d, err := cli.LoadDiagram(context.Background(), cfg.Diagram)
		if err != nil {
			fmt.Printf("Error loading diagram: %v\n", err)
			os.Exit(1)
		}

		src, err := codegen.Generate(d, pkg, name)
		if err != nil {
			fmt.Printf("Error generating code: %v\n", err)
			os.Exit(1)
		}

		if out == "" {
			fmt.Print(string(src))
			return
		}
		if err := os.WriteFile(out, src, 0o644); err != nil {
			fmt.Printf("Error writing %s: %v\n", out, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().String("package", "portal", "Package name of the generated file")
	generateCmd.Flags().String("name", "Portal", "Name of the generated portal function")
	generateCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
}
