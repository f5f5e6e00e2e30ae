package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/butterfly/internal/cli"
	"github.com/aretw0/butterfly/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the diagram for consistency",
	Long: `Loads the diagram and reports associations that reference missing actors or use cases.

It also warns about use cases nobody can see, actors with an empty portal and
repeated titles. With --strict those warnings fail the validation.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Diagram is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("strict", false, "Treat warnings as errors")
}

func runValidate(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	d, err := cli.LoadDiagram(context.Background(), cfg.Diagram)
	if err != nil {
		return err
	}

	strict, _ := cmd.Flags().GetBool("strict")
	if err := validator.ValidateDiagram(d, strict); err != nil {
		return err
	}
	for _, f := range validator.Lint(d) {
		fmt.Printf("warning: %s\n", f)
	}
	fmt.Printf("%d actors, %d use cases, %d associations\n",
		len(d.Actors()), len(d.UseCases()), len(d.Associations()))
	return nil
}
