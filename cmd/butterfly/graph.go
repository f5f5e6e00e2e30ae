package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/butterfly/internal/cli"
	"github.com/aretw0/butterfly/internal/presentation/graph"
	"github.com/aretw0/butterfly/pkg/domain"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the diagram as a Mermaid graph",
	Long: `Prints the use-case diagram as a Mermaid flowchart. With --actor, the actor
and the use cases visible to it are highlighted.`,
	Run: func(cmd *cobra.Command, args []string) {
		actor, _ := cmd.Flags().GetString("actor")

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

		var overlay *graph.GraphOverlay
		if actor != "" {
			overlay = &graph.GraphOverlay{Actor: domain.NewActor(actor)}
		}
		fmt.Println(graph.GenerateMermaid(d, overlay))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("actor", "", "Highlight what this actor sees")
}
