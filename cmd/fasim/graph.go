package main

import (
	"fmt"

	"github.com/aretw0/fasim/internal/cli"
	"github.com/aretw0/fasim/internal/presentation/graph"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the automaton as a Mermaid diagram",
	Long: `Outputs a Mermaid diagram (graph LR) of the transition table.
With --start, the trajectory of --inputs is highlighted on the diagram.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, _ := cmd.Flags().GetString("automaton")
		start, _ := cmd.Flags().GetString("start")
		inputs, _ := cmd.Flags().GetString("inputs")

		m, err := cli.LoadMachine(cmd.Context(), ref, app.cfg, app.logger, domain.LifecycleHooks{})
		if err != nil {
			return err
		}

		var overlay *graph.GraphOverlay
		if cmd.Flags().Changed("start") {
			traj := m.Simulate(cmd.Context(), start, m.SplitInputs(inputs)...)
			overlay = graph.OverlayFromTrajectory(traj)
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(m.Table(), overlay))
		return err
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	addAutomatonFlag(graphCmd, true)
	graphCmd.Flags().String("start", "", "Start state of a trajectory to highlight")
	graphCmd.Flags().String("inputs", "", "Delimiter-joined inputs of the highlighted trajectory")
}
