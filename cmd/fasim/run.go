package main

import (
	"github.com/aretw0/fasim/internal/cli"
	"github.com/aretw0/fasim/internal/presentation/report"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Print an automaton and replay a simulation file against it",
	Long: `Loads an automaton description, prints its transition table, then runs every
line of a simulation description and prints each trajectory.
Sources not given as flags are asked for on standard input.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		automaton, _ := cmd.Flags().GetString("automaton")
		simulations, _ := cmd.Flags().GetString("simulations")
		output, _ := cmd.Flags().GetString("output")
		banner, _ := cmd.Flags().GetBool("banner")

		return cli.RunSession(cmd.Context(), cli.RunOptions{
			Automaton:   automaton,
			Simulations: simulations,
			Output:      output,
			Banner:      banner && cli.IsTerminal(cmd.OutOrStdout()),
			Debug:       app.cfg.LogLevel == "debug",
			Config:      app.cfg,
			Logger:      app.logger,
			In:          cmd.InOrStdin(),
			Out:         cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	addAutomatonFlag(runCmd, false)
	runCmd.Flags().StringP("simulations", "s", "", "Simulation description source")
	runCmd.Flags().StringP("output", "o", report.FormatText, "Trajectory format: text, json or yaml")
	runCmd.Flags().Bool("banner", false, "Print the banner when attached to a terminal")
}
