package main

import (
	"github.com/aretw0/fasim/internal/cli"
	"github.com/aretw0/fasim/internal/presentation/report"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate START [INPUT...]",
	Short: "Run a single simulation given on the command line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, _ := cmd.Flags().GetString("automaton")
		output, _ := cmd.Flags().GetString("output")

		m, err := cli.LoadMachine(cmd.Context(), ref, app.cfg, app.logger, domain.LifecycleHooks{})
		if err != nil {
			return err
		}

		traj := m.Simulate(cmd.Context(), args[0], args[1:]...)
		out := cmd.OutOrStdout()
		rep := report.New(out, report.WithColor(cli.ColorEnabled(app.cfg.Color, out)))
		if output == report.FormatText || output == "" {
			return rep.WriteTrajectory(traj)
		}
		return rep.WriteResult(output, domain.Result{
			Simulation: domain.Simulation{Start: args[0], Inputs: args[1:]},
			Trajectory: traj,
		})
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	addAutomatonFlag(simulateCmd, true)
	simulateCmd.Flags().StringP("output", "o", report.FormatText, "Trajectory format: text, json or yaml")
}
