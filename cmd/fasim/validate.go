package main

import (
	"fmt"

	"github.com/aretw0/fasim/internal/cli"
	"github.com/aretw0/fasim/internal/compiler"
	"github.com/aretw0/fasim/internal/validator"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check description files for malformed lines",
	Long: `Parses an automaton description and, optionally, a simulation description.
With --start, also reports states unreachable from it and transition targets
that have no line of their own. Those findings are informational.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, _ := cmd.Flags().GetString("automaton")
		simulations, _ := cmd.Flags().GetString("simulations")
		start, _ := cmd.Flags().GetString("start")
		out := cmd.OutOrStdout()

		m, err := cli.LoadMachine(cmd.Context(), ref, app.cfg, app.logger, domain.LifecycleHooks{})
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintf(out, "%s: %d state(s) ✅\n", ref, m.Table().Len())

		if simulations != "" {
			lines, err := cli.LoadLines(cmd.Context(), simulations, app.cfg)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			parser := compiler.NewParser(compiler.WithDelimiter(app.cfg.Delimiter), compiler.WithTrimSpace(app.cfg.TrimSpace))
			sims, err := parser.ParseSimulations(simulations, lines)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			fmt.Fprintf(out, "%s: %d simulation(s) ✅\n", simulations, len(sims))
		}

		if start != "" {
			rep, err := validator.Inspect(m.Table(), start)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			fmt.Fprintln(out, rep.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	addAutomatonFlag(validateCmd, true)
	validateCmd.Flags().StringP("simulations", "s", "", "Simulation description source to check as well")
	validateCmd.Flags().String("start", "", "Report reachability from this state")
}
