package main

import (
	"fmt"

	"github.com/aretw0/fasim/internal/cli"
	"github.com/aretw0/fasim/internal/presentation/report"
	"github.com/aretw0/fasim/internal/presentation/tui"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the transition table of an automaton",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, _ := cmd.Flags().GetString("automaton")
		markdown, _ := cmd.Flags().GetBool("markdown")

		m, err := cli.LoadMachine(cmd.Context(), ref, app.cfg, app.logger, domain.LifecycleHooks{})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !markdown {
			return report.New(out).WriteTable(m.Table())
		}

		render, err := tui.NewRenderer(cli.IsTerminal(out))
		if err != nil {
			return err
		}
		rendered, err := render(tui.TableMarkdown(m.Table()))
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, rendered)
		return err
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)

	addAutomatonFlag(tableCmd, true)
	tableCmd.Flags().Bool("markdown", false, "Render the table as Markdown")
}
