package main

import (
	"github.com/aretw0/fasim/internal/cli"
	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:   "publish FROM TO",
	Short: "Copy a description into another store",
	Long: `Reads a description from FROM, checks that it parses, and stores it at TO.
Typical use pushes a local file into Redis:

  fasim publish fa.txt redis:traffic-light`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		simulations, _ := cmd.Flags().GetBool("simulations")
		kind := cli.PublishAutomaton
		if simulations {
			kind = cli.PublishSimulations
		}
		return cli.Publish(cmd.Context(), args[0], args[1], kind, app.cfg, app.logger)
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)

	publishCmd.Flags().Bool("simulations", false, "Treat the description as simulation lines")
}
