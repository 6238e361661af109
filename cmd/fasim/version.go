package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/fasim"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fasim",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "fasim version %s\n", strings.TrimSpace(fasim.Version))
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
