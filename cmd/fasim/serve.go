package main

import (
	"github.com/aretw0/fasim"
	"github.com/aretw0/fasim/internal/cli"
	httpAdapter "github.com/aretw0/fasim/pkg/adapters/http"
	"github.com/aretw0/fasim/pkg/observability"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP simulation server",
	Long: `Loads an automaton and exposes it as a JSON API over HTTP, with Prometheus
metrics on /metrics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, _ := cmd.Flags().GetString("automaton")
		if cmd.Flags().Changed("addr") {
			app.cfg.Server.Addr, _ = cmd.Flags().GetString("addr")
		}

		metrics := observability.NewMetrics()
		m, err := cli.LoadMachine(cmd.Context(), ref, app.cfg, app.logger, metrics.Hooks())
		if err != nil {
			return err
		}

		handler := httpAdapter.NewHandler(m,
			httpAdapter.WithLogger(app.logger),
			httpAdapter.WithMetricsHandler(metrics.Handler()),
		)
		app.logger.Info("Serving automaton", "source", ref, "states", m.Table().Len(), "version", fasim.Version)
		return cli.Serve(cmd.Context(), app.cfg.Server.Addr, handler, app.logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	addAutomatonFlag(serveCmd, true)
	serveCmd.Flags().String("addr", "", "Address to listen on (default from config, :8080)")
}
