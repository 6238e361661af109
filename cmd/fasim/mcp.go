package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aretw0/fasim/internal/cli"
	"github.com/aretw0/fasim/pkg/adapters/mcp"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes an automaton to AI agents as MCP tools (describe_automaton, simulate).

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, _ := cmd.Flags().GetString("automaton")
		if cmd.Flags().Changed("transport") {
			app.cfg.MCP.Transport, _ = cmd.Flags().GetString("transport")
		}
		if cmd.Flags().Changed("port") {
			app.cfg.MCP.Port, _ = cmd.Flags().GetInt("port")
		}

		m, err := cli.LoadMachine(cmd.Context(), ref, app.cfg, app.logger, domain.LifecycleHooks{})
		if err != nil {
			return err
		}
		srv := mcp.NewServer(m)

		switch app.cfg.MCP.Transport {
		case "stdio":
			app.logger.Info("Starting fasim MCP server (stdio)")
			return srv.ServeStdio()
		case "sse":
			app.logger.Info("Starting fasim MCP server (SSE)", "port", app.cfg.MCP.Port)
			if err := srv.ServeSSE(cmd.Context(), app.cfg.MCP.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			app.logger.Info("MCP server stopped gracefully")
			return nil
		default:
			return fmt.Errorf("unknown transport %q, supported: stdio, sse", app.cfg.MCP.Transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	addAutomatonFlag(mcpCmd, true)
	mcpCmd.Flags().String("transport", "", "Transport protocol to use: 'stdio' or 'sse' (default from config)")
	mcpCmd.Flags().Int("port", 0, "Port to listen on, SSE only (default from config)")
}
