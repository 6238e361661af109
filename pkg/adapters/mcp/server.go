package mcp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/fasim"
	"github.com/aretw0/fasim/internal/presentation/report"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// SimulateArgs are the arguments of the simulate tool.
type SimulateArgs struct {
	Start  string `json:"start"`
	Inputs string `json:"inputs"`
}

// SimulateResponse is the structured result of the simulate tool.
type SimulateResponse struct {
	Report     string                `json:"report" jsonschema_description:"Human readable trajectory"`
	Trajectory domain.TrajectoryView `json:"trajectory" jsonschema_description:"Visited states; the stop state is NONE after an illegal input"`
}

// Server wraps a fasim Machine and exposes it as an MCP Server.
type Server struct {
	machine   *fasim.Machine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(machine *fasim.Machine) *Server {
	s := &Server{
		machine:   machine,
		mcpServer: server.NewMCPServer("fasim-mcp", strings.TrimSpace(fasim.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("describe_automaton",
		mcp.WithDescription("Describe the loaded finite automaton: every state and its transitions, sorted by state."),
	), s.handleDescribe)

	simulateTool := mcp.NewTool("simulate",
		mcp.WithDescription("Replay a sequence of inputs from a start state and report every state visited. "+
			"The run stops at the first input with no transition."),
		mcp.WithString("start", mcp.Required(), mcp.Description("Start state name")),
		mcp.WithString("inputs", mcp.Description("Input symbols joined by the automaton delimiter, e.g. a;a;b")),
		mcp.WithOutputSchema[SimulateResponse](),
	)
	s.mcpServer.AddTool(simulateTool, mcp.NewStructuredToolHandler(s.handleSimulate))
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var buf bytes.Buffer
	if err := report.New(&buf).WriteTable(s.machine.Table()); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("describe failed: %v", err)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func (s *Server) handleSimulate(ctx context.Context, request mcp.CallToolRequest, args SimulateArgs) (SimulateResponse, error) {
	if args.Start == "" {
		return SimulateResponse{}, errors.New("start is required")
	}

	traj := s.machine.Simulate(ctx, args.Start, s.machine.SplitInputs(args.Inputs)...)

	var buf bytes.Buffer
	if err := report.New(&buf).WriteTrajectory(traj); err != nil {
		return SimulateResponse{}, fmt.Errorf("report failed: %w", err)
	}
	return SimulateResponse{Report: buf.String(), Trajectory: traj.View()}, nil
}
