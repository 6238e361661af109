package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/fasim"
	"github.com/aretw0/fasim/internal/config"
	"github.com/aretw0/fasim/internal/logging"
	"github.com/aretw0/fasim/internal/presentation/report"
	"github.com/aretw0/fasim/internal/presentation/tui"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/aretw0/fasim/pkg/observability"
)

// Prompts shown when a description source is not given on the command line.
const (
	PromptAutomaton   = "Enter a finite automaton's file: "
	PromptSimulations = "Enter a start-state and input file: "
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	// Automaton and Simulations are source references; empty means prompt for them.
	Automaton   string
	Simulations string
	Output      string
	Banner      bool
	Debug       bool

	Config config.Config
	Logger *slog.Logger
	Hooks  domain.LifecycleHooks

	In  io.Reader
	Out io.Writer
}

// RunSession loads an automaton, prints it, then replays every simulation
// line and prints each trajectory.
func RunSession(ctx context.Context, opts RunOptions) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	hooks := opts.Hooks
	if opts.Debug {
		hooks = observability.CombineHooks(hooks, createDebugHooks(opts.Logger))
	}

	if opts.Banner {
		tui.PrintBanner(opts.Out, fasim.Version)
	}

	in := bufio.NewReader(opts.In)
	rep := report.New(opts.Out, report.WithColor(ColorEnabled(opts.Config.Color, opts.Out)))

	automaton := opts.Automaton
	if automaton == "" {
		var err error
		if automaton, err = prompt(opts.Out, in, PromptAutomaton); err != nil {
			return err
		}
	}

	m, err := LoadMachine(ctx, automaton, opts.Config, opts.Logger, hooks)
	if err != nil {
		return err
	}
	if err := rep.WriteTable(m.Table()); err != nil {
		return err
	}
	fmt.Fprintln(opts.Out)

	simulations := opts.Simulations
	if simulations == "" {
		if simulations, err = prompt(opts.Out, in, PromptSimulations); err != nil {
			return err
		}
		fmt.Fprintln(opts.Out)
	}

	lines, err := LoadLines(ctx, simulations, opts.Config)
	if err != nil {
		return err
	}
	results, err := m.ReplayLines(ctx, simulations, lines)
	if err != nil {
		return err
	}

	for _, res := range results {
		if err := rep.WriteResult(opts.Output, res); err != nil {
			return err
		}
	}
	opts.Logger.Info("Session finished", "automaton", automaton, "simulations", len(results))
	return nil
}
