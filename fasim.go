package fasim

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/fasim/internal/compiler"
	"github.com/aretw0/fasim/internal/presentation/report"
	"github.com/aretw0/fasim/internal/runtime"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/aretw0/fasim/pkg/ports"
)

// Machine is the high-level entry point for the fasim library.
// It owns one transition table and replays input sequences against it.
// A Machine is safe for concurrent use once built.
type Machine struct {
	engine *runtime.Engine
	parser *compiler.Parser
	logger *slog.Logger
}

type options struct {
	delimiter string
	trimSpace bool
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Machine.
type Option func(*options)

// WithDelimiter sets the field separator used in descriptions (default ";").
func WithDelimiter(delim string) Option {
	return func(o *options) {
		o.delimiter = delim
	}
}

// WithTrimSpace strips whitespace around description fields.
func WithTrimSpace(trim bool) Option {
	return func(o *options) {
		o.trimSpace = trim
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) *options {
	o := &options{delimiter: domain.DefaultDelimiter}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

func newParser(o *options) *compiler.Parser {
	return compiler.NewParser(compiler.WithDelimiter(o.delimiter), compiler.WithTrimSpace(o.trimSpace))
}

// New wraps an existing table.
func New(table *domain.Table, opts ...Option) *Machine {
	o := buildOptions(opts)
	return &Machine{
		engine: runtime.NewEngine(table,
			runtime.WithLifecycleHooks(o.hooks),
			runtime.WithLogger(o.logger),
		),
		parser: newParser(o),
		logger: o.logger,
	}
}

// Parse builds a Machine from automaton description lines.
func Parse(source string, lines []string, opts ...Option) (*Machine, error) {
	o := buildOptions(opts)
	table, err := newParser(o).ParseTable(source, lines)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("automaton parsed", "source", source, "states", table.Len())
	return New(table, opts...), nil
}

// Load reads and parses the named automaton description.
func Load(ctx context.Context, loader ports.DescriptionLoader, name string, opts ...Option) (*Machine, error) {
	lines, err := loader.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load automaton: %w", err)
	}
	m, err := Parse(name, lines, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse automaton: %w", err)
	}
	return m, nil
}

// Table returns the transition table.
func (m *Machine) Table() *domain.Table {
	return m.engine.Table()
}

// Simulate replays inputs from start.
func (m *Machine) Simulate(ctx context.Context, start string, inputs ...string) domain.Trajectory {
	return m.engine.Simulate(ctx, start, inputs)
}

// SimulateLine replays a single simulation description line such as "S1;a;a;b".
func (m *Machine) SimulateLine(ctx context.Context, line string) (domain.Result, error) {
	sims, err := m.parser.ParseSimulations("", []string{line})
	if err != nil {
		return domain.Result{}, err
	}
	if len(sims) == 0 {
		return domain.Result{}, fmt.Errorf("empty simulation description")
	}
	traj, err := m.engine.Run(ctx, sims[0])
	if err != nil {
		return domain.Result{}, err
	}
	return domain.Result{Simulation: sims[0], Trajectory: traj}, nil
}

// SplitInputs splits a delimiter-joined list of inputs.
func (m *Machine) SplitInputs(line string) []string {
	return m.parser.ParseInputs(line)
}

// ReplayLines runs every simulation description line in order.
func (m *Machine) ReplayLines(ctx context.Context, source string, lines []string) ([]domain.Result, error) {
	sims, err := m.parser.ParseSimulations(source, lines)
	if err != nil {
		return nil, fmt.Errorf("failed to parse simulations: %w", err)
	}
	return m.engine.RunAll(ctx, sims)
}

// Replay loads the named simulation description and runs every line in order.
func (m *Machine) Replay(ctx context.Context, loader ports.DescriptionLoader, name string) ([]domain.Result, error) {
	lines, err := loader.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load simulations: %w", err)
	}
	return m.ReplayLines(ctx, name, lines)
}

// WriteTable prints the transition table, sorted by state name.
func WriteTable(w io.Writer, table *domain.Table) error {
	return report.New(w).WriteTable(table)
}

// WriteResult prints one simulation result as plain text.
func WriteResult(w io.Writer, res domain.Result) error {
	return report.New(w).WriteSimulation(res.Simulation, res.Trajectory)
}
