package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/fasim/pkg/domain"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Output formats understood by WriteResult.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Reporter writes human-readable descriptions of tables and trajectories.
type Reporter struct {
	w   io.Writer
	out *termenv.Output
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithColor enables ANSI styling of illegal inputs.
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		if enabled {
			r.out = termenv.NewOutput(r.w, termenv.WithProfile(termenv.ANSI))
		} else {
			r.out = termenv.NewOutput(r.w, termenv.WithProfile(termenv.Ascii))
		}
	}
}

// New creates a plain-text reporter writing to w.
func New(w io.Writer, opts ...Option) *Reporter {
	r := &Reporter{w: w}
	WithColor(false)(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WriteTable prints every state with its transitions, sorted by state name.
func (r *Reporter) WriteTable(table *domain.Table) error {
	var sb strings.Builder
	sb.WriteString("The Finite Automaton's Description\n")
	for _, state := range table.States() {
		fmt.Fprintf(&sb, "  %s transitions: %s\n", state, formatTransitions(table, state))
	}
	_, err := io.WriteString(r.w, sb.String())
	return err
}

// WriteTrajectory prints the start state, every step and the stop state.
func (r *Reporter) WriteTrajectory(traj domain.Trajectory) error {
	_, err := io.WriteString(r.w, r.formatTrajectory(traj))
	return err
}

// WriteSimulation prints the description line, its trajectory and a blank separator.
func (r *Reporter) WriteSimulation(sim domain.Simulation, traj domain.Trajectory) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Starting a new simulation with description: %s\n", sim.Description)
	sb.WriteString(r.formatTrajectory(traj))
	sb.WriteString("\n")
	_, err := io.WriteString(r.w, sb.String())
	return err
}

// WriteResult prints one simulation result in the requested format.
func (r *Reporter) WriteResult(format string, res domain.Result) error {
	switch format {
	case "", FormatText:
		return r.WriteSimulation(res.Simulation, res.Trajectory)
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		return enc.Encode(res.Trajectory.View())
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		if err := enc.Encode(res.Trajectory.View()); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func (r *Reporter) formatTrajectory(traj domain.Trajectory) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Start state = %s\n", traj.Start())

	stop := traj.Start()
	if len(traj) > 1 {
		for _, rec := range traj[1:] {
			if rec.Rejected {
				msg := r.out.String("illegal input: terminated").Foreground(r.out.Color("1")).String()
				fmt.Fprintf(&sb, "  Input = %s; %s\n", rec.Input, msg)
			} else {
				fmt.Fprintf(&sb, "  Input = %s; new state = %s\n", rec.Input, rec.State)
			}
			stop = rec.Label()
		}
	}
	fmt.Fprintf(&sb, "Stop state = %s\n", stop)
	return sb.String()
}

func formatTransitions(table *domain.Table, state string) string {
	transitions := table.Transitions(state)
	inputs := table.Inputs(state)
	pairs := make([]string, len(inputs))
	for i, in := range inputs {
		pairs[i] = in + "->" + transitions[in]
	}
	return "map[" + strings.Join(pairs, ",") + "]"
}
