package runtime

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/fasim/pkg/domain"
)

// Engine runs simulations against a single transition table.
// The table is shared read-only; each call owns the trajectory it returns.
type Engine struct {
	table  *domain.Table
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates a new engine over table.
func NewEngine(table *domain.Table, opts ...EngineOption) *Engine {
	e := &Engine{
		table:  table,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Table returns the transition table the engine runs against.
func (e *Engine) Table() *domain.Table {
	return e.table
}

// Simulate replays inputs from start and reports the run to the registered hooks.
func (e *Engine) Simulate(ctx context.Context, start string, inputs []string) domain.Trajectory {
	traj := Simulate(e.table, start, inputs)
	e.emit(ctx, traj)
	return traj
}

// Run executes one simulation. It only fails if ctx is already done.
func (e *Engine) Run(ctx context.Context, sim domain.Simulation) (domain.Trajectory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	traj := e.Simulate(ctx, sim.Start, sim.Inputs)

	stop := traj[len(traj)-1].Label()
	e.logger.Debug("simulation finished",
		"line", sim.Line,
		"start", sim.Start,
		"stop", stop,
		"steps", traj.Steps(),
		"rejected", traj.Rejected(),
	)
	return traj, nil
}

// RunAll executes simulations one after another, in order.
// It stops at the first cancellation and returns the results gathered so far.
func (e *Engine) RunAll(ctx context.Context, sims []domain.Simulation) ([]domain.Result, error) {
	results := make([]domain.Result, 0, len(sims))
	for _, sim := range sims {
		traj, err := e.Run(ctx, sim)
		if err != nil {
			return results, err
		}
		results = append(results, domain.Result{Simulation: sim, Trajectory: traj})
	}
	return results, nil
}

func (e *Engine) emit(ctx context.Context, traj domain.Trajectory) {
	if e.hooks.OnStep == nil && e.hooks.OnReject == nil && e.hooks.OnComplete == nil {
		return
	}
	now := time.Now()

	from := traj.Start()
	for _, r := range traj[1:] {
		ev := &domain.StepEvent{
			EventBase: domain.EventBase{Timestamp: now, Type: domain.EventStep},
			From:      from,
			Input:     r.Input,
			To:        r.State,
		}
		if r.Rejected {
			ev.Type = domain.EventReject
			if e.hooks.OnReject != nil {
				e.hooks.OnReject(ctx, ev)
			}
			break
		}
		if e.hooks.OnStep != nil {
			e.hooks.OnStep(ctx, ev)
		}
		from = r.State
	}

	if e.hooks.OnComplete != nil {
		e.hooks.OnComplete(ctx, &domain.CompleteEvent{
			EventBase: domain.EventBase{Timestamp: now, Type: domain.EventComplete},
			Start:     traj.Start(),
			Stop:      traj[len(traj)-1].Label(),
			Steps:     traj.Steps(),
			Rejected:  traj.Rejected(),
		})
	}
}
