package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/fasim"
	"github.com/aretw0/fasim/internal/adapters"
	"github.com/aretw0/fasim/internal/config"
	"github.com/aretw0/fasim/pkg/domain"
)

// LoadMachine resolves ref, reads the automaton description and builds a Machine
// with standard CLI conventions (config-driven parsing, shared logger and hooks).
func LoadMachine(ctx context.Context, ref string, cfg config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) (*fasim.Machine, error) {
	src, err := adapters.Resolve(ref, cfg.Redis)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	m, err := fasim.Load(ctx, src.Loader, src.Name, machineOptions(cfg, logger, hooks)...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Automaton loaded", "source", ref, "states", m.Table().Len())
	return m, nil
}

// LoadLines reads every line of the description at ref.
func LoadLines(ctx context.Context, ref string, cfg config.Config) ([]string, error) {
	src, err := adapters.Resolve(ref, cfg.Redis)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	lines, err := src.Loader.Load(ctx, src.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to load simulations: %w", err)
	}
	return lines, nil
}

func machineOptions(cfg config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) []fasim.Option {
	return []fasim.Option{
		fasim.WithDelimiter(cfg.Delimiter),
		fasim.WithTrimSpace(cfg.TrimSpace),
		fasim.WithLogger(logger),
		fasim.WithLifecycleHooks(hooks),
	}
}
