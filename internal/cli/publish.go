package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/fasim/internal/adapters"
	"github.com/aretw0/fasim/internal/compiler"
	"github.com/aretw0/fasim/internal/config"
)

// PublishKind selects how Publish checks the lines before storing them.
type PublishKind string

const (
	PublishAutomaton   PublishKind = "automaton"
	PublishSimulations PublishKind = "simulations"
)

// Publish copies the description at from into the store addressed by to.
// The lines are parsed first so that a malformed description is never stored.
func Publish(ctx context.Context, from, to string, kind PublishKind, cfg config.Config, logger *slog.Logger) error {
	lines, err := LoadLines(ctx, from, cfg)
	if err != nil {
		return err
	}

	parser := compiler.NewParser(compiler.WithDelimiter(cfg.Delimiter), compiler.WithTrimSpace(cfg.TrimSpace))
	switch kind {
	case PublishAutomaton:
		_, err = parser.ParseTable(from, lines)
	case PublishSimulations:
		_, err = parser.ParseSimulations(from, lines)
	default:
		return fmt.Errorf("unknown description kind %q", kind)
	}
	if err != nil {
		return err
	}

	dst, err := adapters.Resolve(to, cfg.Redis)
	if err != nil {
		return err
	}
	defer dst.Close()

	if err := dst.Loader.Publish(ctx, dst.Name, lines); err != nil {
		return fmt.Errorf("failed to publish %s: %w", to, err)
	}
	logger.Info("Description published", "from", from, "to", to, "lines", len(lines))
	return nil
}
