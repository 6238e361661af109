package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/fasim/internal/config"
	"github.com/aretw0/fasim/internal/logging"
	"github.com/aretw0/fasim/pkg/domain"
	"golang.org/x/term"
)

// NewLogger builds the application logger from the configured level.
func NewLogger(cfg config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// IsTerminal reports whether v is a file attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ColorEnabled resolves the configured colour mode for w.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return IsTerminal(w) && os.Getenv("NO_COLOR") == ""
	}
}

// createDebugHooks logs every engine event at debug level.
func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			logger.Debug("Transition", "from", e.From, "input", e.Input, "to", e.To)
		},
		OnReject: func(ctx context.Context, e *domain.StepEvent) {
			logger.Debug("Illegal input", "state", e.From, "input", e.Input)
		},
		OnComplete: func(ctx context.Context, e *domain.CompleteEvent) {
			logger.Debug("Simulation complete", "start", e.Start, "stop", e.Stop, "steps", e.Steps)
		},
	}
}

// prompt writes label to w and reads one line from r, without its line ending.
func prompt(w io.Writer, r *bufio.Reader, label string) (string, error) {
	fmt.Fprint(w, label)
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read %q answer: %w", strings.TrimSpace(label), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
