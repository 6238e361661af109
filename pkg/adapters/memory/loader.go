package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/fasim/pkg/domain"
)

// Loader implements ports.DescriptionLoader and ports.DescriptionPublisher in memory.
// Safe for concurrent use.
type Loader struct {
	data map[string][]string
	mu   sync.RWMutex
}

// NewLoader creates a loader holding the given descriptions. The slices are copied.
func NewLoader(data map[string][]string) *Loader {
	l := &Loader{data: make(map[string][]string, len(data))}
	for name, lines := range data {
		l.data[name] = append([]string(nil), lines...)
	}
	return l
}

// NewFromText creates a loader from newline-separated descriptions.
func NewFromText(data map[string]string) *Loader {
	l := &Loader{data: make(map[string][]string, len(data))}
	for name, text := range data {
		l.data[name] = splitLines(text)
	}
	return l
}

// Load returns a copy of the named description.
func (l *Loader) Load(ctx context.Context, name string) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	lines, ok := l.data[name]
	if !ok {
		return nil, &domain.SourceError{Source: name, Err: domain.ErrDescriptionNotFound}
	}
	return append([]string(nil), lines...), nil
}

// Publish stores a copy of lines under name.
func (l *Loader) Publish(ctx context.Context, name string, lines []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.data[name] = append([]string(nil), lines...)
	return nil
}

// List returns the stored description names.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.data))
	for name := range l.data {
		names = append(names, name)
	}
	sort.Strings(names) // Deterministic order
	return names, nil
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}
