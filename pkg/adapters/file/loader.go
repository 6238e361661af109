package file

import (
	"bufio"
	"context"
	"os"
	"path/filepath"

	"github.com/aretw0/fasim/pkg/domain"
)

// maxLineSize bounds a single description line.
const maxLineSize = 1 << 20

// Loader implements ports.DescriptionLoader on the local filesystem.
// Names are paths, resolved against the base directory when relative.
type Loader struct {
	dir string
}

// NewLoader creates a loader rooted at dir. An empty dir means the working directory.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Load reads every line of the named file.
func (l *Loader) Load(ctx context.Context, name string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.path(name))
	if err != nil {
		return nil, &domain.SourceError{Source: name, Err: err}
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &domain.SourceError{Source: name, Err: err}
	}
	return lines, nil
}

// Publish writes lines to the named file, one per line.
func (l *Loader) Publish(ctx context.Context, name string, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(l.path(name))
	if err != nil {
		return &domain.SourceError{Source: name, Err: err}
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return &domain.SourceError{Source: name, Err: err}
	}
	return f.Close()
}

func (l *Loader) path(name string) string {
	if l.dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(l.dir, name)
}
