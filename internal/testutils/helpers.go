package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Sample descriptions shared by command and session tests.
var (
	SampleAutomaton = []string{
		"S1;a;S2;b;S1",
		"S2;a;S1;b;S2",
	}
	SampleSimulations = []string{
		"S1;a;b;a",
		"S2;b;c;a",
	}
)

// WriteDescription creates name inside a fresh temp directory with one line
// per entry and returns its absolute path.
// It fails the test immediately on error.
func WriteDescription(t *testing.T, name string, lines ...string) string {
	t.Helper()

	absDir, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	path := filepath.Join(absDir, name)
	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write description")

	return path
}
