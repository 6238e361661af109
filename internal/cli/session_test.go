package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/fasim/internal/config"
	"github.com/aretw0/fasim/internal/logging"
	"github.com/aretw0/fasim/internal/testutils"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expectedTable = "The Finite Automaton's Description\n" +
	"  S1 transitions: map[a->S2,b->S1]\n" +
	"  S2 transitions: map[a->S1,b->S2]\n"

const expectedSimulations = "Starting a new simulation with description: S1;a;b;a\n" +
	"Start state = S1\n" +
	"  Input = a; new state = S2\n" +
	"  Input = b; new state = S2\n" +
	"  Input = a; new state = S1\n" +
	"Stop state = S1\n" +
	"\n" +
	"Starting a new simulation with description: S2;b;c;a\n" +
	"Start state = S2\n" +
	"  Input = b; new state = S2\n" +
	"  Input = c; illegal input: terminated\n" +
	"Stop state = NONE\n" +
	"\n"

func TestRunSession_Prompts(t *testing.T) {
	fa := testutils.WriteDescription(t, "fa.txt", testutils.SampleAutomaton...)
	sims := testutils.WriteDescription(t, "sims.txt", testutils.SampleSimulations...)

	var out bytes.Buffer
	err := RunSession(context.Background(), RunOptions{
		Config: config.Default(),
		In:     strings.NewReader(fa + "\n" + sims + "\n"),
		Out:    &out,
	})
	require.NoError(t, err)

	expected := PromptAutomaton + expectedTable + "\n" +
		PromptSimulations + "\n" +
		expectedSimulations
	assert.Equal(t, expected, out.String())
}

func TestRunSession_Flags(t *testing.T) {
	fa := testutils.WriteDescription(t, "fa.txt", testutils.SampleAutomaton...)
	sims := testutils.WriteDescription(t, "sims.txt", testutils.SampleSimulations...)

	var out bytes.Buffer
	var steps int
	err := RunSession(context.Background(), RunOptions{
		Automaton:   fa,
		Simulations: sims,
		Debug:       true,
		Config:      config.Default(),
		Logger:      logging.NewNop(),
		Hooks: domain.LifecycleHooks{
			OnStep: func(ctx context.Context, e *domain.StepEvent) { steps++ },
		},
		Out: &out,
	})
	require.NoError(t, err)

	assert.Equal(t, expectedTable+"\n"+expectedSimulations, out.String())
	assert.Equal(t, 4, steps)
}

func TestRunSession_JSONOutput(t *testing.T) {
	fa := testutils.WriteDescription(t, "fa.txt", testutils.SampleAutomaton...)
	sims := testutils.WriteDescription(t, "sims.txt", "S2;b;c")

	var out bytes.Buffer
	err := RunSession(context.Background(), RunOptions{
		Automaton:   fa,
		Simulations: sims,
		Output:      "json",
		Config:      config.Default(),
		Out:         &out,
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), `"stop":"NONE"`)
	assert.Contains(t, out.String(), `"rejected":true`)
}

func TestRunSession_Errors(t *testing.T) {
	t.Run("Missing automaton file", func(t *testing.T) {
		err := RunSession(context.Background(), RunOptions{
			Automaton:   "/does/not/exist.txt",
			Simulations: "/does/not/exist.txt",
			Config:      config.Default(),
			Out:         &bytes.Buffer{},
		})
		assert.True(t, errors.Is(err, domain.ErrFileOpen), "got %v", err)
	})

	t.Run("Malformed automaton line", func(t *testing.T) {
		fa := testutils.WriteDescription(t, "fa.txt", "S1;a")

		var out bytes.Buffer
		err := RunSession(context.Background(), RunOptions{
			Automaton:   fa,
			Simulations: fa,
			Config:      config.Default(),
			Out:         &out,
		})
		assert.True(t, errors.Is(err, domain.ErrMalformedLine), "got %v", err)
		assert.Empty(t, out.String())
	})

	t.Run("Missing simulations file", func(t *testing.T) {
		fa := testutils.WriteDescription(t, "fa.txt", testutils.SampleAutomaton...)

		var out bytes.Buffer
		err := RunSession(context.Background(), RunOptions{
			Automaton:   fa,
			Simulations: "/does/not/exist.txt",
			Config:      config.Default(),
			Out:         &out,
		})
		assert.True(t, errors.Is(err, domain.ErrFileOpen), "got %v", err)
		assert.Equal(t, expectedTable+"\n", out.String())
	})

	t.Run("Input closed before answer", func(t *testing.T) {
		err := RunSession(context.Background(), RunOptions{
			Config: config.Default(),
			In:     strings.NewReader(""),
			Out:    &bytes.Buffer{},
		})
		assert.Error(t, err)
	})
}
