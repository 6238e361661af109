package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/fasim/pkg/adapters/memory"
	"github.com/aretw0/fasim/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLoader_Contract(t *testing.T) {
	loader := memory.NewLoader(map[string][]string{
		"fa":   {"S1;a;S2;b;S1", "S2;a;S1"},
		"sims": {"S1;a;a;b"},
	})
	tests.DescriptionLoaderContractTest(t, loader, map[string][]string{
		"fa":   {"S1;a;S2;b;S1", "S2;a;S1"},
		"sims": {"S1;a;a;b"},
	})
	tests.DescriptionPublisherContractTest(t, loader)
}

func TestMemoryLoader_FromText(t *testing.T) {
	loader := memory.NewFromText(map[string]string{
		"fa":    "S1;a;S2\r\nS2;a;S1\n",
		"empty": "",
	})

	lines, err := loader.Load(context.Background(), "fa")
	require.NoError(t, err)
	assert.Equal(t, []string{"S1;a;S2", "S2;a;S1"}, lines)

	lines, err = loader.Load(context.Background(), "empty")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestMemoryLoader_Isolation(t *testing.T) {
	src := []string{"S1;a;S2"}
	loader := memory.NewLoader(map[string][]string{"fa": src})
	src[0] = "mutated"

	lines, _ := loader.Load(context.Background(), "fa")
	lines[0] = "mutated again"

	again, _ := loader.Load(context.Background(), "fa")
	assert.Equal(t, []string{"S1;a;S2"}, again)
}
