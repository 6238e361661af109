package compiler_test

import (
	"errors"
	"testing"

	"github.com/aretw0/fasim/internal/compiler"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_ParseTable(t *testing.T) {
	p := compiler.NewParser()

	table, err := p.ParseTable("fa.txt", []string{
		"S1;a;S2;b;S1",
		"S2;a;S1",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"S1", "S2"}, table.States())
	assert.Equal(t, map[string]string{"a": "S2", "b": "S1"}, table.Transitions("S1"))
	assert.Equal(t, map[string]string{"a": "S1"}, table.Transitions("S2"))
}

func TestParser_ParseTable_KeysAreFirstFields(t *testing.T) {
	p := compiler.NewParser()

	table, err := p.ParseTable("", []string{
		"lonely",
		"",
		"A;x;dangling",
		"B;y;A\r",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "lonely"}, table.States())
	assert.False(t, table.HasState("dangling"), "destinations are not keys")
	assert.False(t, table.HasState(""), "blank lines register nothing")
	assert.Equal(t, "A", table.Transitions("B")["y"], "carriage return is stripped")
}

func TestParser_ParseTable_DuplicateInputOverwrites(t *testing.T) {
	p := compiler.NewParser()

	table, err := p.ParseTable("", []string{"S1;a;S2;a;S3"})
	require.NoError(t, err)

	dest, _ := table.Lookup("S1", "a")
	assert.Equal(t, "S3", dest)
}

func TestParser_ParseTable_RedefinitionReplaces(t *testing.T) {
	p := compiler.NewParser()

	table, err := p.ParseTable("", []string{"S1;a;S2", "S1;b;S1"})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"b": "S1"}, table.Transitions("S1"))
}

func TestParser_ParseTable_Malformed(t *testing.T) {
	p := compiler.NewParser()

	table, err := p.ParseTable("fa.txt", []string{"S1;a;S2", "S3;x"})
	require.Error(t, err)
	assert.Nil(t, table, "no partial table")
	assert.True(t, errors.Is(err, domain.ErrMalformedLine))

	var mal *domain.MalformedLineError
	require.ErrorAs(t, err, &mal)
	assert.Equal(t, 2, mal.Line)
	assert.Equal(t, 1, mal.Fields)
	assert.Equal(t, "fa.txt", mal.Source)
}

func TestParser_Options(t *testing.T) {
	p := compiler.NewParser(compiler.WithDelimiter(","), compiler.WithTrimSpace(true))

	table, err := p.ParseTable("", []string{"S1, a , S2"})
	require.NoError(t, err)

	dest, ok := table.Lookup("S1", "a")
	assert.True(t, ok)
	assert.Equal(t, "S2", dest)

	t.Run("Whitespace-only lines are blank", func(t *testing.T) {
		table, err := p.ParseTable("", []string{"S1, a , S2", "   ", "\t\r"})
		require.NoError(t, err)
		assert.Equal(t, []string{"S1"}, table.States())

		sims, err := p.ParseSimulations("", []string{"  ", "S1, a"})
		require.NoError(t, err)
		require.Len(t, sims, 1)
		assert.Equal(t, 2, sims[0].Line)
		assert.Equal(t, "S1", sims[0].Start)

		assert.Nil(t, p.ParseInputs("   "))
	})
}

func TestParser_ParseSimulations(t *testing.T) {
	p := compiler.NewParser()

	sims, err := p.ParseSimulations("sims.txt", []string{
		"S1;a;a;b",
		"",
		"S2",
	})
	require.NoError(t, err)
	require.Len(t, sims, 2)

	assert.Equal(t, domain.Simulation{Line: 1, Description: "S1;a;a;b", Start: "S1", Inputs: []string{"a", "a", "b"}}, sims[0])
	assert.Equal(t, 3, sims[1].Line)
	assert.Equal(t, "S2", sims[1].Start)
	assert.Empty(t, sims[1].Inputs)
}

func TestParser_ParseInputs(t *testing.T) {
	p := compiler.NewParser()
	assert.Equal(t, []string{"a", "b"}, p.ParseInputs("a;b"))
	assert.Nil(t, p.ParseInputs(""))
}
