package domain_test

import (
	"testing"

	"github.com/aretw0/fasim/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestTable_Lookup(t *testing.T) {
	table := domain.NewTable(map[string]map[string]string{
		"S1": {"a": "S2", "b": "S1"},
		"S2": {"a": "S1"},
	})

	dest, ok := table.Lookup("S1", "a")
	assert.True(t, ok)
	assert.Equal(t, "S2", dest)

	_, ok = table.Lookup("S2", "b")
	assert.False(t, ok, "undefined input")

	_, ok = table.Lookup("ZZZ", "a")
	assert.False(t, ok, "unknown state behaves as a state without transitions")
}

func TestTable_SortedViews(t *testing.T) {
	table := domain.NewTable(map[string]map[string]string{
		"b": {},
		"a": {"y": "b", "x": "b"},
	})

	assert.Equal(t, []string{"a", "b"}, table.States())
	assert.Equal(t, []string{"x", "y"}, table.Inputs("a"))
	assert.Empty(t, table.Inputs("b"))
	assert.Equal(t, 2, table.Len())
	assert.True(t, table.HasState("b"))
	assert.False(t, table.HasState("c"))
}

func TestTable_Immutable(t *testing.T) {
	src := map[string]map[string]string{"S1": {"a": "S2"}}
	table := domain.NewTable(src)

	src["S1"]["a"] = "changed"
	got := table.Transitions("S1")
	got["a"] = "changed too"

	dest, _ := table.Lookup("S1", "a")
	assert.Equal(t, "S2", dest)
}

func TestTableBuilder_DefineResets(t *testing.T) {
	b := domain.NewTableBuilder()
	b.Define("S1")
	b.Set("S1", "a", "S2")
	b.Set("S1", "a", "S3")
	table := b.Build()

	dest, _ := table.Lookup("S1", "a")
	assert.Equal(t, "S3", dest, "later duplicate input overwrites")

	b.Define("S1")
	assert.Empty(t, b.Build().Transitions("S1"))
	assert.Equal(t, "S3", mustLookup(t, table, "S1", "a"), "built tables are snapshots")
}

func TestTable_Nil(t *testing.T) {
	var table *domain.Table
	_, ok := table.Lookup("S1", "a")
	assert.False(t, ok)
	assert.Zero(t, table.Len())
	assert.Empty(t, table.States())
}

func mustLookup(t *testing.T, table *domain.Table, state, input string) string {
	t.Helper()
	dest, ok := table.Lookup(state, input)
	if !ok {
		t.Fatalf("no transition %s/%s", state, input)
	}
	return dest
}
