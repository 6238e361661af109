package domain

import "sort"

// Table is the transition function of a deterministic finite automaton.
// It maps a state name to the destination reached for each input symbol.
// A Table is never modified after it is built and is safe for concurrent reads.
type Table struct {
	states map[string]map[string]string
}

// Lookup returns the destination of input from state.
// An unknown state behaves like a state with no transitions.
func (t *Table) Lookup(state, input string) (string, bool) {
	if t == nil {
		return "", false
	}
	dest, ok := t.states[state][input]
	return dest, ok
}

// HasState reports whether state was defined by its own description line.
func (t *Table) HasState(state string) bool {
	if t == nil {
		return false
	}
	_, ok := t.states[state]
	return ok
}

// Len returns the number of defined states.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.states)
}

// States returns the defined state names in lexicographic order.
func (t *Table) States() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.states))
	for name := range t.states {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Inputs returns the input symbols accepted by state in lexicographic order.
func (t *Table) Inputs(state string) []string {
	if t == nil {
		return nil
	}
	inputs := make([]string, 0, len(t.states[state]))
	for in := range t.states[state] {
		inputs = append(inputs, in)
	}
	sort.Strings(inputs)
	return inputs
}

// Transitions returns a copy of the transitions leaving state.
func (t *Table) Transitions(state string) map[string]string {
	out := make(map[string]string)
	if t == nil {
		return out
	}
	for in, dest := range t.states[state] {
		out[in] = dest
	}
	return out
}

// TableBuilder accumulates transitions until Build is called.
type TableBuilder struct {
	states map[string]map[string]string
}

// NewTableBuilder creates an empty builder.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{states: make(map[string]map[string]string)}
}

// Define registers state with an empty transition map,
// replacing anything previously recorded for it.
func (b *TableBuilder) Define(state string) {
	b.states[state] = make(map[string]string)
}

// Set records the destination of input from state, overwriting an earlier entry.
func (b *TableBuilder) Set(state, input, dest string) {
	m, ok := b.states[state]
	if !ok {
		m = make(map[string]string)
		b.states[state] = m
	}
	m[input] = dest
}

// Build returns an immutable snapshot of the accumulated transitions.
func (b *TableBuilder) Build() *Table {
	states := make(map[string]map[string]string, len(b.states))
	for state, m := range b.states {
		cp := make(map[string]string, len(m))
		for in, dest := range m {
			cp[in] = dest
		}
		states[state] = cp
	}
	return &Table{states: states}
}

// NewTable builds a Table from a nested map. The map is copied.
func NewTable(states map[string]map[string]string) *Table {
	b := NewTableBuilder()
	for state, m := range states {
		b.Define(state)
		for in, dest := range m {
			b.Set(state, in, dest)
		}
	}
	return b.Build()
}
