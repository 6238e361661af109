package compiler

import (
	"strings"

	"github.com/aretw0/fasim/pkg/domain"
)

// Parser converts description lines into domain values.
type Parser struct {
	delimiter string
	trimSpace bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithDelimiter sets the field separator (default ";").
func WithDelimiter(delim string) Option {
	return func(p *Parser) {
		if delim != "" {
			p.delimiter = delim
		}
	}
}

// WithTrimSpace strips surrounding whitespace from every field.
func WithTrimSpace(trim bool) Option {
	return func(p *Parser) {
		p.trimSpace = trim
	}
}

// NewParser creates a new parser instance.
func NewParser(opts ...Option) *Parser {
	p := &Parser{delimiter: domain.DefaultDelimiter}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseTable builds a transition table from automaton description lines of the
// form "state;input1;dest1;input2;dest2;...".
// Blank lines are skipped. A line whose trailing fields do not pair up aborts
// the parse with a *domain.MalformedLineError.
func (p *Parser) ParseTable(source string, lines []string) (*domain.Table, error) {
	b := domain.NewTableBuilder()
	for i, line := range lines {
		fields, ok := p.split(line)
		if !ok {
			continue
		}

		state, pairs := fields[0], fields[1:]
		if len(pairs)%2 != 0 {
			return nil, &domain.MalformedLineError{Source: source, Line: i + 1, Fields: len(pairs)}
		}

		b.Define(state)
		for j := 0; j < len(pairs); j += 2 {
			b.Set(state, pairs[j], pairs[j+1])
		}
	}
	return b.Build(), nil
}

// ParseSimulations reads simulation description lines of the form
// "start;input1;...;inputN". Blank lines are skipped.
func (p *Parser) ParseSimulations(source string, lines []string) ([]domain.Simulation, error) {
	sims := make([]domain.Simulation, 0, len(lines))
	for i, line := range lines {
		fields, ok := p.split(line)
		if !ok {
			continue
		}
		sims = append(sims, domain.Simulation{
			Line:        i + 1,
			Description: strings.TrimSuffix(line, "\r"),
			Start:       fields[0],
			Inputs:      fields[1:],
		})
	}
	return sims, nil
}

// ParseInputs splits a single delimiter-joined list of input symbols.
// An empty string yields no inputs.
func (p *Parser) ParseInputs(line string) []string {
	fields, ok := p.split(line)
	if !ok {
		return nil
	}
	return fields
}

func (p *Parser) split(line string) ([]string, bool) {
	line = strings.TrimSuffix(line, "\r")
	if line == "" || (p.trimSpace && strings.TrimSpace(line) == "") {
		return nil, false
	}
	fields := strings.Split(line, p.delimiter)
	if p.trimSpace {
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
	}
	return fields, true
}
