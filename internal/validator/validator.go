package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/fasim/pkg/domain"
)

// Report describes the shape of an automaton as seen from a start state.
type Report struct {
	Start string
	// Reachable lists defined states reachable from Start, sorted.
	Reachable []string
	// Unreachable lists defined states never reached from Start, sorted.
	Unreachable []string
	// Undefined lists transition targets that have no line of their own.
	// Entering one of them makes every further input illegal.
	Undefined []string
}

// Clean reports whether every defined state is reachable and every target is defined.
func (r Report) Clean() bool {
	return len(r.Unreachable) == 0 && len(r.Undefined) == 0
}

// String renders the report as a short human summary.
func (r Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "start %q reaches %d state(s)", r.Start, len(r.Reachable))
	if len(r.Unreachable) > 0 {
		fmt.Fprintf(&sb, "\n- unreachable: %s", strings.Join(r.Unreachable, ", "))
	}
	if len(r.Undefined) > 0 {
		fmt.Fprintf(&sb, "\n- undefined targets: %s", strings.Join(r.Undefined, ", "))
	}
	return sb.String()
}

// Inspect crawls the table breadth-first from start.
// An unknown start is an error; reachability problems are only reported.
func Inspect(table *domain.Table, start string) (Report, error) {
	if !table.HasState(start) {
		return Report{}, fmt.Errorf("start state %q is not defined", start)
	}

	visited := map[string]bool{}
	undefined := map[string]bool{}
	queue := []string{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, input := range table.Inputs(current) {
			target, _ := table.Lookup(current, input)
			if !table.HasState(target) {
				undefined[target] = true
				continue
			}
			if !visited[target] {
				queue = append(queue, target)
			}
		}
	}

	report := Report{Start: start}
	for _, state := range table.States() {
		if visited[state] {
			report.Reachable = append(report.Reachable, state)
		} else {
			report.Unreachable = append(report.Unreachable, state)
		}
	}
	for target := range undefined {
		report.Undefined = append(report.Undefined, target)
	}
	sort.Strings(report.Undefined)
	return report, nil
}
