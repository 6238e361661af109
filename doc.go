/*
Package fasim simulates deterministic finite automata (DFA) described in plain text.

An automaton description has one line per state: the state name followed by
pairs of input symbol and destination state, all separated by semicolons.

	S1;a;S2;b;S1
	S2;a;S1

A simulation description has one line per run: a start state followed by the
inputs to replay.

	S1;a;a;b
	S1;a;c

Replaying an input sequence yields a Trajectory: the start state, then one
record per consumed input. When the current state has no transition for an
input, the run stops there with a rejected record instead of an error.

# Output

fasim.WriteTable and fasim.WriteResult print the classic report format:

	Start state = S1
	  Input = a; new state = S2
	  Input = c; illegal input: terminated
	Stop state = NONE

"Start state =" is followed by a single space. Reports captured from older
tools that printed two spaces there differ on that line only.

# Usage

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/fasim"
		"github.com/aretw0/fasim/pkg/adapters/file"
	)

	func main() {
		ctx := context.Background()
		loader := file.NewLoader(".")

		m, err := fasim.Load(ctx, loader, "fa.txt")
		if err != nil {
			log.Fatal(err)
		}

		results, err := m.Replay(ctx, loader, "sims.txt")
		if err != nil {
			log.Fatal(err)
		}
		for _, res := range results {
			if err := fasim.WriteResult(os.Stdout, res); err != nil {
				log.Fatal(err)
			}
		}
	}
*/
package fasim
