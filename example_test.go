package fasim_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/fasim"
	"github.com/aretw0/fasim/pkg/adapters/memory"
)

// ExampleLoad replays a simulation file against an automaton held in memory.
func ExampleLoad() {
	ctx := context.Background()
	loader := memory.NewFromText(map[string]string{
		"fa.txt":   "S1;a;S2;b;S1\nS2;a;S1\n",
		"sims.txt": "S1;a;a;b\nS1;a;c\n",
	})

	m, err := fasim.Load(ctx, loader, "fa.txt")
	if err != nil {
		log.Fatal(err)
	}
	if err := fasim.WriteTable(os.Stdout, m.Table()); err != nil {
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

	// Output:
	// The Finite Automaton's Description
	//   S1 transitions: map[a->S2,b->S1]
	//   S2 transitions: map[a->S1]
	// Starting a new simulation with description: S1;a;a;b
	// Start state = S1
	//   Input = a; new state = S2
	//   Input = a; new state = S1
	//   Input = b; new state = S1
	// Stop state = S1
	//
	// Starting a new simulation with description: S1;a;c
	// Start state = S1
	//   Input = a; new state = S2
	//   Input = c; illegal input: terminated
	// Stop state = NONE
}

// ExampleMachine_Simulate shows a run from a state the table does not define.
func ExampleMachine_Simulate() {
	m, err := fasim.Parse("inline", []string{"S1;a;S2"})
	if err != nil {
		log.Fatal(err)
	}

	traj := m.Simulate(context.Background(), "ZZZ", "a")
	for _, r := range traj {
		fmt.Printf("%q -> %s\n", r.Input, r.Label())
	}

	// Output:
	// "" -> ZZZ
	// "a" -> NONE
}
