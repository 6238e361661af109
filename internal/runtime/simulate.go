package runtime

import "github.com/aretw0/fasim/pkg/domain"

// Simulate replays inputs against table starting from start.
//
// The first record is always ("", start), even when start is not a state of the
// table. Each input either advances to its destination or, when the current
// state has no transition for it, is recorded as rejected and ends the run.
// Simulate has no side effects and returns the same trajectory for the same arguments.
func Simulate(table *domain.Table, start string, inputs []string) domain.Trajectory {
	traj := make(domain.Trajectory, 0, len(inputs)+1)
	traj = append(traj, domain.Advanced("", start))

	current := start
	for _, in := range inputs {
		dest, ok := table.Lookup(current, in)
		if !ok {
			return append(traj, domain.Rejected(in))
		}
		current = dest
		traj = append(traj, domain.Advanced(in, dest))
	}
	return traj
}
