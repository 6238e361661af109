package domain

// Simulation is one line of a simulation description: a start state and the inputs to replay.
type Simulation struct {
	// Line is the 1-based line number in the source, 0 when built in code.
	Line int
	// Description is the raw line as read.
	Description string
	Start       string
	Inputs      []string
}

// Result pairs a simulation with the trajectory it produced.
type Result struct {
	Simulation Simulation
	Trajectory Trajectory
}
