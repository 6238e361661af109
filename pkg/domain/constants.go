package domain

const (
	// DefaultDelimiter separates fields in automaton and simulation descriptions.
	DefaultDelimiter = ";"

	// SinkLabel is the printed name of the destination of an illegal input.
	// It only exists at the formatting boundary; the core uses Record.Rejected.
	SinkLabel = "NONE"
)
