package domain

// Record is one entry of a trajectory: the input consumed and its outcome.
// The first record of every trajectory has an empty Input and holds the start state.
// When Rejected is true the input had no transition and State is empty.
type Record struct {
	Input    string
	State    string
	Rejected bool
}

// Advanced builds a record for a successful transition to state.
func Advanced(input, state string) Record {
	return Record{Input: input, State: state}
}

// Rejected builds a record for an input with no transition.
func Rejected(input string) Record {
	return Record{Input: input, Rejected: true}
}

// Label returns the state name for display, or SinkLabel for a rejection.
func (r Record) Label() string {
	if r.Rejected {
		return SinkLabel
	}
	return r.State
}

// Trajectory is the ordered sequence of records produced by one simulation.
type Trajectory []Record

// Start returns the start state, or "" for an empty trajectory.
func (t Trajectory) Start() string {
	if len(t) == 0 {
		return ""
	}
	return t[0].State
}

// Final returns the state the run stopped in.
// ok is false when the run ended on an illegal input.
func (t Trajectory) Final() (state string, ok bool) {
	if len(t) == 0 {
		return "", false
	}
	last := t[len(t)-1]
	return last.State, !last.Rejected
}

// Rejected reports whether the run was terminated by an illegal input.
func (t Trajectory) Rejected() bool {
	return len(t) > 0 && t[len(t)-1].Rejected
}

// Steps returns the number of inputs consumed, including a rejected one.
func (t Trajectory) Steps() int {
	if len(t) == 0 {
		return 0
	}
	return len(t) - 1
}

// RecordView is the boundary encoding of a Record.
type RecordView struct {
	Input    string `json:"input" yaml:"input"`
	State    string `json:"state" yaml:"state"`
	Rejected bool   `json:"rejected,omitempty" yaml:"rejected,omitempty"`
}

// TrajectoryView is the boundary encoding of a Trajectory.
type TrajectoryView struct {
	Start    string       `json:"start" yaml:"start"`
	Stop     string       `json:"stop" yaml:"stop"`
	Rejected bool         `json:"rejected" yaml:"rejected"`
	Records  []RecordView `json:"records" yaml:"records"`
}

// View converts the trajectory into its boundary encoding, naming rejections SinkLabel.
func (t Trajectory) View() TrajectoryView {
	v := TrajectoryView{
		Start:    t.Start(),
		Rejected: t.Rejected(),
		Records:  make([]RecordView, 0, len(t)),
	}
	for _, r := range t {
		v.Records = append(v.Records, RecordView{Input: r.Input, State: r.Label(), Rejected: r.Rejected})
	}
	if len(t) > 0 {
		v.Stop = t[len(t)-1].Label()
	}
	return v
}
