package runtime_test

import (
	"testing"

	"github.com/aretw0/fasim/internal/runtime"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func scenarioTable() *domain.Table {
	return domain.NewTable(map[string]map[string]string{
		"S1": {"a": "S2", "b": "S1"},
		"S2": {"a": "S1"},
	})
}

func TestSimulate(t *testing.T) {
	table := scenarioTable()

	tests := []struct {
		name   string
		start  string
		inputs []string
		want   domain.Trajectory
	}{
		{
			name:   "All Inputs Accepted",
			start:  "S1",
			inputs: []string{"a", "a", "b"},
			want: domain.Trajectory{
				domain.Advanced("", "S1"),
				domain.Advanced("a", "S2"),
				domain.Advanced("a", "S1"),
				domain.Advanced("b", "S1"),
			},
		},
		{
			name:   "Illegal Input Terminates",
			start:  "S1",
			inputs: []string{"a", "c", "a"},
			want: domain.Trajectory{
				domain.Advanced("", "S1"),
				domain.Advanced("a", "S2"),
				domain.Rejected("c"),
			},
		},
		{
			name:   "Unknown Start State",
			start:  "ZZZ",
			inputs: []string{"a"},
			want: domain.Trajectory{
				domain.Advanced("", "ZZZ"),
				domain.Rejected("a"),
			},
		},
		{
			name:  "No Inputs",
			start: "S2",
			want: domain.Trajectory{
				domain.Advanced("", "S2"),
			},
		},
		{
			name:   "Self Loop Repeats",
			start:  "S1",
			inputs: []string{"a", "a", "b", "b"},
			want: domain.Trajectory{
				domain.Advanced("", "S1"),
				domain.Advanced("a", "S2"),
				domain.Advanced("a", "S1"),
				domain.Advanced("b", "S1"),
				domain.Advanced("b", "S1"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runtime.Simulate(table, tt.start, tt.inputs)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSimulate_LengthProperties(t *testing.T) {
	table := scenarioTable()

	covered := []string{"b", "a", "a", "b", "a"}
	traj := runtime.Simulate(table, "S1", covered)
	assert.Len(t, traj, len(covered)+1)
	assert.False(t, traj.Rejected())

	// First undefined input at k=3 yields k+1 records.
	traj = runtime.Simulate(table, "S1", []string{"a", "a", "x", "a"})
	assert.Len(t, traj, 4)
	assert.Equal(t, domain.Rejected("x"), traj[3])
}

func TestSimulate_SinkOnlyDestination(t *testing.T) {
	table := domain.NewTable(map[string]map[string]string{
		"A": {"go": "END"},
	})

	traj := runtime.Simulate(table, "A", []string{"go", "go"})
	assert.Equal(t, domain.Trajectory{
		domain.Advanced("", "A"),
		domain.Advanced("go", "END"),
		domain.Rejected("go"),
	}, traj)
}

func TestSimulate_Idempotent(t *testing.T) {
	table := scenarioTable()
	inputs := []string{"a", "b", "a"}

	first := runtime.Simulate(table, "S1", inputs)
	second := runtime.Simulate(table, "S1", inputs)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a", "b", "a"}, inputs, "inputs are not modified")
}
