package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/fasim/pkg/domain"
)

// GraphOverlay contains trajectory data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []string
	CurrentState  string
	// Rejected marks the run as terminated by an illegal input on CurrentState.
	Rejected      bool
	RejectedInput string
}

// OverlayFromTrajectory builds an overlay highlighting the states a run visited.
func OverlayFromTrajectory(traj domain.Trajectory) *GraphOverlay {
	o := &GraphOverlay{}
	for _, r := range traj {
		if r.Rejected {
			o.Rejected = true
			o.RejectedInput = r.Input
			continue
		}
		o.VisitedStates = append(o.VisitedStates, r.State)
		o.CurrentState = r.State
	}
	return o
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a transition table.
// States are emitted in sorted order; inputs leading to the same destination
// share one labelled edge. States that only appear as destinations are drawn
// as double circles (sinks).
func GenerateMermaid(table *domain.Table, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	defined := make(map[string]bool)
	for _, state := range table.States() {
		defined[state] = true
	}

	sinks := make(map[string]bool)
	for _, state := range table.States() {
		safeID := sanitizeMermaidID(state)
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", safeID, escapeLabel(state)))

		transitions := table.Transitions(state)
		var order []string
		byDest := make(map[string][]string)
		for _, in := range table.Inputs(state) {
			dest := transitions[in]
			if _, seen := byDest[dest]; !seen {
				order = append(order, dest)
			}
			byDest[dest] = append(byDest[dest], in)
			if !defined[dest] {
				sinks[dest] = true
			}
		}
		for _, dest := range order {
			label := escapeLabel(strings.Join(byDest[dest], ", "))
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", safeID, label, sanitizeMermaidID(dest)))
		}
	}

	for _, sink := range sortedKeys(sinks) {
		sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", sanitizeMermaidID(sink), escapeLabel(sink)))
	}

	if overlay != nil {
		writeOverlay(&sb, overlay)
	}

	return sb.String()
}

func writeOverlay(sb *strings.Builder, overlay *GraphOverlay) {
	sb.WriteString("\n    %% Overlay Styles\n")
	// Force black text (color:#000) for high-contrast on light backgrounds
	sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
	sb.WriteString("    classDef rejected fill:#ffcdd2,stroke:#b71c1c,stroke-width:4px,color:#000;\n")

	visitedSet := make(map[string]bool)
	for _, id := range overlay.VisitedStates {
		safeID := sanitizeMermaidID(id)
		if !visitedSet[safeID] && safeID != "" {
			visitedSet[safeID] = true
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
		}
	}

	if overlay.CurrentState == "" {
		return
	}
	safeCurrent := sanitizeMermaidID(overlay.CurrentState)
	if overlay.Rejected {
		sb.WriteString(fmt.Sprintf("    %s -. \"%s\" .-> %s((\"%s\"))\n",
			safeCurrent, escapeLabel(overlay.RejectedInput), sinkID, domain.SinkLabel))
		sb.WriteString(fmt.Sprintf("    class %s rejected;\n", sinkID))
		return
	}
	sb.WriteString(fmt.Sprintf("    class %s current;\n", safeCurrent))
}

// sinkID never collides with sanitized state IDs, which start with "s_" or "_e".
const sinkID = "__illegal__"

func sanitizeMermaidID(id string) string {
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_", "\"", "_")
	s := r.Replace(id)
	if s == "" {
		return "_empty"
	}
	return "s_" + s
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
