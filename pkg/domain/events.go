package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStep     EventType = "step"
	EventReject   EventType = "reject"
	EventComplete EventType = "complete"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// StepEvent represents one input applied to the automaton.
type StepEvent struct {
	EventBase
	From  string `json:"from"`
	Input string `json:"input"`
	To    string `json:"to,omitempty"`
}

// CompleteEvent is emitted once a trajectory is finished.
type CompleteEvent struct {
	EventBase
	Start    string `json:"start"`
	Stop     string `json:"stop"`
	Steps    int    `json:"steps"`
	Rejected bool   `json:"rejected"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnStep     func(context.Context, *StepEvent)
	OnReject   func(context.Context, *StepEvent)
	OnComplete func(context.Context, *CompleteEvent)
}
