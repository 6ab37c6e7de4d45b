package countdown

import (
	"time"

	"pomotimer/internal/core/model"
)

// State is the derived lifecycle position of the active session.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateFinished State = "finished"
)

// EventType defines the type of engine event.
type EventType string

const (
	EventStateChange     EventType = "state_change"
	EventProgress        EventType = "progress"
	EventSessionComplete EventType = "session_complete"
	EventIdlePause       EventType = "idle_pause"
	EventIdleError       EventType = "idle_error"
)

// Event represents an engine update for observers.
type Event struct {
	Type      EventType
	Mode      model.Mode
	State     State
	Remaining time.Duration
	Progress  float64
	Message   string
	At        time.Time
}

// Snapshot is the read-only per-render view of the live session.
type Snapshot struct {
	Mode      model.Mode
	State     State
	Remaining time.Duration
	Running   bool
	Progress  float64
}
