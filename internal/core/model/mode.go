package model

import "time"

// Mode identifies one of the three fixed work/break phases.
type Mode string

const (
	ModeFocus      Mode = "focus"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// Built-in countdown lengths used when a mode has no configured value.
const (
	DefaultFocusDuration      = 25 * time.Minute
	DefaultShortBreakDuration = 5 * time.Minute
	DefaultLongBreakDuration  = 15 * time.Minute
)

// Modes returns the three modes in display order.
func Modes() []Mode {
	return []Mode{ModeFocus, ModeShortBreak, ModeLongBreak}
}

// Label returns the human-readable mode name.
func (mode Mode) Label() string {
	switch mode {
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Focus"
	}
}

// DefaultDuration returns the built-in countdown length for the mode.
func (mode Mode) DefaultDuration() time.Duration {
	switch mode {
	case ModeShortBreak:
		return DefaultShortBreakDuration
	case ModeLongBreak:
		return DefaultLongBreakDuration
	default:
		return DefaultFocusDuration
	}
}
