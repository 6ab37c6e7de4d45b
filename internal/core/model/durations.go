package model

import "time"

// DurationConfig holds the configured countdown length for each mode.
// It is replaced wholesale on save and never partially mutated.
type DurationConfig struct {
	Focus      time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DefaultDurationConfig returns the built-in mode durations.
func DefaultDurationConfig() DurationConfig {
	return DurationConfig{
		Focus:      DefaultFocusDuration,
		ShortBreak: DefaultShortBreakDuration,
		LongBreak:  DefaultLongBreakDuration,
	}
}

// Duration returns the configured length for the given mode.
func (config DurationConfig) Duration(mode Mode) time.Duration {
	switch mode {
	case ModeShortBreak:
		return config.ShortBreak
	case ModeLongBreak:
		return config.LongBreak
	default:
		return config.Focus
	}
}

// Normalized replaces non-positive values with the mode defaults, so every
// configured duration is strictly positive.
func (config DurationConfig) Normalized() DurationConfig {
	if config.Focus <= 0 {
		config.Focus = DefaultFocusDuration
	}
	if config.ShortBreak <= 0 {
		config.ShortBreak = DefaultShortBreakDuration
	}
	if config.LongBreak <= 0 {
		config.LongBreak = DefaultLongBreakDuration
	}
	return config
}

// DurationInput is one raw minutes/seconds pair as entered by the user.
type DurationInput struct {
	Minutes int
	Seconds int
}

// Normalize converts the pair to a countdown length. Negative components
// clamp to zero independently; a zero total falls back to the supplied
// default, so a zero-length session is never produced.
func (input DurationInput) Normalize(fallback time.Duration) time.Duration {
	minutes := input.Minutes
	if minutes < 0 {
		minutes = 0
	}
	seconds := input.Seconds
	if seconds < 0 {
		seconds = 0
	}
	total := time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second
	if total == 0 {
		return fallback
	}
	return total
}

// ConfigInput carries one raw minutes/seconds pair per mode.
type ConfigInput struct {
	Focus      DurationInput
	ShortBreak DurationInput
	LongBreak  DurationInput
}

// DurationConfig normalizes every pair against its mode default.
func (input ConfigInput) DurationConfig() DurationConfig {
	return DurationConfig{
		Focus:      input.Focus.Normalize(DefaultFocusDuration),
		ShortBreak: input.ShortBreak.Normalize(DefaultShortBreakDuration),
		LongBreak:  input.LongBreak.Normalize(DefaultLongBreakDuration),
	}
}
