package preferences

import (
	"time"

	"pomotimer/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	Focus      time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration

	SoundEnabled bool
	IdlePause    bool
	Autostart    bool
}

// DefaultSettings returns default settings for Pomotimer.
func DefaultSettings() Settings {
	return Settings{
		Focus:        model.DefaultFocusDuration,
		ShortBreak:   model.DefaultShortBreakDuration,
		LongBreak:    model.DefaultLongBreakDuration,
		SoundEnabled: true,
		IdlePause:    false,
		Autostart:    false,
	}
}

// DurationConfig converts settings to the countdown duration configuration.
func (settings Settings) DurationConfig() model.DurationConfig {
	return model.DurationConfig{
		Focus:      settings.Focus,
		ShortBreak: settings.ShortBreak,
		LongBreak:  settings.LongBreak,
	}
}
