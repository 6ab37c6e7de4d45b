package preferences

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pomotimer/internal/core/model"
)

func TestDefaultSettings_MatchModeDefaults(t *testing.T) {
	settings := DefaultSettings()

	assert.Equal(t, model.DefaultFocusDuration, settings.Focus)
	assert.Equal(t, model.DefaultShortBreakDuration, settings.ShortBreak)
	assert.Equal(t, model.DefaultLongBreakDuration, settings.LongBreak)
	assert.True(t, settings.SoundEnabled)
	assert.False(t, settings.IdlePause)
	assert.False(t, settings.Autostart)
}

func TestSettings_DurationConfig(t *testing.T) {
	settings := Settings{
		Focus:      45 * time.Minute,
		ShortBreak: 10 * time.Minute,
		LongBreak:  25 * time.Minute,
	}

	config := settings.DurationConfig()
	assert.Equal(t, settings.Focus, config.Focus)
	assert.Equal(t, settings.ShortBreak, config.ShortBreak)
	assert.Equal(t, settings.LongBreak, config.LongBreak)
}

func TestParseComponent(t *testing.T) {
	cases := []struct {
		name  string
		value string
		max   int
		want  int
	}{
		{name: "plain number", value: "25", max: maxMinutes, want: 25},
		{name: "zero", value: "0", max: maxMinutes, want: 0},
		{name: "negative clamps to zero", value: "-3", max: maxMinutes, want: 0},
		{name: "above max clamps", value: "120", max: maxMinutes, want: 90},
		{name: "seconds above max clamp", value: "75", max: maxSeconds, want: 59},
		{name: "non numeric", value: "abc", max: maxMinutes, want: 0},
		{name: "empty", value: "", max: maxMinutes, want: 0},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, parseComponent(testCase.value, testCase.max))
		})
	}
}

func TestSplitDuration(t *testing.T) {
	cases := []struct {
		value   time.Duration
		minutes int
		seconds int
	}{
		{value: 25 * time.Minute, minutes: 25, seconds: 0},
		{value: 90*time.Second + 30*time.Second, minutes: 2, seconds: 0},
		{value: 5*time.Minute + 30*time.Second, minutes: 5, seconds: 30},
		{value: 59 * time.Second, minutes: 0, seconds: 59},
		{value: 0, minutes: 0, seconds: 0},
		{value: -time.Minute, minutes: 0, seconds: 0},
	}

	for _, testCase := range cases {
		minutes, seconds := splitDuration(testCase.value)
		assert.Equal(t, testCase.minutes, minutes, "value=%s", testCase.value)
		assert.Equal(t, testCase.seconds, seconds, "value=%s", testCase.value)
	}
}
