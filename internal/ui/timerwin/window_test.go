package timerwin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pomotimer/internal/core/countdown"
	"pomotimer/internal/core/model"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		value time.Duration
		want  string
	}{
		{value: 25 * time.Minute, want: "25:00"},
		{value: 5*time.Minute + 7*time.Second, want: "05:07"},
		{value: 90 * time.Minute, want: "90:00"},
		{value: time.Second, want: "00:01"},
		{value: 0, want: "00:00"},
		{value: -3 * time.Second, want: "00:00"},
	}

	for _, testCase := range cases {
		assert.Equal(t, testCase.want, formatDuration(testCase.value), "value=%s", testCase.value)
	}
}

func TestStatusText(t *testing.T) {
	cases := []struct {
		name     string
		snapshot countdown.Snapshot
		want     string
	}{
		{
			name:     "idle",
			snapshot: countdown.Snapshot{Mode: model.ModeFocus, State: countdown.StateIdle},
			want:     "Ready",
		},
		{
			name:     "running focus",
			snapshot: countdown.Snapshot{Mode: model.ModeFocus, State: countdown.StateRunning},
			want:     "Focus in progress",
		},
		{
			name:     "paused",
			snapshot: countdown.Snapshot{Mode: model.ModeShortBreak, State: countdown.StatePaused},
			want:     "Paused",
		},
		{
			name:     "finished focus",
			snapshot: countdown.Snapshot{Mode: model.ModeFocus, State: countdown.StateFinished},
			want:     "Focus complete. Time for a break.",
		},
		{
			name:     "finished break",
			snapshot: countdown.Snapshot{Mode: model.ModeLongBreak, State: countdown.StateFinished},
			want:     "Break over. Back to focus.",
		},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, statusText(testCase.snapshot))
		})
	}
}

func TestModeByLabel(t *testing.T) {
	for _, mode := range model.Modes() {
		found, ok := modeByLabel(mode.Label())
		assert.True(t, ok)
		assert.Equal(t, mode, found)
	}

	_, ok := modeByLabel("Siesta")
	assert.False(t, ok)
}
