package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomotimer/internal/core/model"
)

// newTestEngine builds an engine whose real ticker never fires during a
// test; ticks are delivered manually through advance.
func newTestEngine(durations model.DurationConfig) *Engine {
	return New(durations, Config{TickInterval: time.Hour})
}

func currentStop(engine *Engine) chan struct{} {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.stopTick
}

func advance(engine *Engine, ticks int) {
	for i := 0; i < ticks; i++ {
		engine.tick(currentStop(engine), time.Now())
	}
}

func collectTypes(events <-chan Event) map[EventType]int {
	counts := make(map[EventType]int)
	for {
		select {
		case event := <-events:
			counts[event.Type]++
		default:
			return counts
		}
	}
}

func TestNew_InitialSnapshot(t *testing.T) {
	engine := newTestEngine(model.DefaultDurationConfig())

	snapshot := engine.Snapshot()
	assert.Equal(t, model.ModeFocus, snapshot.Mode)
	assert.Equal(t, StateIdle, snapshot.State)
	assert.Equal(t, model.DefaultFocusDuration, snapshot.Remaining)
	assert.False(t, snapshot.Running)
	assert.Equal(t, 0.0, snapshot.Progress)
}

func TestSelectMode_ResetsToConfiguredDuration(t *testing.T) {
	config := model.DurationConfig{
		Focus:      1500 * time.Second,
		ShortBreak: 300 * time.Second,
		LongBreak:  900 * time.Second,
	}
	engine := newTestEngine(config)

	for _, mode := range model.Modes() {
		engine.SelectMode(mode)
		snapshot := engine.Snapshot()
		assert.Equal(t, mode, snapshot.Mode)
		assert.Equal(t, config.Duration(mode), snapshot.Remaining, "mode=%s", mode)
		assert.False(t, snapshot.Running, "mode=%s", mode)
	}
}

func TestSelectMode_CancelsRunningCountdown(t *testing.T) {
	engine := newTestEngine(model.DefaultDurationConfig())
	engine.ToggleRun()
	advance(engine, 3)

	engine.SelectMode(model.ModeShortBreak)

	snapshot := engine.Snapshot()
	assert.Equal(t, model.ModeShortBreak, snapshot.Mode)
	assert.Equal(t, model.DefaultShortBreakDuration, snapshot.Remaining)
	assert.False(t, snapshot.Running)
	assert.Nil(t, currentStop(engine), "clock subscription should be released")
}

func TestToggleRun_StartsAndPauses(t *testing.T) {
	engine := newTestEngine(model.DefaultDurationConfig())

	engine.ToggleRun()
	assert.True(t, engine.Snapshot().Running)
	assert.Equal(t, StateRunning, engine.Snapshot().State)

	advance(engine, 5)
	engine.ToggleRun()

	snapshot := engine.Snapshot()
	assert.False(t, snapshot.Running)
	assert.Equal(t, StatePaused, snapshot.State)
	assert.Equal(t, model.DefaultFocusDuration-5*time.Second, snapshot.Remaining)
	assert.Nil(t, currentStop(engine))
}

func TestTick_DecrementsByOneSecond(t *testing.T) {
	engine := newTestEngine(model.DurationConfig{Focus: 10 * time.Second})
	engine.ToggleRun()

	for i := 1; i <= 9; i++ {
		advance(engine, 1)
		snapshot := engine.Snapshot()
		assert.Equal(t, 10*time.Second-time.Duration(i)*time.Second, snapshot.Remaining, "tick %d", i)
		assert.True(t, snapshot.Running, "tick %d", i)
	}
}

func TestTick_CompletionFiresExactlyOnce(t *testing.T) {
	engine := newTestEngine(model.DurationConfig{Focus: 3 * time.Second})
	events := engine.Subscribe(64)
	engine.ToggleRun()

	advance(engine, 3)

	snapshot := engine.Snapshot()
	assert.Equal(t, time.Duration(0), snapshot.Remaining)
	assert.False(t, snapshot.Running)
	assert.Equal(t, StateFinished, snapshot.State)

	// Ticks delivered past completion are discarded and must not re-fire.
	advance(engine, 5)
	assert.Equal(t, time.Duration(0), engine.Snapshot().Remaining)

	counts := collectTypes(events)
	assert.Equal(t, 1, counts[EventSessionComplete])
}

func TestTick_NeverGoesNegative(t *testing.T) {
	engine := newTestEngine(model.DurationConfig{Focus: time.Second})
	engine.ToggleRun()
	advance(engine, 10)

	assert.Equal(t, time.Duration(0), engine.Snapshot().Remaining)
}

func TestToggleRun_AtZeroRemainingRefiresCompletion(t *testing.T) {
	engine := newTestEngine(model.DurationConfig{Focus: 2 * time.Second})
	events := engine.Subscribe(64)
	engine.ToggleRun()
	advance(engine, 2)
	require.Equal(t, StateFinished, engine.Snapshot().State)

	// The engine imposes no own guard: starting from zero is permitted and
	// the next tick treats the session as already finished.
	engine.ToggleRun()
	assert.True(t, engine.Snapshot().Running)
	advance(engine, 1)

	snapshot := engine.Snapshot()
	assert.False(t, snapshot.Running)
	assert.Equal(t, time.Duration(0), snapshot.Remaining)
	assert.Equal(t, 2, collectTypes(events)[EventSessionComplete])
}

func TestReset_Idempotent(t *testing.T) {
	engine := newTestEngine(model.DefaultDurationConfig())
	engine.ToggleRun()
	advance(engine, 7)

	engine.Reset()
	first := engine.Snapshot()
	engine.Reset()
	second := engine.Snapshot()

	assert.Equal(t, first, second)
	assert.Equal(t, model.DefaultFocusDuration, second.Remaining)
	assert.False(t, second.Running)
	assert.Equal(t, StateIdle, second.State)
}

func TestProgress_MonotonicWithinRun(t *testing.T) {
	engine := newTestEngine(model.DurationConfig{Focus: 90 * time.Second})
	engine.ToggleRun()

	last := engine.Snapshot().Progress
	for i := 0; i < 90; i++ {
		advance(engine, 1)
		progress := engine.Snapshot().Progress
		assert.GreaterOrEqual(t, progress, last, "tick %d", i)
		assert.GreaterOrEqual(t, progress, 0.0, "tick %d", i)
		assert.LessOrEqual(t, progress, 1.0, "tick %d", i)
		last = progress
	}
	assert.Equal(t, 1.0, last)
}

func TestScenario_FullFocusCountdown(t *testing.T) {
	engine := newTestEngine(model.DefaultDurationConfig())
	events := engine.Subscribe(4096)

	engine.SelectMode(model.ModeFocus)
	engine.ToggleRun()
	advance(engine, 1500)

	snapshot := engine.Snapshot()
	assert.Equal(t, time.Duration(0), snapshot.Remaining)
	assert.False(t, snapshot.Running)
	assert.Equal(t, 1, collectTypes(events)[EventSessionComplete])
}

func TestApplyConfig_CancelsAndResetsActiveMode(t *testing.T) {
	engine := newTestEngine(model.DefaultDurationConfig())
	engine.ToggleRun()
	advance(engine, 10)

	engine.ApplyConfig(model.ConfigInput{
		Focus:      model.DurationInput{Minutes: 1},
		ShortBreak: model.DurationInput{Minutes: 5},
		LongBreak:  model.DurationInput{Minutes: 15},
	}.DurationConfig())

	snapshot := engine.Snapshot()
	assert.Equal(t, time.Minute, snapshot.Remaining)
	assert.False(t, snapshot.Running)
	assert.Equal(t, StateIdle, snapshot.State)
	assert.Nil(t, currentStop(engine))
}

func TestApplyConfig_NormalizesZeroDurations(t *testing.T) {
	engine := newTestEngine(model.DefaultDurationConfig())
	engine.ApplyConfig(model.DurationConfig{})

	assert.Equal(t, model.DefaultFocusDuration, engine.Snapshot().Remaining)
}

func TestTick_StaleRunCannotTouchReplacementCountdown(t *testing.T) {
	engine := newTestEngine(model.DefaultDurationConfig())
	engine.ToggleRun()
	stale := currentStop(engine)

	engine.SelectMode(model.ModeLongBreak)
	engine.ToggleRun()

	// A tick raced from the cancelled run carries its old stop handle and
	// must be discarded even though a new countdown is running.
	assert.False(t, engine.tick(stale, time.Now()))
	assert.Equal(t, model.DefaultLongBreakDuration, engine.Snapshot().Remaining)
}

func TestStop_ClosesObserverChannels(t *testing.T) {
	engine := newTestEngine(model.DefaultDurationConfig())
	events := engine.Subscribe(4)

	engine.Stop()

	_, open := <-events
	assert.False(t, open)
}

func TestEngine_TickerDrivenCountdownCompletes(t *testing.T) {
	engine := New(model.DurationConfig{Focus: 3 * time.Second}, Config{TickInterval: 5 * time.Millisecond})
	defer engine.Stop()
	events := engine.Subscribe(64)

	engine.ToggleRun()

	require.Eventually(t, func() bool {
		snapshot := engine.Snapshot()
		return snapshot.State == StateFinished && !snapshot.Running
	}, time.Second, time.Millisecond)

	assert.Equal(t, 1, collectTypes(events)[EventSessionComplete])
}

type fakeIdleChecker struct {
	idle time.Duration
	err  error
}

func (checker fakeIdleChecker) IdleDuration() (time.Duration, error) {
	return checker.idle, checker.err
}

func TestIdlePause_PausesRunningFocusCountdown(t *testing.T) {
	engine := newTestEngine(model.DefaultDurationConfig())
	engine.SetIdleChecker(fakeIdleChecker{idle: time.Hour})
	engine.SetIdlePause(true)
	events := engine.Subscribe(16)

	engine.ToggleRun()
	advance(engine, 1)

	snapshot := engine.Snapshot()
	assert.False(t, snapshot.Running)
	assert.Equal(t, model.DefaultFocusDuration, snapshot.Remaining, "pause happens before the decrement")
	assert.Equal(t, 1, collectTypes(events)[EventIdlePause])
}

func TestIdlePause_BreaksAreExempt(t *testing.T) {
	engine := newTestEngine(model.DefaultDurationConfig())
	engine.SetIdleChecker(fakeIdleChecker{idle: time.Hour})
	engine.SetIdlePause(true)

	engine.SelectMode(model.ModeShortBreak)
	engine.ToggleRun()
	advance(engine, 2)

	snapshot := engine.Snapshot()
	assert.True(t, snapshot.Running)
	assert.Equal(t, model.DefaultShortBreakDuration-2*time.Second, snapshot.Remaining)
}

func TestIdlePause_UnsupportedCheckerDisablesItself(t *testing.T) {
	engine := newTestEngine(model.DefaultDurationConfig())
	engine.SetIdleChecker(fakeIdleChecker{err: ErrIdleUnsupported})
	engine.SetIdlePause(true)
	events := engine.Subscribe(16)

	engine.ToggleRun()
	advance(engine, 3)

	snapshot := engine.Snapshot()
	assert.True(t, snapshot.Running, "an unsupported checker must not stall the countdown")
	assert.Equal(t, model.DefaultFocusDuration-3*time.Second, snapshot.Remaining)
	assert.Equal(t, 1, collectTypes(events)[EventIdleError], "only the first check reports")
}

func TestSnapshot_ProgressReflectsElapsedFraction(t *testing.T) {
	engine := newTestEngine(model.DurationConfig{Focus: 100 * time.Second})
	engine.ToggleRun()
	advance(engine, 25)

	assert.InDelta(t, 0.25, engine.Snapshot().Progress, 1e-9)
}
