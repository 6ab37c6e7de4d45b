package countdown

import (
	"errors"
	"sync"
	"time"

	"pomotimer/internal/core/model"
)

// ErrIdleUnsupported indicates idle detection is not available on this system.
var ErrIdleUnsupported = errors.New("idle detection unsupported")

// IdleChecker reports the duration of user inactivity.
type IdleChecker interface {
	IdleDuration() (time.Duration, error)
}

// Config contains runtime options for the Engine.
type Config struct {
	TickInterval      time.Duration
	IdlePauseAfter    time.Duration
	IdleCheckInterval time.Duration
}

// Engine is the state machine that owns the live countdown session. It is
// the only mutator of the session state; commands and ticks are serialized
// under one lock, and every state-changing command cancels the clock
// subscription of the run it interrupts.
type Engine struct {
	mu            sync.Mutex
	durations     model.DurationConfig
	options       Config
	mode          model.Mode
	remaining     time.Duration
	running       bool
	stopTick      chan struct{}
	idleChecker   IdleChecker
	idlePause     bool
	lastIdleCheck time.Time
	events        []chan Event
}

// New creates an Engine for the given durations, selecting Focus at its
// full configured length.
func New(durations model.DurationConfig, options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.IdlePauseAfter <= 0 {
		options.IdlePauseAfter = 2 * time.Minute
	}
	if options.IdleCheckInterval <= 0 {
		options.IdleCheckInterval = 5 * time.Second
	}

	durations = durations.Normalized()
	return &Engine{
		durations: durations,
		options:   options,
		mode:      model.ModeFocus,
		remaining: durations.Duration(model.ModeFocus),
	}
}

// SetIdleChecker injects an idle checker used by the idle auto-pause.
func (engine *Engine) SetIdleChecker(checker IdleChecker) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.idleChecker = checker
}

// SetIdlePause toggles pausing a running Focus countdown on user inactivity.
func (engine *Engine) SetIdlePause(enabled bool) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.idlePause = enabled
}

// Subscribe registers a new observer channel. Events are delivered
// best-effort; a full channel drops the event rather than blocking a tick.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	engine.events = append(engine.events, ch)
	engine.mu.Unlock()
	return ch
}

// SelectMode switches the active mode and resets the countdown to the
// mode's full configured length. Any in-progress countdown is cancelled.
func (engine *Engine) SelectMode(mode model.Mode) {
	engine.mu.Lock()
	engine.stopTickingLocked()
	engine.mode = mode
	engine.remaining = engine.durations.Duration(mode)
	engine.running = false
	engine.emitLocked(engine.eventLocked(EventStateChange, time.Now()))
	engine.mu.Unlock()
}

// ToggleRun flips the running flag. Starting acquires a fresh clock
// subscription; pausing cancels it. Starting at zero remaining is permitted
// and completes on the next tick.
func (engine *Engine) ToggleRun() {
	engine.mu.Lock()
	if engine.running {
		engine.stopTickingLocked()
		engine.running = false
		engine.emitLocked(engine.eventLocked(EventStateChange, time.Now()))
		engine.mu.Unlock()
		return
	}

	engine.running = true
	engine.lastIdleCheck = time.Time{}
	stop := make(chan struct{})
	engine.stopTick = stop
	engine.emitLocked(engine.eventLocked(EventStateChange, time.Now()))
	engine.mu.Unlock()

	go engine.run(stop)
}

// Reset restores the active mode to its full configured length and stops
// the countdown. Idempotent.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	engine.resetLocked()
	engine.mu.Unlock()
}

// ApplyConfig replaces the duration configuration wholesale and then resets
// the active mode against the new lengths. The config change cancelling a
// live countdown is part of the contract, not an incidental side effect.
func (engine *Engine) ApplyConfig(durations model.DurationConfig) {
	engine.mu.Lock()
	engine.durations = durations.Normalized()
	engine.resetLocked()
	engine.mu.Unlock()
}

// Stop terminates the engine and closes all observer channels.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	engine.stopTickingLocked()
	engine.running = false
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Snapshot returns the current session view.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return Snapshot{
		Mode:      engine.mode,
		State:     engine.stateLocked(),
		Remaining: engine.remaining,
		Running:   engine.running,
		Progress:  engine.progressLocked(),
	}
}

func (engine *Engine) resetLocked() {
	engine.stopTickingLocked()
	engine.remaining = engine.durations.Duration(engine.mode)
	engine.running = false
	engine.emitLocked(engine.eventLocked(EventStateChange, time.Now()))
}

func (engine *Engine) run(stop chan struct{}) {
	ticker := time.NewTicker(engine.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case tickTime := <-ticker.C:
			if !engine.tick(stop, tickTime) {
				return
			}
		}
	}
}

// tick advances the countdown by one second and reports whether the clock
// subscription stays alive. The stop handle identifies the run the tick
// belongs to: a tick raced against a cancelling command is discarded
// instead of decrementing the replacement countdown.
func (engine *Engine) tick(stop chan struct{}, tickTime time.Time) bool {
	engine.mu.Lock()
	if !engine.running || engine.stopTick != stop {
		engine.mu.Unlock()
		return false
	}

	if engine.handleIdleCheckLocked(tickTime) {
		engine.mu.Unlock()
		return false
	}

	if engine.remaining > 0 {
		engine.remaining -= time.Second
		if engine.remaining < 0 {
			engine.remaining = 0
		}
	}

	if engine.remaining == 0 {
		engine.stopTickingLocked()
		engine.running = false
		engine.emitLocked(engine.eventLocked(EventSessionComplete, tickTime))
		engine.mu.Unlock()
		return false
	}

	engine.emitLocked(engine.eventLocked(EventProgress, tickTime))
	engine.mu.Unlock()
	return true
}

// handleIdleCheckLocked pauses a running Focus countdown once user
// inactivity passes the threshold. Breaks never idle-pause. Reports whether
// the countdown was paused.
func (engine *Engine) handleIdleCheckLocked(now time.Time) bool {
	if !engine.idlePause || engine.idleChecker == nil || engine.mode != model.ModeFocus {
		return false
	}
	if !engine.lastIdleCheck.IsZero() && now.Sub(engine.lastIdleCheck) < engine.options.IdleCheckInterval {
		return false
	}
	engine.lastIdleCheck = now

	idleDuration, err := engine.idleChecker.IdleDuration()
	if err != nil {
		if errors.Is(err, ErrIdleUnsupported) {
			engine.idlePause = false
			engine.idleChecker = nil
		}
		event := engine.eventLocked(EventIdleError, now)
		event.Message = err.Error()
		engine.emitLocked(event)
		return false
	}

	if idleDuration >= engine.options.IdlePauseAfter {
		engine.stopTickingLocked()
		engine.running = false
		event := engine.eventLocked(EventIdlePause, now)
		event.Message = "paused on inactivity"
		engine.emitLocked(event)
		return true
	}
	return false
}

func (engine *Engine) stopTickingLocked() {
	if engine.stopTick != nil {
		close(engine.stopTick)
		engine.stopTick = nil
	}
}

func (engine *Engine) stateLocked() State {
	if engine.running {
		return StateRunning
	}
	if engine.remaining == 0 {
		return StateFinished
	}
	if engine.remaining == engine.durations.Duration(engine.mode) {
		return StateIdle
	}
	return StatePaused
}

func (engine *Engine) progressLocked() float64 {
	total := engine.durations.Duration(engine.mode)
	if total <= 0 {
		return 0
	}
	progress := float64(total-engine.remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (engine *Engine) eventLocked(eventType EventType, at time.Time) Event {
	return Event{
		Type:      eventType,
		Mode:      engine.mode,
		State:     engine.stateLocked(),
		Remaining: engine.remaining,
		Progress:  engine.progressLocked(),
		At:        at,
	}
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
