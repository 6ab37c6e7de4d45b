// Package alert flashes the tray icon after a session completes.
package alert

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// Config contains flash timing values. Each on and off phase draws its
// length from the configured range.
type Config struct {
	OnDuration  Range
	OffDuration Range
	FlashFor    time.Duration
}

// DefaultConfig returns the stock flash timings.
func DefaultConfig() Config {
	return Config{
		OnDuration:  Range{Min: 400 * time.Millisecond, Max: 650 * time.Millisecond},
		OffDuration: Range{Min: 250 * time.Millisecond, Max: 450 * time.Millisecond},
		FlashFor:    10 * time.Second,
	}
}

// Flasher alternates the tray icon between an attention frame and the
// resting frame for a bounded period.
type Flasher struct {
	mu         sync.Mutex
	config     Config
	updateIcon func(fyne.Resource)
	cancel     context.CancelFunc
}

// New creates a flasher that pushes icon frames through updateIcon.
func New(config Config, updateIcon func(fyne.Resource)) *Flasher {
	return &Flasher{
		config:     config,
		updateIcon: updateIcon,
	}
}

// Start begins flashing. A flash already in progress is cancelled first.
func (flasher *Flasher) Start(ctx context.Context, attention, resting fyne.Resource) {
	flasher.start(ctx, func(runCtx context.Context) {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		flasher.flash(runCtx, rng, attention, resting)
	})
}

// Stop terminates any active flash.
func (flasher *Flasher) Stop() {
	flasher.mu.Lock()
	defer flasher.mu.Unlock()
	if flasher.cancel != nil {
		flasher.cancel()
		flasher.cancel = nil
	}
}

func (flasher *Flasher) start(parent context.Context, run func(context.Context)) {
	flasher.mu.Lock()
	if flasher.cancel != nil {
		flasher.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	flasher.cancel = cancel
	flasher.mu.Unlock()

	go run(runCtx)
}

func (flasher *Flasher) flash(ctx context.Context, rng *rand.Rand, attention, resting fyne.Resource) {
	// The resting frame always wins in the end, however the flash exits.
	defer flasher.updateIcon(resting)

	deadline := time.Now().Add(flasher.config.FlashFor)
	for time.Now().Before(deadline) {
		flasher.updateIcon(attention)
		if !sleepWithContext(ctx, flasher.config.OnDuration.Random(rng)) {
			return
		}
		flasher.updateIcon(resting)
		if !sleepWithContext(ctx, flasher.config.OffDuration.Random(rng)) {
			return
		}
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
