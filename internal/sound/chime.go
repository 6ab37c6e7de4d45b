// Package sound plays the synthesized completion chime.
package sound

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const chimeSampleRate = beep.SampleRate(44100)

// Chime owns the speaker and renders a short ascending three-note cue.
// Playback failures are logged and swallowed; they never reach the caller.
type Chime struct {
	mu       sync.Mutex
	enabled  bool
	initOnce sync.Once
	initErr  error
	playFn   func() error
}

func NewChime(enabled bool) *Chime {
	chime := &Chime{enabled: enabled}
	chime.playFn = chime.playTones
	return chime
}

// SetEnabled switches the audible cue on or off.
func (chime *Chime) SetEnabled(enabled bool) {
	chime.mu.Lock()
	chime.enabled = enabled
	chime.mu.Unlock()
}

func (chime *Chime) Enabled() bool {
	chime.mu.Lock()
	defer chime.mu.Unlock()
	return chime.enabled
}

// Play renders the cue once. A disabled chime is a no-op.
func (chime *Chime) Play() {
	chime.mu.Lock()
	enabled := chime.enabled
	play := chime.playFn
	chime.mu.Unlock()

	if !enabled {
		return
	}
	if err := play(); err != nil {
		log.Printf("Warning: completion chime failed: %v", err)
	}
}

func (chime *Chime) playTones() error {
	chime.initOnce.Do(func() {
		chime.initErr = speaker.Init(chimeSampleRate, chimeSampleRate.N(100*time.Millisecond))
	})
	if chime.initErr != nil {
		return fmt.Errorf("initialize speaker: %w", chime.initErr)
	}

	sequence, err := chimeSequence()
	if err != nil {
		return err
	}
	speaker.Play(sequence)
	return nil
}

// chimeSequence synthesizes E5, G5 and B5 with short gaps in between.
func chimeSequence() (beep.Streamer, error) {
	notes := []int{659, 784, 988}
	parts := make([]beep.Streamer, 0, len(notes)*2)
	for _, frequency := range notes {
		tone, err := generators.SinTone(chimeSampleRate, frequency)
		if err != nil {
			return nil, fmt.Errorf("synthesize %d Hz tone: %w", frequency, err)
		}
		parts = append(parts,
			beep.Take(chimeSampleRate.N(180*time.Millisecond), tone),
			beep.Silence(chimeSampleRate.N(40*time.Millisecond)),
		)
	}
	return beep.Seq(parts...), nil
}
