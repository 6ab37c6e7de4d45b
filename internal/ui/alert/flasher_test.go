package alert

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	bounded := Range{Min: 10 * time.Millisecond, Max: 50 * time.Millisecond}
	for i := 0; i < 200; i++ {
		value := bounded.Random(rng)
		assert.GreaterOrEqual(t, value, bounded.Min)
		assert.Less(t, value, bounded.Max)
	}

	degenerate := Range{Min: 30 * time.Millisecond, Max: 30 * time.Millisecond}
	assert.Equal(t, degenerate.Min, degenerate.Random(rng))

	inverted := Range{Min: 40 * time.Millisecond, Max: 10 * time.Millisecond}
	assert.Equal(t, inverted.Min, inverted.Random(rng))
}

type iconRecorder struct {
	mu     sync.Mutex
	frames []fyne.Resource
}

func (recorder *iconRecorder) record(resource fyne.Resource) {
	recorder.mu.Lock()
	recorder.frames = append(recorder.frames, resource)
	recorder.mu.Unlock()
}

func (recorder *iconRecorder) snapshot() []fyne.Resource {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return append([]fyne.Resource(nil), recorder.frames...)
}

func TestFlasher_AlternatesAndRestoresRestingFrame(t *testing.T) {
	attention := fyne.NewStaticResource("attention", []byte("a"))
	resting := fyne.NewStaticResource("resting", []byte("r"))

	recorder := &iconRecorder{}
	flasher := New(Config{
		OnDuration:  Range{Min: 2 * time.Millisecond, Max: 4 * time.Millisecond},
		OffDuration: Range{Min: 2 * time.Millisecond, Max: 4 * time.Millisecond},
		FlashFor:    40 * time.Millisecond,
	}, recorder.record)

	flasher.Start(context.Background(), attention, resting)

	require.Eventually(t, func() bool {
		frames := recorder.snapshot()
		return len(frames) > 3 && frames[len(frames)-1] == resting
	}, time.Second, 5*time.Millisecond)

	frames := recorder.snapshot()
	assert.Equal(t, attention, frames[0])
	assert.Contains(t, frames, resting)
}

func TestFlasher_StopCancelsAndRestores(t *testing.T) {
	attention := fyne.NewStaticResource("attention", []byte("a"))
	resting := fyne.NewStaticResource("resting", []byte("r"))

	recorder := &iconRecorder{}
	flasher := New(Config{
		OnDuration:  Range{Min: 5 * time.Millisecond, Max: 8 * time.Millisecond},
		OffDuration: Range{Min: 5 * time.Millisecond, Max: 8 * time.Millisecond},
		FlashFor:    time.Minute,
	}, recorder.record)

	flasher.Start(context.Background(), attention, resting)
	require.Eventually(t, func() bool {
		return len(recorder.snapshot()) > 0
	}, time.Second, time.Millisecond)

	flasher.Stop()

	require.Eventually(t, func() bool {
		frames := recorder.snapshot()
		return len(frames) > 0 && frames[len(frames)-1] == resting
	}, time.Second, time.Millisecond)

	settled := len(recorder.snapshot())
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, len(recorder.snapshot()), "no frames after stop")
}
