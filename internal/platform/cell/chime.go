package cell

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	chimeFreq     = 880
	chimeDuration = 50 * time.Millisecond
)

// BeepChime plays a short sine tone through the system speaker.
type BeepChime struct {
	mu     sync.Mutex
	closed bool
}

// NewBeepChime initializes the speaker.
func NewBeepChime() (*BeepChime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("cell: audio init: %w", err)
	}
	return &BeepChime{}, nil
}

// Play queues one chime. It does not block.
func (c *BeepChime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	tone, err := chimeStreamer(sampleRate)
	if err != nil {
		return
	}
	speaker.Play(tone)
}

// Close releases the speaker.
func (c *BeepChime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	speaker.Close()
}

// chimeStreamer returns the finite tone played on each chime.
func chimeStreamer(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, chimeFreq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sr.N(chimeDuration), sine), nil
}
