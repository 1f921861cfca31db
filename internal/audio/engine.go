package audio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// Engine plays effects through the system speaker. All effects share one
// mixer, so overlapping sounds are mixed instead of cut off.
type Engine struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	cache       *soundCache
	initialized bool
}

// NewEngine creates an engine for the given settings. Init must be called
// before sounds are audible.
func NewEngine(cfg config.AudioConfig) *Engine {
	rate := beep.SampleRate(cfg.SampleRate)
	return &Engine{
		rate:  rate,
		mixer: &beep.Mixer{},
		cache: newSoundCache(rate, cfg.Volume),
	}
}

// Init opens the output device and renders the effect cache.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(e.rate, e.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open output device: %w", err)
	}
	e.cache.preload()
	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// PlayOnce starts id and returns immediately. It is a no-op before Init.
func (e *Engine) PlayOnce(id SoundID) {
	e.add(e.cache.streamer(id))
}

// PlayAndWait plays id and blocks until it finishes or ctx is done.
func (e *Engine) PlayAndWait(ctx context.Context, id SoundID) error {
	s := e.cache.streamer(id)
	if s == nil {
		return fmt.Errorf("audio: unknown sound %d", id)
	}

	done := make(chan struct{})
	if !e.add(beep.Seq(s, beep.Callback(func() { close(done) }))) {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// add hands a streamer to the mixer and reports whether it will play.
func (e *Engine) add(s beep.Streamer) bool {
	if s == nil {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return false
	}

	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
	return true
}

// Close stops all sounds and releases the output device.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	e.initialized = false
}
