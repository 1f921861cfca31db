// Package audiotest provides a sound player for tests.
package audiotest

import (
	"context"
	"sync"

	"github.com/vovakirdan/tui-pong/internal/audio"
)

// Recorder is an audio.Sequencer for tests. It remembers every sound it
// is asked to play and never blocks.
type Recorder struct {
	mu     sync.Mutex
	played []audio.SoundID
}

// PlayOnce records id.
func (r *Recorder) PlayOnce(id audio.SoundID) {
	r.mu.Lock()
	r.played = append(r.played, id)
	r.mu.Unlock()
}

// PlayAndWait records id and returns at once.
func (r *Recorder) PlayAndWait(ctx context.Context, id audio.SoundID) error {
	r.PlayOnce(id)
	return ctx.Err()
}

// Played returns a copy of the recorded sounds in order.
func (r *Recorder) Played() []audio.SoundID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]audio.SoundID(nil), r.played...)
}

// Count returns how many times id was played.
func (r *Recorder) Count(id audio.SoundID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.played {
		if p == id {
			n++
		}
	}
	return n
}

// Reset forgets all recorded sounds.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.played = nil
	r.mu.Unlock()
}
