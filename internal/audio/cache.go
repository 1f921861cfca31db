package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// soundCache stores pre-rendered effect buffers
type soundCache struct {
	mu     sync.RWMutex
	format beep.Format
	volume float64
	store  [soundCount]*beep.Buffer
}

func newSoundCache(rate beep.SampleRate, volume float64) *soundCache {
	return &soundCache{
		format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
		volume: volume,
	}
}

// get returns the cached buffer or renders it on demand
func (c *soundCache) get(id SoundID) *beep.Buffer {
	if !id.valid() {
		return nil
	}

	c.mu.RLock()
	buf := c.store[id]
	c.mu.RUnlock()
	if buf != nil {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.store[id] != nil {
		return c.store[id]
	}

	buf = beep.NewBuffer(c.format)
	buf.Append(Build(id, c.format.SampleRate, c.volume))
	c.store[id] = buf
	return buf
}

// streamer returns a fresh playback cursor over a cached effect
func (c *soundCache) streamer(id SoundID) beep.Streamer {
	buf := c.get(id)
	if buf == nil {
		return nil
	}
	return buf.Streamer(0, buf.Len())
}

// preload renders every effect so the first bounce does not stall a tick
func (c *soundCache) preload() {
	for _, id := range Sounds() {
		c.get(id)
	}
}
