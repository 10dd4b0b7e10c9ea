package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// cueCache stores pre-rendered cue buffers so Play never synthesizes on the engine goroutine twice
type cueCache struct {
	mu     sync.RWMutex
	cfg    *Config
	format beep.Format
	store  [cueCount]*beep.Buffer
}

func newCueCache(cfg *Config) *cueCache {
	return &cueCache{
		cfg:    cfg,
		format: beep.Format{SampleRate: beep.SampleRate(cfg.SampleRate), NumChannels: 2, Precision: 2},
	}
}

// get returns the cached buffer or renders it on demand; nil for unknown cues
func (c *cueCache) get(cue Cue) *beep.Buffer {
	if cue < 0 || cue >= cueCount {
		return nil
	}

	c.mu.RLock()
	if buf := c.store[cue]; buf != nil {
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if buf := c.store[cue]; buf != nil {
		return buf
	}
	s := CueStream(cue, c.cfg)
	if s == nil {
		return nil
	}
	buf := beep.NewBuffer(c.format)
	buf.Append(s)
	c.store[cue] = buf
	return buf
}

// stream returns a fresh playback of cue
func (c *cueCache) stream(cue Cue) beep.StreamSeeker {
	buf := c.get(cue)
	if buf == nil {
		return nil
	}
	return buf.Streamer(0, buf.Len())
}

// preload renders every cue up front
func (c *cueCache) preload() {
	for cue := range cueCount {
		c.get(cue)
	}
}
