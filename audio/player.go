package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays cues without blocking the caller
type Player interface {
	Play(cue Cue)
	Close()
}

// Silent discards every cue
type Silent struct{}

func (Silent) Play(Cue) {}
func (Silent) Close()   {}

// SpeakerPlayer mixes cues into the system speaker
type SpeakerPlayer struct {
	mu     sync.Mutex
	cache  *cueCache
	mixer  *beep.Mixer
	closed bool
}

// NewPlayer opens the speaker, falling back to Silent when audio is disabled or unavailable
func NewPlayer(cfg *Config, logger *slog.Logger) Player {
	if cfg == nil || !cfg.Enabled {
		return Silent{}
	}
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, continuing muted", "error", err)
		}
		return Silent{}
	}

	p := &SpeakerPlayer{cache: newCueCache(cfg), mixer: &beep.Mixer{}}
	p.cache.preload()
	speaker.Play(p.mixer)
	return p
}

func (p *SpeakerPlayer) Play(cue Cue) {
	s := p.cache.stream(cue)
	if s == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Clear()
	speaker.Close()
}
