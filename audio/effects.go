package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator of the given shape
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope spanning duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// sineTone is a finite beep sine generator; frequencies at or above Nyquist fall back to the oscillator
func sineTone(rate beep.SampleRate, freq float64, duration time.Duration) beep.Streamer {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, duration, WaveSine, rate)
	}
	return beep.Take(rate.N(duration), tone)
}

// CreateCommitSound is a soft two-partial chime played when a codon commits
func CreateCommitSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := CommitSoundDuration

	fund := NewEnvelope(sineTone(rate, 660, d), d, 5*time.Millisecond, 120*time.Millisecond, rate)
	over := NewEnvelope(sineTone(rate, 1320, d), d, 5*time.Millisecond, 60*time.Millisecond, rate)

	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	return newVolume(mixed, cfg.volume(CueCommit))
}

// CreateDeathSound is a falling pair of square notes for an enemy dying
func CreateDeathSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := DeathSoundNoteDuration

	n1 := NewEnvelope(NewOscillator(987.77, d, WaveSquare, rate), d, 2*time.Millisecond, 40*time.Millisecond, rate)
	n2 := NewEnvelope(NewOscillator(659.25, 2*d, WaveSquare, rate), 2*d, 2*time.Millisecond, 120*time.Millisecond, rate)

	return newVolume(beep.Seq(n1, n2), cfg.volume(CueDeath))
}

// CreateErrorSound is a short saw buzz for a rejected codon
func CreateErrorSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := ErrorSoundDuration

	shaped := NewEnvelope(NewOscillator(100, d, WaveSaw, rate), d, 5*time.Millisecond, 40*time.Millisecond, rate)
	return newVolume(shaped, cfg.volume(CueError))
}

// CreateSpawnSound is a noise whoosh for a spawner refill
func CreateSpawnSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := SpawnSoundDuration

	shaped := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 60*time.Millisecond, 100*time.Millisecond, rate)
	return newVolume(shaped, cfg.volume(CueSpawn))
}

// CueStream returns the streamer for cue, or nil for an unknown cue
func CueStream(cue Cue, cfg *Config) beep.Streamer {
	switch cue {
	case CueCommit:
		return CreateCommitSound(cfg)
	case CueDeath:
		return CreateDeathSound(cfg)
	case CueError:
		return CreateErrorSound(cfg)
	case CueSpawn:
		return CreateSpawnSound(cfg)
	default:
		return nil
	}
}
