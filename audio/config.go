package audio

import (
	"encoding/json"
	"os"
	"strconv"
	"time"
)

// Cue identifies a sound played on a field event
type Cue int

const (
	CueCommit Cue = iota // Codon committed
	CueDeath             // Enemy died
	CueError             // Codon rejected
	CueSpawn             // Spawner refill
	cueCount
)

var cueNames = [cueCount]string{"commit", "death", "error", "spawn"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

const (
	CommitSoundDuration    = 180 * time.Millisecond
	DeathSoundNoteDuration = 80 * time.Millisecond
	ErrorSoundDuration     = 120 * time.Millisecond
	SpawnSoundDuration     = 250 * time.Millisecond
)

// Config holds audio settings
type Config struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64
	Volumes      map[Cue]float64
}

// DefaultConfig returns the stock mix
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		SampleRate:   48000,
		MasterVolume: 0.5,
		Volumes: map[Cue]float64{
			CueCommit: 0.6,
			CueDeath:  0.8,
			CueError:  0.5,
			CueSpawn:  0.3,
		},
	}
}

func (c *Config) volume(cue Cue) float64 {
	return c.Volumes[cue] * c.MasterVolume
}

// LoadConfig reads overrides from the environment on top of DefaultConfig
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("GRIDFIELD_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv("GRIDFIELD_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// {"commit":0.4,"death":1}
	if cueVols := os.Getenv("GRIDFIELD_CUE_VOLUMES"); cueVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(cueVols), &volumes); err == nil {
			for cue := range cueCount {
				if v, ok := volumes[cue.String()]; ok {
					cfg.Volumes[cue] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("GRIDFIELD_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
