package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns every sample
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for range 10000 {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream never ended")
	return nil
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples with ok=true, got %d ok=%v", n, ok)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d: channels differ", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave generation
func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if val := samples[i][0]; val != -1.0 && val != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, val)
		}
	}
}

// TestOscillatorDuration verifies the oscillator stops after its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond

	got := drain(t, NewOscillator(440, duration, WaveSaw, rate))
	if len(got) != rate.N(duration) {
		t.Errorf("Expected %d samples, got %d", rate.N(duration), len(got))
	}
}

// TestEnvelopeShape verifies attack ramps up and release ramps down to near zero
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	duration := 100 * time.Millisecond
	square := NewOscillator(1, duration, WaveSquare, rate) // stays at +1 for the first half period

	env := NewEnvelope(square, duration, 10*time.Millisecond, 10*time.Millisecond, rate)
	got := drain(t, env)

	if len(got) != 100 {
		t.Fatalf("Expected 100 samples, got %d", len(got))
	}
	if got[0][0] != 0 {
		t.Errorf("Expected attack to start at 0, got %f", got[0][0])
	}
	if got[5][0] != 0.5 {
		t.Errorf("Expected half volume mid-attack, got %f", got[5][0])
	}
	if math.Abs(got[50][0]) != 1 {
		t.Errorf("Expected full volume in sustain, got %f", got[50][0])
	}
	if last := math.Abs(got[99][0]); last > 0.11 {
		t.Errorf("Expected release to approach 0, got %f", last)
	}
}

func TestCueStreams(t *testing.T) {
	cfg := DefaultConfig()

	for cue := range cueCount {
		t.Run(cue.String(), func(t *testing.T) {
			s := CueStream(cue, cfg)
			if s == nil {
				t.Fatal("Expected a streamer")
			}
			got := drain(t, s)
			if len(got) == 0 {
				t.Fatal("Expected samples")
			}
			peak := 0.0
			for _, smp := range got {
				peak = max(peak, math.Abs(smp[0]))
			}
			if peak == 0 || peak > 1.0 {
				t.Errorf("Unexpected peak amplitude %f", peak)
			}
		})
	}

	if CueStream(Cue(99), cfg) != nil {
		t.Error("Expected nil for unknown cue")
	}
}

func TestCueVolume_Muted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0

	for _, smp := range drain(t, CreateErrorSound(cfg)) {
		if smp[0] != 0 || smp[1] != 0 {
			t.Fatal("Expected silence at zero master volume")
		}
	}
}

func TestSilentPlayer(t *testing.T) {
	var p Player = Silent{}
	p.Play(CueCommit)
	p.Close()

	cfg := DefaultConfig()
	cfg.Enabled = false
	if _, ok := NewPlayer(cfg, nil).(Silent); !ok {
		t.Error("Expected Silent player when audio is disabled")
	}
}

func TestCueCache(t *testing.T) {
	cfg := DefaultConfig()
	c := newCueCache(cfg)

	first := c.get(CueCommit)
	if first == nil || first.Len() == 0 {
		t.Fatal("Expected a rendered commit buffer")
	}
	if c.get(CueCommit) != first {
		t.Error("Expected the cached buffer on the second lookup")
	}
	if c.get(Cue(-1)) != nil || c.stream(cueCount) != nil {
		t.Error("Expected nil for unknown cues")
	}

	c.preload()
	for cue := range cueCount {
		s := c.stream(cue)
		if s == nil {
			t.Fatalf("Missing stream for %s", cue)
		}
		if got := len(drain(t, s)); got != c.get(cue).Len() {
			t.Errorf("%s: streamed %d samples, buffer holds %d", cue, got, c.get(cue).Len())
		}
	}
}
