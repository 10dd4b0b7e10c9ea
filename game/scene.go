// Package game binds settings, the grid, its occupants and the audio cues into one playable scene.
// A Scene is driven from a single goroutine: input through HandleKey, time through Tick.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"
	"unicode"

	"github.com/lixenwraith/gridfield/actor"
	"github.com/lixenwraith/gridfield/audio"
	"github.com/lixenwraith/gridfield/config"
	"github.com/lixenwraith/gridfield/engine"
	"github.com/lixenwraith/gridfield/render"
	"github.com/lixenwraith/gridfield/status"
	"github.com/lixenwraith/gridfield/visual"
)

// Start and stop sequence timings
const (
	ShowDelay     = 200 * time.Millisecond
	SettleDelay   = 500 * time.Millisecond
	HideDelay     = 1000 * time.Millisecond
	TeardownDelay = 1500 * time.Millisecond
)

// CodonLength is the number of letters in a codon
const CodonLength = 3

// ErrNotRunning is returned when a codon is executed outside the running state
var ErrNotRunning = errors.New("scene not running")

// State is the scene lifecycle phase
type State int

const (
	StateIdle State = iota
	StateStarting
	StateRunning
	StateStopping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Scene owns one grid and everything that plays on it
type Scene struct {
	grid    *engine.Grid
	spawner *actor.Spawner
	layer   *visual.Layer
	queue   *engine.CommitQueue
	clock   engine.Clock
	rng     *rand.Rand
	player  audio.Player
	logger  *slog.Logger
	stats   *status.Registry

	entry   []engine.TaskID // start sequence callbacks still queued
	state   State
	buffer  []rune
	last    string
	message string
	isError bool
}

// NewScene compiles the codon table and builds the grid on layer.
// player may be nil for a silent scene, logger nil to discard.
func NewScene(settings *config.Settings, layer *visual.Layer, clock engine.Clock, rng *rand.Rand, logger *slog.Logger, player audio.Player) (*Scene, error) {
	if settings == nil {
		return nil, errors.New("nil settings")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if player == nil {
		player = audio.Silent{}
	}
	if clock == nil {
		clock = engine.NewTimeProvider()
	}

	program, err := settings.Program()
	if err != nil {
		return nil, fmt.Errorf("compile codons: %w", err)
	}

	s := &Scene{
		layer:  layer,
		queue:  engine.NewCommitQueue(),
		clock:  clock,
		rng:    rng,
		player: player,
		logger: logger,
		stats:  status.NewRegistry(),
	}

	opts := settings.Grid
	opts.Program = program
	opts.Queue = s.queue
	opts.Clock = clock
	opts.Rand = rng
	opts.Status = s.stats
	opts.Logger = logger
	opts.OnFault = s.onFault

	s.grid, err = engine.NewGrid(opts)
	if err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}
	if s.rng == nil {
		// the grid seeded its own source; occupants share a separate one
		seed := uint64(clock.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	if settings.SpawnerEnabled {
		s.spawner = actor.NewSpawner(s.grid, settings.Spawner, s.spawnEnemy, actor.IsEnemy)
	}
	return s, nil
}

// Grid returns the scene's grid
func (s *Scene) Grid() *engine.Grid { return s.grid }

// Spawner returns the enemy spawner, nil when disabled
func (s *Scene) Spawner() *actor.Spawner { return s.spawner }

// Stats returns the scene-wide metric registry
func (s *Scene) Stats() *status.Registry { return s.stats }

// State returns the lifecycle phase
func (s *Scene) State() State { return s.state }

// Done reports whether the stop sequence has finished
func (s *Scene) Done() bool { return s.state == StateStopped }

// Extent returns the layout size the renderer must fit: the field plus its offsets on both sides
func (s *Scene) Extent() (w, h float64) {
	l := s.grid.Layout()
	return l.FieldSize() + 2*l.Left, l.FieldSize() + 2*l.Top
}

// Start plays the entry sequence: the field appears scattered, then flies into place
func (s *Scene) Start() {
	if s.state != StateIdle {
		return
	}
	s.state = StateStarting
	s.logger.Info("scene starting", "size", s.grid.Size())

	s.grid.AppendTo(s.layer)
	s.setHidden(true)
	s.grid.Randomize()
	s.grid.SolidCommit()

	show := s.after(ShowDelay, func() { s.setHidden(false) })
	settle := s.after(ShowDelay+SettleDelay, func() {
		s.entry = nil
		if s.state != StateStarting {
			return
		}
		s.grid.Reset()
		s.grid.Commit()
		s.state = StateRunning
		if s.spawner != nil {
			s.spawner.Appear()
		}
		s.logger.Info("scene running")
	})
	s.entry = []engine.TaskID{show, settle}
}

// Stop plays the exit sequence: the field scatters, fades and is torn down
func (s *Scene) Stop() {
	if s.state != StateRunning && s.state != StateStarting {
		return
	}
	s.state = StateStopping
	s.buffer = s.buffer[:0]
	for _, id := range s.entry {
		s.queue.Cancel(id)
	}
	s.entry = nil
	if s.spawner != nil {
		s.spawner.Disappear()
	}

	s.grid.Randomize()
	s.grid.SolidCommit()

	s.after(HideDelay, func() { s.setHidden(true) })
	s.after(HideDelay+TeardownDelay, func() {
		s.grid.Remove()
		s.state = StateStopped
		s.logger.Info("scene stopped", "status", s.stats.Format(""))
	})
}

// Tick runs every callback due at now and returns how many ran
func (s *Scene) Tick(now time.Time) int {
	return s.queue.RunDue(now)
}

// HandleKey feeds one letter of a codon. s, n, o and w are accepted in either case;
// the third letter executes the codon. It reports whether the key was consumed.
func (s *Scene) HandleKey(r rune) bool {
	switch r {
	case 's', 'n', 'o', 'w', 'S', 'N', 'O', 'W':
	default:
		return false
	}
	if s.state != StateRunning {
		return true
	}

	s.buffer = append(s.buffer, unicode.ToUpper(r))
	if len(s.buffer) < CodonLength {
		return true
	}
	codon := string(s.buffer)
	s.buffer = s.buffer[:0]
	_ = s.Execute(codon)
	return true
}

// Backspace drops the last buffered letter
func (s *Scene) Backspace() {
	if n := len(s.buffer); n > 0 {
		s.buffer = s.buffer[:n-1]
	}
}

// ClearBuffer drops every buffered letter
func (s *Scene) ClearBuffer() {
	s.buffer = s.buffer[:0]
}

// Execute runs one codon and sounds the matching cue
func (s *Scene) Execute(codon string) error {
	if s.state != StateRunning {
		return ErrNotRunning
	}

	commits := s.stats.Ints.Get("engine.commits")
	before := commits.Load()

	if err := s.grid.ExecuteCodon(codon); err != nil {
		s.setMessage(err.Error(), true)
		s.player.Play(audio.CueError)
		s.logger.Warn("codon failed", "codon", codon, "error", err)
		return err
	}

	s.last = codon
	if commits.Load() > before {
		s.setMessage("", false)
		s.player.Play(audio.CueCommit)
	} else {
		s.setMessage(fmt.Sprintf("%s does nothing", codon), false)
	}
	return nil
}

// HUD returns the text shown below the field
func (s *Scene) HUD() render.HUD {
	st := s.state.String()
	for _, comp := range s.stats.Components() {
		st += "  " + s.stats.Format(comp+".")
	}
	return render.HUD{
		Buffer:  string(s.buffer),
		Last:    s.last,
		Message: s.message,
		Error:   s.isError,
		Status:  st,
	}
}

func (s *Scene) setMessage(msg string, isError bool) {
	s.message = msg
	s.isError = isError
}

func (s *Scene) setHidden(hidden bool) {
	for _, c := range s.grid.Cells() {
		c.Sprite().SetHidden(hidden)
	}
}

func (s *Scene) after(d time.Duration, fn func()) engine.TaskID {
	return s.queue.Schedule(s.clock.Now().Add(d), fn)
}

func (s *Scene) spawnEnemy() any {
	e := actor.NewEnemy(s.layer, s.rng)
	e.OnDeath = func(*actor.Enemy) { s.player.Play(audio.CueDeath) }
	s.player.Play(audio.CueSpawn)
	return e
}

func (s *Scene) onFault(err error) {
	s.setMessage(err.Error(), true)
	s.player.Play(audio.CueError)
}
