package actor

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gridfield/engine"
)

// SpawnerConfig controls population of the field
type SpawnerConfig struct {
	Interval time.Duration // how often the field is checked
	Batch    int           // cells filled per wave
	Waves    int           // waves per refill
	WaveGap  time.Duration // delay between waves
}

// DefaultSpawnerConfig checks every 500ms and refills with three waves of three
func DefaultSpawnerConfig() SpawnerConfig {
	return SpawnerConfig{
		Interval: 500 * time.Millisecond,
		Batch:    3,
		Waves:    3,
		WaveGap:  400 * time.Millisecond,
	}
}

// Spawner refills the grid with occupants whenever none matching Match remain.
// It runs entirely from the grid's commit queue.
type Spawner struct {
	grid  *engine.Grid
	cfg   SpawnerConfig
	spawn func() any
	match func(any) bool

	active bool
	timer  engine.TaskID
	waves  map[engine.TaskID]struct{}

	statSpawned *atomic.Int64
	statRefills *atomic.Int64
}

// NewSpawner creates an idle spawner. spawn builds one occupant; match selects the
// occupants that count as present, nil meaning any.
func NewSpawner(g *engine.Grid, cfg SpawnerConfig, spawn func() any, match func(any) bool) *Spawner {
	def := DefaultSpawnerConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.Batch <= 0 {
		cfg.Batch = def.Batch
	}
	if cfg.Waves <= 0 {
		cfg.Waves = def.Waves
	}
	return &Spawner{
		grid:        g,
		cfg:         cfg,
		spawn:       spawn,
		match:       match,
		waves:       make(map[engine.TaskID]struct{}),
		statSpawned: g.Stats().Ints.Get("actor.spawned"),
		statRefills: g.Stats().Ints.Get("actor.refills"),
	}
}

// IsEnemy matches *Enemy occupants that are still alive
func IsEnemy(v any) bool {
	e, ok := v.(*Enemy)
	return ok && !e.Dead()
}

// Active reports whether the spawner is running
func (s *Spawner) Active() bool { return s.active }

// Appear starts periodic checks
func (s *Spawner) Appear() {
	if s.active {
		return
	}
	s.active = true
	s.arm()
}

// Disappear stops checks and drops waves that have not landed yet
func (s *Spawner) Disappear() {
	if !s.active {
		return
	}
	s.active = false
	q := s.grid.Queue()
	q.Cancel(s.timer)
	for id := range s.waves {
		q.Cancel(id)
	}
	clear(s.waves)
}

func (s *Spawner) arm() {
	at := s.grid.Clock().Now().Add(s.cfg.Interval)
	s.timer = s.grid.Queue().Schedule(at, s.tick)
}

func (s *Spawner) tick() {
	if !s.active || s.grid.Removed() {
		s.active = false
		return
	}
	if !s.grid.RiderExists(s.match) {
		s.refill()
	}
	s.arm()
}

func (s *Spawner) refill() {
	s.statRefills.Add(1)
	s.wave()

	now := s.grid.Clock().Now()
	for w := 1; w < s.cfg.Waves; w++ {
		var id engine.TaskID
		id = s.grid.Queue().Schedule(now.Add(s.cfg.WaveGap*time.Duration(w)), func() {
			delete(s.waves, id)
			s.wave()
		})
		s.waves[id] = struct{}{}
	}
}

// wave places one occupant on each of up to Batch vacant cells
func (s *Spawner) wave() {
	if s.grid.Removed() {
		return
	}
	for _, c := range s.grid.SampleVacant(s.cfg.Batch) {
		if err := c.SetRider(s.spawn()); err != nil {
			s.grid.Logger().Warn("spawn failed", "row", c.Row(), "col", c.Col(), "error", err)
			continue
		}
		s.statSpawned.Add(1)
	}
}
