package game

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gridfield/audio"
	"github.com/lixenwraith/gridfield/config"
	"github.com/lixenwraith/gridfield/engine"
	"github.com/lixenwraith/gridfield/visual"
)

type recorder struct {
	cues []audio.Cue
}

func (r *recorder) Play(c audio.Cue) { r.cues = append(r.cues, c) }
func (r *recorder) Close()           {}

func (r *recorder) count(c audio.Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

type fixture struct {
	*Scene
	clock  *engine.MockTimeProvider
	layer  *visual.Layer
	player *recorder
}

func newFixture(t *testing.T, mutate ...func(*config.Settings)) *fixture {
	t.Helper()
	settings, err := config.Default()
	require.NoError(t, err)
	for _, m := range mutate {
		m(settings)
	}

	f := &fixture{
		clock:  engine.NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		layer:  visual.NewLayer(),
		player: &recorder{},
	}
	f.Scene, err = NewScene(settings, f.layer, f.clock, rand.New(rand.NewPCG(1, 2)), nil, f.player)
	require.NoError(t, err)
	return f
}

func noSpawner(s *config.Settings) { s.SpawnerEnabled = false }

// advance steps the clock in 10ms ticks, running due callbacks at each step
func (f *fixture) advance(d time.Duration) {
	const step = 10 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < d; elapsed += step {
		f.Tick(f.clock.Advance(step))
	}
}

func (f *fixture) run(t *testing.T) {
	t.Helper()
	f.Start()
	f.advance(ShowDelay + SettleDelay + 100*time.Millisecond)
	require.Equal(t, StateRunning, f.State())
}

func (f *fixture) allHidden(hidden bool) bool {
	for _, c := range f.Grid().Cells() {
		if c.Sprite().Hidden() != hidden {
			return false
		}
	}
	return true
}

func TestNewScene_CompileError(t *testing.T) {
	settings, err := config.Default()
	require.NoError(t, err)
	delete(settings.Axes, "hue")

	_, err = NewScene(settings, visual.NewLayer(), nil, nil, nil, nil)
	require.Error(t, err)

	_, err = NewScene(nil, visual.NewLayer(), nil, nil, nil, nil)
	require.Error(t, err)
}

func TestScene_Extent(t *testing.T) {
	f := newFixture(t, noSpawner)
	w, h := f.Extent()
	assert.Equal(t, 300.0, w)
	assert.Equal(t, 260.0, h)
}

func TestScene_StartSequence(t *testing.T) {
	f := newFixture(t, noSpawner)

	f.Start()
	assert.Equal(t, StateStarting, f.State())
	assert.Equal(t, 16, f.layer.Len())
	assert.True(t, f.allHidden(true))

	f.advance(ShowDelay)
	assert.True(t, f.allHidden(false))
	assert.Equal(t, StateStarting, f.State())

	f.advance(SettleDelay + 100*time.Millisecond)
	require.Equal(t, StateRunning, f.State())

	layout := f.Grid().Layout()
	for _, c := range f.Grid().Cells() {
		x, y := layout.CellOrigin(c.Row(), c.Col())
		m := c.Sprite().Committed()
		assert.Equal(t, x, m.X, "cell %d,%d", c.Row(), c.Col())
		assert.Equal(t, y, m.Y, "cell %d,%d", c.Row(), c.Col())
		assert.Zero(t, m.Rot)
	}

	// Start is one-shot
	f.Start()
	assert.Equal(t, StateRunning, f.State())
}

func TestScene_HandleKey(t *testing.T) {
	f := newFixture(t, noSpawner)

	assert.False(t, f.HandleKey('x'))
	assert.True(t, f.HandleKey('s'), "letters are consumed before the scene runs")
	assert.Empty(t, f.HUD().Buffer)

	f.run(t)

	assert.True(t, f.HandleKey('s'))
	assert.True(t, f.HandleKey('S'))
	assert.Equal(t, "SS", f.HUD().Buffer)
	assert.Empty(t, f.player.cues)

	assert.True(t, f.HandleKey('s'))
	hud := f.HUD()
	assert.Empty(t, hud.Buffer)
	assert.Equal(t, "SSS", hud.Last)
	assert.False(t, hud.Error)
	assert.Equal(t, 1, f.player.count(audio.CueCommit))
	assert.Empty(t, f.Grid().Excited(), "the trailing commit flushes the excited set")
}

func TestScene_BufferEditing(t *testing.T) {
	f := newFixture(t, noSpawner)
	f.run(t)

	f.HandleKey('n')
	f.HandleKey('o')
	f.Backspace()
	assert.Equal(t, "N", f.HUD().Buffer)
	f.ClearBuffer()
	assert.Empty(t, f.HUD().Buffer)
	f.Backspace()
	assert.Empty(t, f.HUD().Buffer)
}

func TestScene_EmptyCodonIsQuiet(t *testing.T) {
	f := newFixture(t, noSpawner)
	f.run(t)

	require.NoError(t, f.Execute("NOS"))
	hud := f.HUD()
	assert.Equal(t, "NOS", hud.Last)
	assert.Contains(t, hud.Message, "does nothing")
	assert.Empty(t, f.player.cues)
}

func TestScene_UnknownCodon(t *testing.T) {
	f := newFixture(t, noSpawner, func(s *config.Settings) { delete(s.Codons, "WWW") })
	f.run(t)
	before := f.Stats().Snapshot()

	err := f.Execute("WWW")
	var unknown *engine.UnknownCodonError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "WWW", unknown.Codon)

	hud := f.HUD()
	assert.True(t, hud.Error)
	assert.Empty(t, hud.Last)
	assert.Equal(t, 1, f.player.count(audio.CueError))
	assert.Equal(t, before["engine.commits"], f.Stats().Snapshot()["engine.commits"])
}

func TestScene_ExecuteRequiresRunning(t *testing.T) {
	f := newFixture(t, noSpawner)
	assert.ErrorIs(t, f.Execute("SSS"), ErrNotRunning)
}

func TestScene_StopSequence(t *testing.T) {
	f := newFixture(t, noSpawner)
	f.run(t)
	require.NoError(t, f.Execute("SSS"))

	f.Stop()
	assert.Equal(t, StateStopping, f.State())
	assert.ErrorIs(t, f.Execute("SSS"), ErrNotRunning)

	f.advance(HideDelay)
	assert.True(t, f.allHidden(true))
	assert.False(t, f.Done())

	f.advance(TeardownDelay)
	require.True(t, f.Done())
	assert.True(t, f.Grid().Removed())
	assert.Zero(t, f.layer.Len())
	assert.Zero(t, f.Grid().PendingApplications())

	// Nothing left to run once torn down
	f.advance(time.Second)
	assert.Zero(t, f.Tick(f.clock.Advance(time.Hour)))
}

func TestScene_StopWhileStarting(t *testing.T) {
	f := newFixture(t, noSpawner)

	f.Start()
	f.advance(ShowDelay / 2)
	f.Stop()
	require.Equal(t, StateStopping, f.State())

	// the field must stay hidden: the queued reveal was dropped
	for range (HideDelay + TeardownDelay) / (10 * time.Millisecond) {
		f.advance(10 * time.Millisecond)
		if f.Done() {
			break
		}
		require.True(t, f.allHidden(true), "field revealed during stop")
	}
	require.True(t, f.Done())
	assert.NotEqual(t, StateRunning, f.State())
}

func TestScene_SpawnsEnemies(t *testing.T) {
	f := newFixture(t)
	require.NotNil(t, f.Spawner())
	f.run(t)
	require.True(t, f.Spawner().Active())

	f.advance(600 * time.Millisecond)
	assert.Equal(t, int64(3), f.Stats().Snapshot()["actor.spawned"])
	assert.Equal(t, 3, f.player.count(audio.CueSpawn))
	assert.Contains(t, f.HUD().Status, "spawned=3")

	f.Stop()
	assert.False(t, f.Spawner().Active())
	f.advance(HideDelay + TeardownDelay + time.Second)
	assert.True(t, f.Done())
	assert.Equal(t, int64(3), f.Stats().Snapshot()["actor.spawned"])
}
