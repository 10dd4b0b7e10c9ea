package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gridfield/config"
	"github.com/lixenwraith/gridfield/engine"
	"github.com/lixenwraith/gridfield/game"
	"github.com/lixenwraith/gridfield/visual"
)

func TestHandleKey(t *testing.T) {
	settings, err := config.Default()
	require.NoError(t, err)
	settings.SpawnerEnabled = false

	base := engine.NewMockTimeProvider(time.Unix(0, 0))
	clock := engine.NewPausableClock(base)
	scene, err := game.NewScene(settings, visual.NewLayer(), clock, nil, nil, nil)
	require.NoError(t, err)

	scene.Start()
	base.Advance(time.Second)
	scene.Tick(clock.Now())
	require.Equal(t, game.StateRunning, scene.State())

	key := func(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

	require.True(t, handleKey(scene, clock, key('s')))
	require.True(t, handleKey(scene, clock, key('n')))
	require.Equal(t, "SN", scene.HUD().Buffer)
	require.True(t, handleKey(scene, clock, tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone)))
	require.Equal(t, "S", scene.HUD().Buffer)
	require.True(t, handleKey(scene, clock, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	require.Empty(t, scene.HUD().Buffer)

	// Paused: codon letters are ignored until p resumes
	require.True(t, handleKey(scene, clock, key('p')))
	require.True(t, clock.IsPaused())
	require.True(t, handleKey(scene, clock, key('s')))
	require.Empty(t, scene.HUD().Buffer)
	require.True(t, handleKey(scene, clock, key('p')))
	require.False(t, clock.IsPaused())

	require.True(t, handleKey(scene, clock, key('q')))
	require.Equal(t, game.StateStopping, scene.State())

	require.False(t, handleKey(scene, clock, tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
}
