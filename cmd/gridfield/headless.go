package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/lixenwraith/gridfield/config"
	"github.com/lixenwraith/gridfield/engine"
	"github.com/lixenwraith/gridfield/game"
	"github.com/lixenwraith/gridfield/visual"
)

// parseCodons splits a comma separated codon list, ignoring blanks
func parseCodons(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// runHeadless plays codons on a virtual clock and prints the settled field to out.
// Enemies are left out so the run always settles.
func runHeadless(settings *config.Settings, rng *rand.Rand, logger *slog.Logger, codons []string, out io.Writer) error {
	settings.SpawnerEnabled = false

	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	scene, err := game.NewScene(settings, visual.NewLayer(), clock, rng, logger, nil)
	if err != nil {
		return err
	}

	scene.Start()
	settle(scene, clock)

	for _, codon := range codons {
		if err := scene.Execute(codon); err != nil {
			return fmt.Errorf("codon %s: %w", codon, err)
		}
		settle(scene, clock)
	}

	printField(out, scene.Grid())
	fmt.Fprintf(out, "elapsed=%s %s\n", clock.Elapsed(), scene.Stats().Format("engine."))
	return nil
}

// settle jumps the clock from one due callback to the next until nothing is pending
func settle(scene *game.Scene, clock *engine.MockTimeProvider) {
	q := scene.Grid().Queue()
	for {
		at, ok := q.NextDue()
		if !ok {
			return
		}
		if at.After(clock.Now()) {
			clock.SetTime(at)
		}
		scene.Tick(clock.Now())
	}
}

// printField writes one line per address with the committed sprite state
func printField(out io.Writer, g *engine.Grid) {
	for _, c := range g.Cells() {
		m := c.Sprite().Committed()
		fmt.Fprintf(out, "%d,%d x=%.0f y=%.0f rot=%.0f hue=%.0f sat=%.0f lum=%.0f scale=%.0f\n",
			c.Row(), c.Col(), m.X, m.Y, m.Rot, m.Hue, m.Sat, m.Lum, m.Scale)
	}
}
