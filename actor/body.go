// Package actor provides occupants that ride grid cells and the spawner that places them.
package actor

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/gridfield/engine"
	"github.com/lixenwraith/gridfield/visual"
)

const (
	Border     = 10.0  // inset of an occupant inside its cell
	DropHeight = 400.0 // entry starts this far above the cell
	EntryTime  = 300 * time.Millisecond
	StepTime   = 200 * time.Millisecond
	OccupantZ  = 5
)

// body is the sprite an occupant draws, kept in step with its cell
type body struct {
	layer  *visual.Layer
	rng    *rand.Rand
	sprite *visual.Sprite
	cell   *engine.Cell
	glyph  rune
}

// attach drops the sprite onto c from above and settles it after EntryTime
func (b *body) attach(c *engine.Cell, startRot float64) {
	b.cell = c
	g := c.Grid()
	m := c.Sprite().Committed()
	size := g.Layout().CellSize - Border*2

	b.sprite = visual.NewSprite(visual.Metrics{
		X:     m.X + Border,
		Y:     m.Y + Border - DropHeight,
		Rot:   startRot,
		Hue:   float64(b.rng.IntN(360)),
		Sat:   70,
		Lum:   50,
		Scale: 100,
	}).SetSize(size).SetZ(OccupantZ).SetGlyph(b.glyph)
	b.sprite.AppendTo(b.layer)

	b.sprite.AddY(DropHeight).AddRot(360)
	g.Queue().Schedule(g.Clock().Now().Add(EntryTime), func() {
		if b.sprite.Attached() {
			b.sprite.Commit()
		}
	})
}

// follow adds the cell's committed delta to the sprite
func (b *body) follow(d visual.Diff) {
	b.sprite.AddDiff(d)
}

// Sprite returns the occupant's sprite, nil before Init
func (b *body) Sprite() *visual.Sprite { return b.sprite }

// Cell returns the cell the occupant was attached to
func (b *body) Cell() *engine.Cell { return b.cell }

// idice returns a uniform integer in [-n, n]
func idice(rng *rand.Rand, n int) float64 {
	return float64(rng.IntN(2*n+1) - n)
}
