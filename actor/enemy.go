package actor

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/gridfield/engine"
	"github.com/lixenwraith/gridfield/visual"
)

// DeathRotation is the absolute rotation past which an enemy dies
const DeathRotation = 500.0

const deathFlashes = 4

// Enemy follows its cell like a rider but dies once spun past DeathRotation.
// A dead enemy frees its cell immediately and plays its death out on the queue.
type Enemy struct {
	body
	dead    bool
	OnDeath func(*Enemy)
}

// NewEnemy creates an enemy that draws on layer
func NewEnemy(layer *visual.Layer, rng *rand.Rand) *Enemy {
	return &Enemy{body: body{layer: layer, rng: rng, glyph: '✸'}}
}

// Dead reports whether the enemy has died
func (e *Enemy) Dead() bool { return e.dead }

func (e *Enemy) Init(c *engine.Cell) error {
	e.attach(c, -360)
	return nil
}

func (e *Enemy) Listen(d visual.Diff) error {
	e.follow(d)
	e.sprite.Commit()

	if math.Abs(e.sprite.Committed().Rot) > DeathRotation {
		e.cell.UnsetRider()
		e.die()
	}
	return nil
}

// Remove spins the sprite away and detaches it after one step
func (e *Enemy) Remove() error {
	e.sprite.AddRot(400).SetScale(0).Commit()
	e.schedule(1, e.sprite.Remove)
	return nil
}

func (e *Enemy) die() {
	if e.dead {
		return
	}
	e.dead = true
	e.cell.Grid().Stats().Ints.Get("actor.killed").Add(1)
	e.cell.Grid().Logger().Debug("enemy died", "row", e.cell.Row(), "col", e.cell.Col())

	for i := range deathFlashes * 2 {
		e.schedule(i+1, func() {
			e.sprite.AddX(idice(e.rng, 10)).AddY(idice(e.rng, 10))
			if i%2 == 0 {
				e.sprite.SetHue(0).SetSat(100).SetLum(50).SetScale(150)
			} else {
				e.sprite.SetSat(0).SetLum(0).SetScale(50)
			}
			e.sprite.Commit()
		})
	}
	e.schedule(deathFlashes*2+1, func() { e.sprite.SetHidden(true) })
	e.schedule(deathFlashes*2+2, e.sprite.Remove)

	if e.OnDeath != nil {
		e.OnDeath(e)
	}
}

// schedule runs fn after n death steps
func (e *Enemy) schedule(n int, fn func()) {
	g := e.cell.Grid()
	at := g.Clock().Now().Add(StepTime * time.Duration(n))
	g.Queue().Schedule(at, fn)
}
