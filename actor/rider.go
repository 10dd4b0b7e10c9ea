package actor

import (
	"math/rand/v2"

	"github.com/lixenwraith/gridfield/engine"
	"github.com/lixenwraith/gridfield/visual"
)

// Rider follows its cell and spins a full turn on every move, alternating direction
type Rider struct {
	body
	parity float64
}

// NewRider creates a rider that draws on layer
func NewRider(layer *visual.Layer, rng *rand.Rand) *Rider {
	return &Rider{
		body:   body{layer: layer, rng: rng, glyph: '◆'},
		parity: 1,
	}
}

func (r *Rider) Init(c *engine.Cell) error {
	r.attach(c, 0)
	return nil
}

func (r *Rider) Listen(d visual.Diff) error {
	r.follow(d)
	r.sprite.AddRot(360 * r.parity)
	r.parity = -r.parity
	r.sprite.Commit()
	return nil
}

func (r *Rider) Remove() error {
	r.sprite.Remove()
	return nil
}
