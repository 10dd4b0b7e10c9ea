package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/gridfield/visual"
)

// Initializer is implemented by occupants that set themselves up on attach
type Initializer interface {
	Init(c *Cell) error
}

// Listener is implemented by occupants that follow their cell's committed deltas
type Listener interface {
	Listen(d visual.Diff) error
}

// Remover is implemented by occupants that clean up on teardown
type Remover interface {
	Remove() error
}

// occupant caches the capabilities of an attached value, resolved once at attach time
type occupant struct {
	value  any
	init   Initializer
	listen Listener
	remove Remover
}

func bindOccupant(v any) *occupant {
	o := &occupant{value: v}
	o.init, _ = v.(Initializer)
	o.listen, _ = v.(Listener)
	o.remove, _ = v.(Remover)
	return o
}

var errNilOccupant = errors.New("nil occupant")

// guard runs occupant code, converting returned errors and panics into
// OccupantNotificationError so one faulty occupant cannot stall its siblings
func (g *Grid) guard(c *Cell, call string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = g.fault(c, call, fmt.Errorf("panic: %v", r))
		}
	}()
	if e := fn(); e != nil {
		return g.fault(c, call, e)
	}
	return nil
}

func (g *Grid) fault(c *Cell, call string, cause error) error {
	err := &OccupantNotificationError{Row: c.row, Col: c.col, Call: call, Err: cause}
	g.statFaults.Add(1)
	g.logger.Warn("occupant notification failed", "row", c.row, "col", c.col, "call", call, "error", cause)
	if g.onFault != nil {
		g.onFault(err)
	}
	return err
}

// SetRider attaches v to the cell and calls its Init if it has one.
// A failing Init leaves the cell vacant.
func (c *Cell) SetRider(v any) error {
	if c.grid.removed {
		return ErrRemoved
	}
	if v == nil {
		return errNilOccupant
	}
	if c.occupant != nil {
		return ErrOccupied
	}

	o := bindOccupant(v)
	c.occupant = o
	if o.init != nil {
		if err := c.grid.guard(c, "init", func() error { return o.init.Init(c) }); err != nil {
			c.occupant = nil
			return err
		}
	}
	return nil
}

// UnsetRider detaches the occupant without calling Remove and returns it
func (c *Cell) UnsetRider() any {
	if c.occupant == nil {
		return nil
	}
	v := c.occupant.value
	c.occupant = nil
	return v
}

// RemoveRider detaches the occupant after calling its Remove if it has one.
// The occupant is detached even when Remove fails.
func (c *Cell) RemoveRider() error {
	o := c.occupant
	if o == nil {
		return nil
	}
	c.occupant = nil
	if o.remove != nil {
		return c.grid.guard(c, "remove", o.remove.Remove)
	}
	return nil
}

// Rider returns the attached occupant or nil
func (c *Cell) Rider() any {
	if c.occupant == nil {
		return nil
	}
	return c.occupant.value
}

// HasRider reports whether an occupant is attached
func (c *Cell) HasRider() bool {
	return c.occupant != nil
}
