// Package visual holds presentation objects: sprites that stage metric changes
// and flush them on Commit, and the layer that owns attached sprites for rendering.
package visual

// Metrics is the full visual state of a sprite
type Metrics struct {
	X     float64
	Y     float64
	Rot   float64 // degrees, unbounded
	Hue   float64 // degrees, wrapped by the renderer
	Sat   float64 // percent
	Lum   float64 // percent
	Scale float64 // percent
}

// Diff is a per-channel delta between two metric snapshots
type Diff Metrics

// Sub returns m - o channel by channel
func (m Metrics) Sub(o Metrics) Diff {
	return Diff{
		X:     m.X - o.X,
		Y:     m.Y - o.Y,
		Rot:   m.Rot - o.Rot,
		Hue:   m.Hue - o.Hue,
		Sat:   m.Sat - o.Sat,
		Lum:   m.Lum - o.Lum,
		Scale: m.Scale - o.Scale,
	}
}

// Apply returns m shifted by d
func (m Metrics) Apply(d Diff) Metrics {
	return Metrics{
		X:     m.X + d.X,
		Y:     m.Y + d.Y,
		Rot:   m.Rot + d.Rot,
		Hue:   m.Hue + d.Hue,
		Sat:   m.Sat + d.Sat,
		Lum:   m.Lum + d.Lum,
		Scale: m.Scale + d.Scale,
	}
}

// IsZero reports whether no channel changed
func (d Diff) IsZero() bool {
	return d == Diff{}
}

// Sprite stages metric changes and exposes them to the surface only on Commit.
// Setters return the sprite so calls can be chained.
type Sprite struct {
	pending   Metrics
	committed Metrics
	hidden    bool
	glyph     rune
	z         int
	size      float64

	layer *Layer
	id    uint64
}

// NewSprite creates a detached sprite whose pending and committed state is base
func NewSprite(base Metrics) *Sprite {
	return &Sprite{pending: base, committed: base}
}

func (s *Sprite) SetX(v float64) *Sprite     { s.pending.X = v; return s }
func (s *Sprite) SetY(v float64) *Sprite     { s.pending.Y = v; return s }
func (s *Sprite) SetRot(v float64) *Sprite   { s.pending.Rot = v; return s }
func (s *Sprite) SetHue(v float64) *Sprite   { s.pending.Hue = v; return s }
func (s *Sprite) SetSat(v float64) *Sprite   { s.pending.Sat = v; return s }
func (s *Sprite) SetLum(v float64) *Sprite   { s.pending.Lum = v; return s }
func (s *Sprite) SetScale(v float64) *Sprite { s.pending.Scale = v; return s }

func (s *Sprite) AddX(d float64) *Sprite   { s.pending.X += d; return s }
func (s *Sprite) AddY(d float64) *Sprite   { s.pending.Y += d; return s }
func (s *Sprite) AddRot(d float64) *Sprite { s.pending.Rot += d; return s }
func (s *Sprite) AddHue(d float64) *Sprite { s.pending.Hue += d; return s }

// AddDiff shifts every pending channel by d
func (s *Sprite) AddDiff(d Diff) *Sprite {
	s.pending = s.pending.Apply(d)
	return s
}

// SetGlyph sets the rune the renderer draws at the sprite centre; zero means default
func (s *Sprite) SetGlyph(r rune) *Sprite { s.glyph = r; return s }

// SetSize sets the side of the sprite at scale 100, in layout units
func (s *Sprite) SetSize(v float64) *Sprite { s.size = v; return s }

// SetZ sets draw order; higher draws later
func (s *Sprite) SetZ(z int) *Sprite { s.z = z; return s }

// SetHidden toggles visibility. Takes effect immediately, not on Commit.
func (s *Sprite) SetHidden(h bool) *Sprite { s.hidden = h; return s }

// Pending returns the staged metrics
func (s *Sprite) Pending() Metrics { return s.pending }

// Committed returns the metrics last flushed to the surface
func (s *Sprite) Committed() Metrics { return s.committed }

// Diff returns the net delta staged since the last commit
func (s *Sprite) Diff() Diff { return s.pending.Sub(s.committed) }

// Commit flushes staged metrics and returns the delta that was applied
func (s *Sprite) Commit() Diff {
	d := s.Diff()
	s.committed = s.pending
	return d
}

func (s *Sprite) Hidden() bool { return s.hidden }
func (s *Sprite) Glyph() rune  { return s.glyph }
func (s *Sprite) Z() int       { return s.z }

// Size returns the drawn side of the sprite at its committed scale
func (s *Sprite) Size() float64 { return s.size * s.committed.Scale / 100 }

// Attached reports whether the sprite is on a layer
func (s *Sprite) Attached() bool { return s.layer != nil }

// AppendTo attaches the sprite to l, detaching it from any previous layer
func (s *Sprite) AppendTo(l *Layer) *Sprite {
	if s.layer == l {
		return s
	}
	s.Remove()
	l.add(s)
	return s
}

// Remove detaches the sprite from its layer; no-op when detached
func (s *Sprite) Remove() {
	if s.layer != nil {
		s.layer.remove(s)
	}
}
