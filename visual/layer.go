package visual

import "sort"

// Layer is the surface sprites attach to. Renderers read it once per frame.
type Layer struct {
	sprites map[uint64]*Sprite
	nextID  uint64
}

// NewLayer creates an empty layer
func NewLayer() *Layer {
	return &Layer{sprites: make(map[uint64]*Sprite)}
}

func (l *Layer) add(s *Sprite) {
	l.nextID++
	s.id = l.nextID
	s.layer = l
	l.sprites[s.id] = s
}

func (l *Layer) remove(s *Sprite) {
	delete(l.sprites, s.id)
	s.layer = nil
	s.id = 0
}

// Len returns the number of attached sprites
func (l *Layer) Len() int {
	return len(l.sprites)
}

// Sprites returns attached sprites in draw order: ascending z, then attach order
func (l *Layer) Sprites() []*Sprite {
	out := make([]*Sprite, 0, len(l.sprites))
	for _, s := range l.sprites {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].z != out[j].z {
			return out[i].z < out[j].z
		}
		return out[i].id < out[j].id
	})
	return out
}
