// Package render draws the sprite layer onto a terminal.
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/gridfield/visual"
)

// HudRows is the number of terminal rows reserved below the field
const HudRows = 3

// HUD is the text shown under the field
type HUD struct {
	Buffer  string // codon letters typed so far
	Last    string // last executed codon
	Message string // transient error or notice
	Status  string // metric line
	Error   bool   // Message is an error
}

// TerminalRenderer projects layout units onto terminal cells.
// One column spans Unit layout units and one row spans 2*Unit, matching the usual glyph aspect.
type TerminalRenderer struct {
	screen tcell.Screen
	layer  *visual.Layer
	width  int
	height int
	unit   float64
}

// NewTerminalRenderer creates a renderer for layer sized to fit an extentW x extentH field
func NewTerminalRenderer(screen tcell.Screen, layer *visual.Layer, extentW, extentH float64) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, layer: layer}
	w, h := screen.Size()
	r.UpdateDimensions(w, h, extentW, extentH)
	return r
}

// UpdateDimensions recomputes the projection after a resize
func (r *TerminalRenderer) UpdateDimensions(width, height int, extentW, extentH float64) {
	r.width = width
	r.height = height
	fieldRows := max(height-HudRows, 1)
	r.unit = max(extentW/float64(max(width, 1)), extentH/float64(2*fieldRows), 1)
}

// Unit returns the layout units covered by one terminal column
func (r *TerminalRenderer) Unit() float64 { return r.unit }

// RenderFrame draws every visible sprite, then the HUD, and shows the result
func (r *TerminalRenderer) RenderFrame(hud HUD) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	for _, s := range r.layer.Sprites() {
		if s.Hidden() {
			continue
		}
		r.drawSprite(s, defaultStyle)
	}

	r.drawHud(hud, defaultStyle)
	r.screen.Show()
}

// drawSprite fills the sprite's committed square and marks its centre
func (r *TerminalRenderer) drawSprite(s *visual.Sprite, defaultStyle tcell.Style) {
	m := s.Committed()
	size := s.Size()
	if size <= 0 {
		return
	}

	// Scale is about the centre
	base := size * 100 / max(m.Scale, 1)
	cx := m.X + base/2
	cy := m.Y + base/2
	x0 := int(math.Floor((cx - size/2) / r.unit))
	x1 := int(math.Ceil((cx + size/2) / r.unit))
	y0 := int(math.Floor((cy - size/2) / (2 * r.unit)))
	y1 := int(math.Ceil((cy + size/2) / (2 * r.unit)))

	fieldRows := r.height - HudRows
	style := defaultStyle.Background(HSLColor(m.Hue, m.Sat, m.Lum))
	for y := max(y0, 0); y < min(y1, fieldRows); y++ {
		for x := max(x0, 0); x < min(x1, r.width); x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	glyph := s.Glyph()
	if glyph == 0 {
		glyph = rotationGlyph(m.Rot)
	}
	gx := int(cx / r.unit)
	gy := int(cy / (2 * r.unit))
	if gx >= 0 && gx < r.width && gy >= 0 && gy < fieldRows {
		r.screen.SetContent(gx, gy, glyph, nil, style.Foreground(RgbGlyph))
	}
}

func (r *TerminalRenderer) drawHud(hud HUD, defaultStyle tcell.Style) {
	top := r.height - HudRows
	if top < 0 {
		return
	}

	labelStyle := defaultStyle.Foreground(RgbHudLabel)
	x := r.drawText(0, top, "codon ", labelStyle)
	x = r.drawText(x, top, padRight(hud.Buffer, 3, '·'), defaultStyle.Foreground(RgbHudBuffer).Bold(true))
	if hud.Last != "" {
		x = r.drawText(x, top, "  last ", labelStyle)
		r.drawText(x, top, hud.Last, defaultStyle.Foreground(RgbHudText))
	}

	if hud.Message != "" {
		msgStyle := defaultStyle.Foreground(RgbHudText)
		if hud.Error {
			msgStyle = defaultStyle.Foreground(RgbHudError)
		}
		r.drawText(0, top+1, hud.Message, msgStyle)
	}

	r.drawText(0, top+2, hud.Status, labelStyle)
}

// drawText writes s at (x, y), truncated to the screen width, and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	if y < 0 || y >= r.height || x >= r.width {
		return x
	}
	s = runewidth.Truncate(s, r.width-x, "…")
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}

func padRight(s string, width int, pad rune) string {
	for runewidth.StringWidth(s) < width {
		s += string(pad)
	}
	return s
}
