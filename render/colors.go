package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Fixed palette for chrome around the field
var (
	RgbBackground = tcell.NewRGBColor(12, 12, 18)
	RgbHudText    = tcell.NewRGBColor(200, 200, 210)
	RgbHudLabel   = tcell.NewRGBColor(120, 120, 140)
	RgbHudBuffer  = tcell.NewRGBColor(255, 210, 90)
	RgbHudError   = tcell.NewRGBColor(255, 90, 90)
	RgbGlyph      = tcell.NewRGBColor(250, 250, 250)
)

// HSLColor converts sprite channels to a terminal colour.
// hue is in degrees and wraps; sat and lum are percentages and clamp to 0..100.
func HSLColor(hue, sat, lum float64) tcell.Color {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsl(h, clampPercent(sat), clampPercent(lum)).Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func clampPercent(v float64) float64 {
	return min(max(v, 0), 100) / 100
}

// rotationGlyph maps a rotation to one of four arrows, quarter turns clockwise from up
func rotationGlyph(rot float64) rune {
	q := int(math.Round(rot/90)) % 4
	if q < 0 {
		q += 4
	}
	return [4]rune{'▲', '▶', '▼', '◀'}[q]
}
