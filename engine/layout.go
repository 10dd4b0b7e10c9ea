package engine

// Layout holds the field geometry in presentation units
type Layout struct {
	Size     int     // cells per side
	CellSize float64 // side of one cell
	Margin   float64 // gap between cells
	Left     float64 // field origin x
	Top      float64 // field origin y
}

// Level is the distance between the origins of adjacent cells
func (l Layout) Level() float64 {
	return l.CellSize + l.Margin
}

// FieldSize is the side of the whole field
func (l Layout) FieldSize() float64 {
	return l.Level() * float64(l.Size)
}

// Center returns the field centre
func (l Layout) Center() (x, y float64) {
	half := l.FieldSize() / 2
	return l.Left + half, l.Top + half
}

// CellOrigin returns the canonical top-left corner of address (row, col)
func (l Layout) CellOrigin(row, col int) (x, y float64) {
	return l.Level()*float64(col) + l.Left, l.Level()*float64(row) + l.Top
}
