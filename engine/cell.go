package engine

import (
	"time"

	"github.com/lixenwraith/gridfield/period"
	"github.com/lixenwraith/gridfield/visual"
)

const (
	RotateStep = 90.0 // degrees per rR/rL
	HueStep    = 60.0 // degrees per hR/hL
)

// Periodic channel tables; every cell gets its own cursor over these values
var (
	scaleCycle = []float64{100, 112, 100, 88}
	satCycle   = []float64{30, 60, 90, 60, 30, 0}
	lumCycle   = []float64{50, 70, 90, 70, 50, 30, 10, 30}
)

// Cell is one node of the toroidal field.
// It is quiescent until a mutator runs, then excited until the grid commits it.
type Cell struct {
	grid *Grid

	row, col         int // committed address
	rowToGo, colToGo int // address to take at the next commit

	commitDelay time.Duration
	excited     bool

	sprite *visual.Sprite
	scale  *period.Table
	sat    *period.Table
	lum    *period.Table

	occupant *occupant
}

func newCell(g *Grid, row, col int, base visual.Metrics) *Cell {
	c := &Cell{
		grid:    g,
		row:     row,
		col:     col,
		rowToGo: row,
		colToGo: col,
		sprite:  visual.NewSprite(base),
		scale:   period.New(scaleCycle...),
		sat:     period.New(satCycle...),
		lum:     period.New(lumCycle...),
	}
	c.sprite.SetSize(g.layout.CellSize)
	c.placeAt(row, col)
	c.sprite.Commit()
	return c
}

func (c *Cell) Row() int                   { return c.row }
func (c *Cell) Col() int                   { return c.col }
func (c *Cell) Grid() *Grid                { return c.grid }
func (c *Cell) Sprite() *visual.Sprite     { return c.sprite }
func (c *Cell) Excited() bool              { return c.excited }
func (c *Cell) CommitDelay() time.Duration { return c.commitDelay }

// PendingPosition returns the address the cell takes at the next commit
func (c *Cell) PendingPosition() (row, col int) {
	return c.rowToGo, c.colToGo
}

// Execute applies one token and returns the cell the walk continues from.
// Navigation returns a neighbour and never excites; mutators return c.
func (c *Cell) Execute(t Token) *Cell {
	g := c.grid
	switch t.Kind {
	case KindGo:
		return c.Neighbor(t.Dir)
	case KindGoNext:
		return c.Next()
	case KindCommitAll:
		g.Commit()
		return c
	case KindDelay:
		c.commitDelay = time.Duration(t.Level) * g.delayUnit
	case KindTranslate:
		dr, dc := t.Dir.Delta()
		c.rowToGo, c.colToGo = g.wrap(c.rowToGo+dr), g.wrap(c.colToGo+dc)
	case KindRotate:
		c.sprite.AddRot(float64(t.Step) * RotateStep)
	case KindHue:
		c.sprite.AddHue(float64(t.Step) * HueStep)
	case KindScale:
		c.sprite.SetScale(stepTable(c.scale, t.Step))
	case KindSat:
		c.sprite.SetSat(stepTable(c.sat, t.Step))
	case KindLum:
		c.sprite.SetLum(stepTable(c.lum, t.Step))
	default:
		return c
	}
	c.excite()
	return c
}

// ExecuteIterate runs tokens starting at c and returns where the walk ends
func (c *Cell) ExecuteIterate(tokens []Token) *Cell {
	cur := c
	for _, t := range tokens {
		cur = cur.Execute(t)
	}
	return cur
}

func stepTable(t *period.Table, step int) float64 {
	if step < 0 {
		return t.Down()
	}
	return t.Up()
}

// Neighbor returns the cell currently at the toroidal neighbour address in direction d
func (c *Cell) Neighbor(d Direction) *Cell {
	dr, dc := d.Delta()
	row, col := c.grid.Next(c.row, c.col, dr, dc)
	return c.grid.index[row][col]
}

// Next advances in raster order: east, or south-east from the last column
func (c *Cell) Next() *Cell {
	if c.OnLastCol() {
		return c.Neighbor(SouthEast)
	}
	return c.Neighbor(East)
}

// OnLastCol reports whether the cell sits in the last column
func (c *Cell) OnLastCol() bool {
	return c.col == c.grid.size-1
}

func (c *Cell) excite() {
	if c.excited {
		return
	}
	c.excited = true
	c.grid.excited = append(c.grid.excited, c)
}

// moveTo takes address (row, col) in the index and stages the matching layout position
func (c *Cell) moveTo(row, col int) {
	c.row, c.col = row, col
	c.rowToGo, c.colToGo = row, col
	c.grid.index[row][col] = c
	c.placeAt(row, col)
}

// scheduleApply is phase 2: defer the visible push by jitter plus the cell's delay
func (c *Cell) scheduleApply(now time.Time) {
	g := c.grid
	delay := g.jitterDelay() + c.commitDelay

	var id TaskID
	id = g.queue.Schedule(now.Add(delay), func() {
		delete(g.pending, id)
		c.apply()
	})
	g.pending[id] = struct{}{}
	g.statScheduled.Add(1)
}

// apply notifies the occupant of the staged delta, then flushes the sprite
func (c *Cell) apply() {
	diff := c.sprite.Diff()
	if o := c.occupant; o != nil && o.listen != nil {
		_ = c.grid.guard(c, "listen", func() error { return o.listen.Listen(diff) })
	}
	c.sprite.Commit()
	c.grid.statApplied.Add(1)
}

func (c *Cell) placeAt(row, col int) {
	x, y := c.grid.layout.CellOrigin(row, col)
	c.sprite.SetX(x).SetY(y)
}

// Reset stages rotation zero at the canonical address and excites the cell
func (c *Cell) Reset() {
	c.sprite.SetRot(0)
	c.placeAt(c.row, c.col)
	c.excite()
}

func (c *Cell) randomize() {
	g := c.grid
	l := g.layout
	field := l.FieldSize()
	cx, cy := l.Center()

	x := g.dice(field) - field/2 + cx - l.CellSize/2
	y := g.dice(field) - field/2 + cy - l.CellSize/2
	const amp = 270.0
	c.sprite.SetX(x).SetY(y).SetRot(g.dice(amp*2) - amp)
}
