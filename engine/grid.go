// Package engine runs compiled codon programs over a toroidal field of cells.
// Execution is a raster walk on one goroutine; visible changes are staged per cell
// and pushed out by a batched commit whose callbacks run from a CommitQueue.
package engine

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gridfield/compiler"
	"github.com/lixenwraith/gridfield/status"
	"github.com/lixenwraith/gridfield/visual"
)

// Options configures a Grid. Zero fields fall back to DefaultOptions values
// except Program, which may stay empty.
type Options struct {
	Size     int
	CellSize float64
	Margin   float64
	Left     float64
	Top      float64

	CommitJitter time.Duration // upper bound of the random per-cell commit offset
	DelayUnit    time.Duration // duration of one dN level

	Hue float64 // initial hue of every cell
	Sat float64
	Lum float64

	Program compiler.Program
	Queue   *CommitQueue
	Clock   Clock
	Rand    *rand.Rand
	Status  *status.Registry
	Logger  *slog.Logger
	OnFault func(error)
}

// DefaultOptions returns the stock 4x4 field
func DefaultOptions() Options {
	return Options{
		Size:         4,
		CellSize:     50,
		Margin:       10,
		Left:         30,
		Top:          10,
		CommitJitter: 40 * time.Millisecond,
		DelayUnit:    300 * time.Millisecond,
		Hue:          23,
		Sat:          30,
		Lum:          50,
	}
}

// Grid owns the cells, the position index and the excited set
type Grid struct {
	size   int
	layout Layout

	cells   []*Cell   // birth order, each cell exactly once
	index   [][]*Cell // committed address -> cell
	excited []*Cell   // insertion ordered, deduped by Cell.excited

	program map[string][]Token

	queue     *CommitQueue
	clock     Clock
	rng       *rand.Rand
	jitter    time.Duration
	delayUnit time.Duration
	pending   map[TaskID]struct{}
	removed   bool

	logger  *slog.Logger
	onFault func(error)
	stats   *status.Registry

	statTokens    *atomic.Int64
	statCodons    *atomic.Int64
	statCommits   *atomic.Int64
	statScheduled *atomic.Int64
	statApplied   *atomic.Int64
	statFaults    *atomic.Int64
	statCancelled *atomic.Int64
	statDisplaced *atomic.Int64
	statRemoved   *atomic.Bool
}

// NewGrid creates a born grid: every cell sits at its canonical address with committed sprites
func NewGrid(opts Options) (*Grid, error) {
	def := DefaultOptions()
	if opts.Size < 0 {
		return nil, fmt.Errorf("grid size %d: must be positive", opts.Size)
	}
	if opts.Size == 0 {
		opts.Size = def.Size
	}
	if opts.CellSize <= 0 {
		opts.CellSize = def.CellSize
	}
	if opts.CommitJitter < 0 || opts.DelayUnit < 0 {
		return nil, fmt.Errorf("negative commit timing: jitter %v, delay unit %v", opts.CommitJitter, opts.DelayUnit)
	}
	if opts.DelayUnit == 0 {
		opts.DelayUnit = def.DelayUnit
	}
	if opts.Queue == nil {
		opts.Queue = NewCommitQueue()
	}
	if opts.Clock == nil {
		opts.Clock = NewTimeProvider()
	}
	if opts.Rand == nil {
		seed := uint64(opts.Clock.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	g := &Grid{
		size: opts.Size,
		layout: Layout{
			Size:     opts.Size,
			CellSize: opts.CellSize,
			Margin:   opts.Margin,
			Left:     opts.Left,
			Top:      opts.Top,
		},
		queue:     opts.Queue,
		clock:     opts.Clock,
		rng:       opts.Rand,
		jitter:    opts.CommitJitter,
		delayUnit: opts.DelayUnit,
		pending:   make(map[TaskID]struct{}),
		logger:    opts.Logger,
		onFault:   opts.OnFault,
		stats:     opts.Status,

		statTokens:    opts.Status.Ints.Get("engine.tokens"),
		statCodons:    opts.Status.Ints.Get("engine.codons"),
		statCommits:   opts.Status.Ints.Get("engine.commits"),
		statScheduled: opts.Status.Ints.Get("engine.scheduled"),
		statApplied:   opts.Status.Ints.Get("engine.applied"),
		statFaults:    opts.Status.Ints.Get("engine.faults"),
		statCancelled: opts.Status.Ints.Get("engine.cancelled"),
		statDisplaced: opts.Status.Ints.Get("engine.displaced"),
		statRemoved:   opts.Status.Bools.Get("engine.removed"),
	}
	g.statRemoved.Store(false)

	if err := g.SetProgram(opts.Program); err != nil {
		return nil, err
	}

	base := visual.Metrics{Hue: opts.Hue, Sat: opts.Sat, Lum: opts.Lum, Scale: scaleCycle[0]}
	g.index = make([][]*Cell, g.size)
	g.cells = make([]*Cell, 0, g.size*g.size)
	for row := range g.size {
		g.index[row] = make([]*Cell, g.size)
		for col := range g.size {
			c := newCell(g, row, col, base)
			g.index[row][col] = c
			g.cells = append(g.cells, c)
		}
	}

	g.logger.Debug("grid born", "size", g.size, "codons", len(g.program))
	return g, nil
}

// SetProgram parses and binds a compiled program; on error the previous program stays bound
func (g *Grid) SetProgram(p compiler.Program) error {
	parsed := make(map[string][]Token, len(p))
	for codon, tokens := range p {
		toks, err := ParseTokens(tokens)
		if err != nil {
			return fmt.Errorf("codon %s: %w", codon, err)
		}
		parsed[codon] = toks
	}
	g.program = parsed
	return nil
}

func (g *Grid) Size() int                { return g.size }
func (g *Grid) Layout() Layout           { return g.layout }
func (g *Grid) Queue() *CommitQueue      { return g.queue }
func (g *Grid) Clock() Clock             { return g.clock }
func (g *Grid) Stats() *status.Registry  { return g.stats }
func (g *Grid) Logger() *slog.Logger     { return g.logger }
func (g *Grid) Removed() bool            { return g.removed }
func (g *Grid) PendingApplications() int { return len(g.pending) }

// HasCodon reports whether codon has a bound program
func (g *Grid) HasCodon(codon string) bool {
	_, ok := g.program[codon]
	return ok
}

// Origin returns the cell at address (0,0), where every walk starts
func (g *Grid) Origin() *Cell {
	return g.index[0][0]
}

// At returns the cell indexed at (row, col), wrapping toroidally
func (g *Grid) At(row, col int) *Cell {
	return g.index[g.wrap(row)][g.wrap(col)]
}

// Cells returns every cell in raster order of its committed address
func (g *Grid) Cells() []*Cell {
	out := slices.Clone(g.cells)
	slices.SortStableFunc(out, func(a, b *Cell) int {
		if a.row != b.row {
			return a.row - b.row
		}
		return a.col - b.col
	})
	return out
}

// Excited returns the cells awaiting commit in excitation order
func (g *Grid) Excited() []*Cell {
	return slices.Clone(g.excited)
}

// Next returns the address one step of (rowDelta, colDelta) from (row, col) on the torus
func (g *Grid) Next(row, col, rowDelta, colDelta int) (int, int) {
	return g.wrap(row + rowDelta), g.wrap(col + colDelta)
}

func (g *Grid) wrap(v int) int {
	return ((v % g.size) + g.size) % g.size
}

// ExecuteGridCommands parses tokens and walks them from the origin.
// Nothing runs when any token fails to parse.
func (g *Grid) ExecuteGridCommands(tokens []string) error {
	toks, err := ParseTokens(tokens)
	if err != nil {
		return err
	}
	return g.ExecuteTokens(toks)
}

// ExecuteTokens walks already parsed tokens from the origin
func (g *Grid) ExecuteTokens(tokens []Token) error {
	if g.removed {
		return ErrRemoved
	}
	g.Origin().ExecuteIterate(tokens)
	g.statTokens.Add(int64(len(tokens)))
	return nil
}

// ExecuteCodon runs the bound program of codon.
// An unknown codon returns *UnknownCodonError and leaves the grid untouched.
func (g *Grid) ExecuteCodon(codon string) error {
	if g.removed {
		return ErrRemoved
	}
	toks, ok := g.program[codon]
	if !ok {
		return &UnknownCodonError{Codon: codon}
	}
	g.statCodons.Add(1)
	g.logger.Debug("codon", "codon", codon, "tokens", len(toks))
	return g.ExecuteTokens(toks)
}

// Commit pushes every excited cell through both phases and returns how many were committed.
// Phase 1 re-indexes all cells before phase 2 schedules any visible application.
func (g *Grid) Commit() int {
	if g.removed || len(g.excited) == 0 {
		return 0
	}
	batch := g.excited
	g.excited = nil
	for _, c := range batch {
		c.excited = false
	}

	bumped := g.reindex(batch)
	now := g.clock.Now()
	for _, c := range batch {
		c.scheduleApply(now)
		c.commitDelay = 0
	}
	for _, c := range bumped {
		c.scheduleApply(now)
	}

	g.statCommits.Add(1)
	return len(batch)
}

// reindex is phase 1: every batch cell takes its pending address while the index stays
// one-to-one. A mover beats the quiescent resident of its target; a mover whose target an
// earlier mover already claimed loses it. Losers and evicted residents fill the vacated
// slots in raster order. It returns the evicted residents, which moved without being excited.
func (g *Grid) reindex(batch []*Cell) (bumped []*Cell) {
	moving := make(map[*Cell]bool, len(batch))
	for _, c := range batch {
		moving[c] = true
		if g.index[c.row][c.col] == c {
			g.index[c.row][c.col] = nil
		}
	}

	var displaced []*Cell
	for _, c := range batch {
		row, col := c.rowToGo, c.colToGo
		switch o := g.index[row][col]; {
		case o == nil:
		case moving[o]:
			displaced = append(displaced, c)
			continue
		default:
			displaced = append(displaced, o)
			bumped = append(bumped, o)
		}
		c.moveTo(row, col)
	}
	if len(displaced) == 0 {
		return nil
	}

	next := 0
	for row := range g.size {
		for col := range g.size {
			if g.index[row][col] == nil && next < len(displaced) {
				displaced[next].moveTo(row, col)
				next++
			}
		}
	}
	g.statDisplaced.Add(int64(len(displaced)))
	g.logger.Debug("non-permutation commit", "displaced", len(displaced), "bumped", len(bumped))
	return bumped
}

// SolidCommit settles positions of excited cells and flushes every sprite at once,
// bypassing delays and occupant notification
func (g *Grid) SolidCommit() {
	if g.removed {
		return
	}
	batch := g.excited
	g.excited = nil
	for _, c := range batch {
		c.excited = false
	}
	g.reindex(batch)
	for _, c := range g.cells {
		c.commitDelay = 0
		c.sprite.Commit()
	}
}

// Reset stages every cell back to its canonical layout and excites it
func (g *Grid) Reset() {
	for _, c := range g.cells {
		c.Reset()
	}
}

// Randomize stages a random position and rotation on every sprite.
// Logical addresses are untouched and no cell is excited.
func (g *Grid) Randomize() {
	for _, c := range g.cells {
		c.randomize()
	}
}

// AppendTo attaches every cell sprite to layer
func (g *Grid) AppendTo(layer *visual.Layer) {
	for _, c := range g.cells {
		c.sprite.AppendTo(layer)
	}
}

// Remove tears the grid down: pending applications are cancelled, occupants removed
// and sprites detached. Later calls are no-ops.
func (g *Grid) Remove() {
	if g.removed {
		return
	}
	g.removed = true

	cancelled := 0
	for id := range g.pending {
		if g.queue.Cancel(id) {
			cancelled++
		}
	}
	g.pending = make(map[TaskID]struct{})
	g.statCancelled.Add(int64(cancelled))

	for _, c := range g.cells {
		_ = c.RemoveRider()
		c.excited = false
		c.sprite.Remove()
	}
	g.excited = nil
	g.statRemoved.Store(true)
	g.logger.Debug("grid removed", "cancelled", cancelled)
}

// RiderExists reports whether any cell holds an occupant accepted by match; nil matches any
func (g *Grid) RiderExists(match func(any) bool) bool {
	for _, c := range g.cells {
		if c.occupant == nil {
			continue
		}
		if match == nil || match(c.occupant.value) {
			return true
		}
	}
	return false
}

// VacantCells returns cells without an occupant in raster order
func (g *Grid) VacantCells() []*Cell {
	var out []*Cell
	for _, c := range g.Cells() {
		if c.occupant == nil {
			out = append(out, c)
		}
	}
	return out
}

// SampleVacant returns up to n distinct vacant cells picked at random
func (g *Grid) SampleVacant(n int) []*Cell {
	vacant := g.VacantCells()
	g.rng.Shuffle(len(vacant), func(i, j int) {
		vacant[i], vacant[j] = vacant[j], vacant[i]
	})
	if n < len(vacant) {
		vacant = vacant[:n]
	}
	return vacant
}

// jitterDelay draws the random commit offset in [0, jitter)
func (g *Grid) jitterDelay() time.Duration {
	if g.jitter <= 0 {
		return 0
	}
	return time.Duration(g.rng.Int64N(int64(g.jitter)))
}

// dice returns a uniform value in [0, n)
func (g *Grid) dice(n float64) float64 {
	return g.rng.Float64() * n
}
