// Package config loads field settings and codon tables from HCL.
// The embedded asset.DefaultConfig is always read first; a user file is layered over it,
// replacing only the attributes, axis symbols and codons it names.
package config

import (
	"log/slog"
	"os"
	"time"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"

	"github.com/lixenwraith/gridfield/actor"
	"github.com/lixenwraith/gridfield/asset"
	"github.com/lixenwraith/gridfield/compiler"
	"github.com/lixenwraith/gridfield/engine"
)

// ErrInvalidSettings marks values that parse but cannot drive the field
var ErrInvalidSettings = errors.New("invalid settings")

const (
	MaxGridSize   = 32
	defaultSource = "default.hcl"
)

// Settings is the decoded configuration
type Settings struct {
	Grid           engine.Options
	Spawner        actor.SpawnerConfig
	SpawnerEnabled bool
	Axes           compiler.Axes
	Codons         compiler.CodonTable
}

// Program compiles the codon table against the axis tables
func (s *Settings) Program() (compiler.Program, error) {
	return compiler.New(s.Axes).Compile(s.Codons)
}

type hclFile struct {
	Grid    *hclGrid    `hcl:"grid,block"`
	Spawner *hclSpawner `hcl:"spawner,block"`
	Axes    []*hclAxis  `hcl:"axis,block"`
	Codons  []*hclCodon `hcl:"codon,block"`
}

type hclGrid struct {
	Size           *int     `hcl:"size,optional"`
	CellSize       *float64 `hcl:"cell_size,optional"`
	Margin         *float64 `hcl:"margin,optional"`
	Left           *float64 `hcl:"left,optional"`
	Top            *float64 `hcl:"top,optional"`
	CommitJitterMs *int     `hcl:"commit_jitter_ms,optional"`
	DelayUnitMs    *int     `hcl:"delay_unit_ms,optional"`
	Hue            *float64 `hcl:"hue,optional"`
	Sat            *float64 `hcl:"sat,optional"`
	Lum            *float64 `hcl:"lum,optional"`
}

type hclSpawner struct {
	Enabled    *bool `hcl:"enabled,optional"`
	IntervalMs *int  `hcl:"interval_ms,optional"`
	Batch      *int  `hcl:"batch,optional"`
	Waves      *int  `hcl:"waves,optional"`
	WaveGapMs  *int  `hcl:"wave_gap_ms,optional"`
}

type hclAxis struct {
	Name    string    `hcl:"name,label"`
	Symbols cty.Value `hcl:"symbols"`
}

type hclCodon struct {
	Name string   `hcl:"name,label"`
	Ops  []*hclOp `hcl:"op,block"`
}

type hclOp struct {
	Axis    string   `hcl:"axis,label"`
	Pattern []string `hcl:"pattern"`
}

// Default returns the built-in settings
func Default() (*Settings, error) {
	s := &Settings{
		Grid:    engine.DefaultOptions(),
		Spawner: actor.DefaultSpawnerConfig(),
		Axes:    compiler.DefaultAxes(),
		Codons:  make(compiler.CodonTable),
	}
	if err := s.apply([]byte(asset.DefaultConfig), defaultSource); err != nil {
		return nil, errors.Wrap(err, "embedded config")
	}
	return s, nil
}

// Load returns the built-in settings with the file at path layered over them.
// An empty path returns the built-in settings.
func Load(path string, logger *slog.Logger) (*Settings, error) {
	s, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return s, nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err := s.apply(src, path); err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Info("config loaded", "path", path, "codons", len(s.Codons), "size", s.Grid.Size)
	}
	return s, nil
}

// Parse layers src over the built-in settings; filename is used in diagnostics
func Parse(src []byte, filename string) (*Settings, error) {
	s, err := Default()
	if err != nil {
		return nil, err
	}
	if err := s.apply(src, filename); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) apply(src []byte, filename string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return errors.Wrapf(diags, "failed to parse HCL file %s", filename)
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return errors.Wrapf(diags, "failed to decode HCL file %s", filename)
	}

	if parsed.Grid != nil {
		parsed.Grid.applyTo(&s.Grid)
	}
	if parsed.Spawner != nil {
		parsed.Spawner.applyTo(s)
	}
	for _, a := range parsed.Axes {
		table, err := a.symbolTable()
		if err != nil {
			return errors.Wrapf(err, "%s: axis %q", filename, a.Name)
		}
		s.Axes = s.Axes.Merge(compiler.Axes{compiler.Axis(a.Name): table})
	}
	for _, c := range parsed.Codons {
		ops := make([]compiler.Op, 0, len(c.Ops))
		for _, op := range c.Ops {
			ops = append(ops, compiler.Op{Axis: compiler.Axis(op.Axis), Pattern: op.Pattern})
		}
		s.Codons[c.Name] = ops
	}

	return errors.Wrapf(s.Validate(), "%s", filename)
}

func (g *hclGrid) applyTo(o *engine.Options) {
	setIf(&o.Size, g.Size)
	setIf(&o.CellSize, g.CellSize)
	setIf(&o.Margin, g.Margin)
	setIf(&o.Left, g.Left)
	setIf(&o.Top, g.Top)
	setIf(&o.Hue, g.Hue)
	setIf(&o.Sat, g.Sat)
	setIf(&o.Lum, g.Lum)
	if g.CommitJitterMs != nil {
		o.CommitJitter = time.Duration(*g.CommitJitterMs) * time.Millisecond
	}
	if g.DelayUnitMs != nil {
		o.DelayUnit = time.Duration(*g.DelayUnitMs) * time.Millisecond
	}
}

func (sp *hclSpawner) applyTo(s *Settings) {
	setIf(&s.SpawnerEnabled, sp.Enabled)
	setIf(&s.Spawner.Batch, sp.Batch)
	setIf(&s.Spawner.Waves, sp.Waves)
	if sp.IntervalMs != nil {
		s.Spawner.Interval = time.Duration(*sp.IntervalMs) * time.Millisecond
	}
	if sp.WaveGapMs != nil {
		s.Spawner.WaveGap = time.Duration(*sp.WaveGapMs) * time.Millisecond
	}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// symbolTable converts the symbols map; every key must be a single rune and every value a string
func (a *hclAxis) symbolTable() (compiler.SymbolTable, error) {
	v := a.Symbols
	if v.IsNull() || !v.IsKnown() || !(v.Type().IsObjectType() || v.Type().IsMapType()) {
		return nil, errors.Wrap(ErrInvalidSettings, "symbols must be a map")
	}

	table := make(compiler.SymbolTable)
	for it := v.ElementIterator(); it.Next(); {
		k, val := it.Element()
		key := k.AsString()
		r, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) {
			return nil, errors.Wrapf(ErrInvalidSettings, "symbol %q must be a single character", key)
		}
		if val.IsNull() || val.Type() != cty.String {
			return nil, errors.Wrapf(ErrInvalidSettings, "symbol %q must map to a token string", key)
		}
		table[r] = val.AsString()
	}
	return table, nil
}

// Validate checks ranges and codon names
func (s *Settings) Validate() error {
	g := s.Grid
	if g.Size < 1 || g.Size > MaxGridSize {
		return errors.Wrapf(ErrInvalidSettings, "grid size %d outside 1..%d", g.Size, MaxGridSize)
	}
	if g.CellSize <= 0 {
		return errors.Wrapf(ErrInvalidSettings, "cell_size %v must be positive", g.CellSize)
	}
	if g.CommitJitter < 0 || g.DelayUnit <= 0 {
		return errors.Wrapf(ErrInvalidSettings, "commit timing: jitter %v, delay unit %v", g.CommitJitter, g.DelayUnit)
	}
	if s.Spawner.Interval <= 0 || s.Spawner.Batch < 1 || s.Spawner.Waves < 1 || s.Spawner.WaveGap < 0 {
		return errors.Wrapf(ErrInvalidSettings, "spawner %+v", s.Spawner)
	}
	for name := range s.Codons {
		if !ValidCodon(name) {
			return errors.Wrapf(ErrInvalidSettings, "codon %q: want three of S, N, O, W", name)
		}
	}
	return nil
}

// ValidCodon reports whether name is three letters from S, N, O, W
func ValidCodon(name string) bool {
	if len(name) != 3 {
		return false
	}
	for _, r := range name {
		switch r {
		case 'S', 'N', 'O', 'W':
		default:
			return false
		}
	}
	return true
}
