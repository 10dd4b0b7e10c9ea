// Package compiler turns declarative codon tables into flat primitive token programs.
//
// A codon names an ordered list of ops; each op applies one axis across the grid
// through a character pattern read in raster order. Every pattern rune is replaced
// by its axis expansion and the expansions are split on the token delimiter, so the
// compiled program is a single token stream the grid engine can walk.
package compiler

import (
	"sort"
	"strings"
)

// Op applies one axis across the grid, one pattern rune per cell in raster order
type Op struct {
	Axis    Axis
	Pattern []string
}

// Cells returns the number of pattern runes, i.e. the cells the op visits
func (op Op) Cells() int {
	n := 0
	for _, row := range op.Pattern {
		n += len([]rune(row))
	}
	return n
}

// CodonTable maps a codon key to its ordered op list
type CodonTable map[string][]Op

// Program maps a codon key to its compiled token list
type Program map[string][]string

// Lookup returns the tokens compiled for codon
func (p Program) Lookup(codon string) ([]string, bool) {
	tokens, ok := p[codon]
	return tokens, ok
}

// Codons returns the program keys in sorted order
func (p Program) Codons() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Compiler binds a set of axis tables. The zero value has no axes and rejects every op.
type Compiler struct {
	Axes Axes
}

// New creates a compiler over axes
func New(axes Axes) *Compiler {
	return &Compiler{Axes: axes}
}

// Compile compiles every codon of table
func (c *Compiler) Compile(table CodonTable) (Program, error) {
	return Compile(c.Axes, table)
}

// CompileOp expands one op into its token list.
// A rune missing from the axis table fails the whole op; a gap would shift every later cell of the pass.
func CompileOp(axes Axes, op Op) ([]string, error) {
	table, ok := axes[op.Axis]
	if !ok {
		return nil, &CompileError{Axis: op.Axis, UnknownAxis: true}
	}

	tokens := make([]string, 0, op.Cells()*2)
	for row, line := range op.Pattern {
		col := 0
		for _, r := range line {
			expansion, ok := table[r]
			if !ok {
				return nil, &CompileError{Axis: op.Axis, Rune: r, Row: row, Col: col}
			}
			tokens = append(tokens, strings.Split(expansion, Delimiter)...)
			col++
		}
	}
	return tokens, nil
}

// CompileOpList concatenates the expansions of ops in order
func CompileOpList(axes Axes, ops []Op) ([]string, error) {
	var tokens []string
	for _, op := range ops {
		expanded, err := CompileOp(axes, op)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, expanded...)
	}
	if tokens == nil {
		tokens = []string{}
	}
	return tokens, nil
}

// Compile compiles every codon of table. The result depends only on its inputs,
// so a program compiled from static configuration can be cached for the process lifetime.
func Compile(axes Axes, table CodonTable) (Program, error) {
	codons := make([]string, 0, len(table))
	for codon := range table {
		codons = append(codons, codon)
	}
	sort.Strings(codons)

	program := make(Program, len(table))
	for _, codon := range codons {
		tokens, err := CompileOpList(axes, table[codon])
		if err != nil {
			if ce, ok := err.(*CompileError); ok {
				ce.Codon = codon
			}
			return nil, err
		}
		program[codon] = tokens
	}
	return program, nil
}

// ExpectedLength computes the token count a codon's ops must compile to
func ExpectedLength(axes Axes, ops []Op) int {
	n := 0
	for _, op := range ops {
		table := axes[op.Axis]
		for _, line := range op.Pattern {
			for _, r := range line {
				n += TokenCount(table[r])
			}
		}
	}
	return n
}
