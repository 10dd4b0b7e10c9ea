package compiler

import "strings"

// Axis names one mutation dimension a pattern can drive
type Axis string

const (
	AxisDelay     Axis = "delay"
	AxisTranslate Axis = "translate"
	AxisScale     Axis = "scale"
	AxisRot       Axis = "rot"
	AxisHue       Axis = "hue"
	AxisSat       Axis = "sat"
	AxisLum       Axis = "lum"
	AxisCommit    Axis = "commit"
)

// Delimiter separates primitive tokens inside a symbol expansion
const Delimiter = "|"

// NavNext is the raster-order advance every blank pattern cell expands to
const NavNext = "gN"

// SymbolTable maps one pattern rune to its pipe-delimited token expansion
type SymbolTable map[rune]string

// Axes holds the symbol table of every known axis
type Axes map[Axis]SymbolTable

// AllAxes lists the axes in their canonical order
var AllAxes = []Axis{
	AxisDelay, AxisTranslate, AxisScale, AxisRot, AxisHue, AxisSat, AxisLum, AxisCommit,
}

// DefaultAxes returns a fresh copy of the built-in symbol tables.
// Callers own the result and may modify it freely.
func DefaultAxes() Axes {
	return Axes{
		AxisDelay: {
			'1': "d1|gN", '2': "d2|gN", '3': "d3|gN",
			'4': "d4|gN", '5': "d5|gN", '6': "d6|gN",
			'7': "d7|gN", '8': "d8|gN", '9': "d9|gN",
			' ': NavNext,
		},
		AxisTranslate: {
			'↙': "t1|gN", '↓': "t2|gN", '↘': "t3|gN",
			'←': "t4|gN", '→': "t6|gN",
			'↖': "t7|gN", '↑': "t8|gN", '↗': "t9|gN",
			' ': NavNext,
		},
		AxisScale: {
			'↑': "cR|gN",
			'↓': "cL|gN",
			' ': NavNext,
		},
		AxisRot: {
			'R': "rR|gN",
			'r': strings.Repeat("rR|", 8) + NavNext,
			'L': "rL|gN",
			'l': strings.Repeat("rL|", 8) + NavNext,
			' ': NavNext,
		},
		AxisHue: {
			'↑': "hR|gN",
			'↓': "hL|gN",
			' ': NavNext,
		},
		AxisSat: {
			'R': "sR|gN",
			'L': "sL|gN",
			' ': NavNext,
		},
		AxisLum: {
			'R': "lR|gN",
			'L': "lL|gN",
			' ': NavNext,
		},
		AxisCommit: {
			'm': "commitAll",
		},
	}
}

// Clone deep-copies the axes
func (a Axes) Clone() Axes {
	out := make(Axes, len(a))
	for axis, table := range a {
		t := make(SymbolTable, len(table))
		for r, s := range table {
			t[r] = s
		}
		out[axis] = t
	}
	return out
}

// Merge returns a copy of a with every symbol of over layered on top.
// Axes missing from a are added whole.
func (a Axes) Merge(over Axes) Axes {
	out := a.Clone()
	for axis, table := range over {
		dst, ok := out[axis]
		if !ok {
			dst = make(SymbolTable, len(table))
			out[axis] = dst
		}
		for r, s := range table {
			dst[r] = s
		}
	}
	return out
}

// TokenCount returns how many primitive tokens an expansion string holds
func TokenCount(expansion string) int {
	return strings.Count(expansion, Delimiter) + 1
}
