package compiler

import "fmt"

// CompileError reports a pattern that cannot be expanded.
// With UnknownAxis set, Rune, Row and Col are unused.
type CompileError struct {
	Codon       string
	Axis        Axis
	UnknownAxis bool
	Rune        rune
	Row         int
	Col         int
}

func (e *CompileError) Error() string {
	prefix := "compile"
	if e.Codon != "" {
		prefix = fmt.Sprintf("compile codon %s", e.Codon)
	}
	if e.UnknownAxis {
		return fmt.Sprintf("%s: unknown axis %q", prefix, e.Axis)
	}
	return fmt.Sprintf("%s: axis %q has no symbol %q (row %d, col %d)", prefix, e.Axis, e.Rune, e.Row, e.Col)
}
