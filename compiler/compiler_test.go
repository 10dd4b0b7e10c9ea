package compiler

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompileOp_Scenario(t *testing.T) {
	axes := Axes{AxisDelay: {'1': "d1|gN", ' ': "gN"}}
	op := Op{Axis: AxisDelay, Pattern: []string{"1 ", "  "}}

	got, err := CompileOp(axes, op)
	if err != nil {
		t.Fatalf("CompileOp failed: %v", err)
	}

	want := []string{"d1", "gN", "gN", "gN", "gN"}
	// '1' expands to two tokens, three blanks to one each
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileOp_RasterOrder(t *testing.T) {
	axes := Axes{AxisRot: {'R': "rR", 'L': "rL", ' ': "nop"}}
	op := Op{Axis: AxisRot, Pattern: []string{
		"RL ",
		" LR",
	}}

	got, err := CompileOp(axes, op)
	if err != nil {
		t.Fatalf("CompileOp failed: %v", err)
	}

	want := []string{"rR", "rL", "nop", "nop", "rL", "rR"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("raster order mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileOp_UnknownRune(t *testing.T) {
	op := Op{Axis: AxisSat, Pattern: []string{"RL  ", " X  "}}

	_, err := CompileOp(DefaultAxes(), op)
	if err == nil {
		t.Fatal("Expected error for unknown rune")
	}

	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected *CompileError, got %T", err)
	}
	if ce.Axis != AxisSat || ce.Rune != 'X' || ce.Row != 1 || ce.Col != 1 {
		t.Errorf("Unexpected error detail: %+v", ce)
	}
}

func TestCompileOp_UnknownAxis(t *testing.T) {
	_, err := CompileOp(DefaultAxes(), Op{Axis: "opacity", Pattern: []string{" "}})

	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected *CompileError, got %v", err)
	}
	if !ce.UnknownAxis || ce.Axis != "opacity" {
		t.Errorf("Expected unknown axis error, got %+v", ce)
	}
}

func TestCompileOp_NulRuneOnKnownAxis(t *testing.T) {
	_, err := CompileOp(DefaultAxes(), Op{Axis: AxisHue, Pattern: []string{"\x00"}})

	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected *CompileError, got %v", err)
	}
	if ce.UnknownAxis || ce.Rune != 0 || ce.Row != 0 || ce.Col != 0 {
		t.Errorf("Expected a missing symbol on a known axis, got %+v", ce)
	}
	if strings.Contains(err.Error(), "unknown axis") {
		t.Errorf("Error misreports the axis: %v", err)
	}
}

func TestCompile_NamesCodonInError(t *testing.T) {
	table := CodonTable{
		"SSS": {{Axis: AxisRot, Pattern: []string{"RLRL"}}},
		"NNN": {{Axis: AxisHue, Pattern: []string{"↑?"}}},
	}

	_, err := Compile(DefaultAxes(), table)

	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected *CompileError, got %v", err)
	}
	if ce.Codon != "NNN" {
		t.Errorf("Expected codon NNN in error, got %q", ce.Codon)
	}
}

func TestCompileOpList_PreservesOrder(t *testing.T) {
	ops := []Op{
		{Axis: AxisDelay, Pattern: []string{"1"}},
		{Axis: AxisRot, Pattern: []string{"R"}},
		{Axis: AxisCommit, Pattern: []string{"m"}},
	}

	got, err := CompileOpList(DefaultAxes(), ops)
	if err != nil {
		t.Fatalf("CompileOpList failed: %v", err)
	}

	want := []string{"d1", "gN", "rR", "gN", "commitAll"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileOpList_EmptyCodon(t *testing.T) {
	got, err := CompileOpList(DefaultAxes(), nil)
	if err != nil {
		t.Fatalf("CompileOpList failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil token list, got %#v", got)
	}
}

func TestCompile_Deterministic(t *testing.T) {
	table := CodonTable{
		"SSN": {{Axis: AxisRot, Pattern: []string{"RLRL", "    ", "    ", "  r "}}, {Axis: AxisCommit, Pattern: []string{"m"}}},
		"SOW": {{Axis: AxisScale, Pattern: []string{"↑↓↑↓", "↓↑↓↑", "↑↓↑↓", "↓↑↓↑"}}},
		"WWW": nil,
	}

	c := New(DefaultAxes())
	first, err := c.Compile(table)
	if err != nil {
		t.Fatalf("first compile failed: %v", err)
	}
	second, err := c.Compile(table)
	if err != nil {
		t.Fatalf("second compile failed: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("compile not deterministic (-first +second):\n%s", diff)
	}
}

func TestCompile_TotalExpansion(t *testing.T) {
	axes := DefaultAxes()
	table := CodonTable{
		"SSN": {{Axis: AxisRot, Pattern: []string{"RLRL", "    ", "    ", "  r "}}, {Axis: AxisCommit, Pattern: []string{"m"}}},
		"NNW": {
			{Axis: AxisDelay, Pattern: []string{"1   ", "    ", "    ", "   1"}},
			{Axis: AxisRot, Pattern: []string{"l  l", "    ", "    ", "r  r"}},
			{Axis: AxisTranslate, Pattern: []string{"↖  ↗", "    ", "    ", "↙  ↘"}},
		},
	}

	program, err := Compile(axes, table)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	for codon, ops := range table {
		want := ExpectedLength(axes, ops)
		if got := len(program[codon]); got != want {
			t.Errorf("%s: expected %d tokens, got %d", codon, want, got)
		}
	}

	// SSN: 16 cells, four single rotations, one 8-spin, plus commit
	if got := len(program["SSN"]); got != 16+4+8+1 {
		t.Errorf("SSN: expected 29 tokens, got %d", got)
	}
}

func TestCompileOp_RasterCoverage(t *testing.T) {
	axes := DefaultAxes()
	// Every blank expands to exactly one gN, so token count equals cell count
	for rows := 1; rows <= 6; rows++ {
		for cols := 1; cols <= 6; cols++ {
			pattern := make([]string, rows)
			for i := range pattern {
				pattern[i] = strings.Repeat(" ", cols)
			}
			got, err := CompileOp(axes, Op{Axis: AxisHue, Pattern: pattern})
			if err != nil {
				t.Fatalf("%dx%d: %v", rows, cols, err)
			}
			if len(got) != rows*cols {
				t.Errorf("%dx%d: expected %d tokens, got %d", rows, cols, rows*cols, len(got))
			}
		}
	}
}

func TestDefaultAxes_BlankIsNavigation(t *testing.T) {
	for axis, table := range DefaultAxes() {
		if axis == AxisCommit {
			continue
		}
		if table[' '] != NavNext {
			t.Errorf("axis %s: blank maps to %q, want %q", axis, table[' '], NavNext)
		}
	}
}

func TestDefaultAxes_Independent(t *testing.T) {
	a := DefaultAxes()
	a[AxisRot]['R'] = "nop"

	if DefaultAxes()[AxisRot]['R'] != "rR|gN" {
		t.Error("DefaultAxes must return a fresh copy")
	}
}

func TestAxes_Merge(t *testing.T) {
	base := DefaultAxes()
	merged := base.Merge(Axes{
		AxisHue: {'=': "nop|gN"},
		"blink":  {'*': "nop"},
	})

	if merged[AxisHue]['='] != "nop|gN" {
		t.Error("Expected override symbol in merged hue table")
	}
	if merged[AxisHue]['↑'] != "hR|gN" {
		t.Error("Expected base symbols to survive merge")
	}
	if _, ok := merged["blink"]; !ok {
		t.Error("Expected new axis to be added")
	}
	if _, ok := base[AxisHue]['=']; ok {
		t.Error("Merge must not modify the receiver")
	}
}

func TestTokenCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"gN", 1},
		{"d1|gN", 2},
		{"rR|rR|rR|rR|rR|rR|rR|rR|gN", 9},
	}
	for _, tt := range tests {
		if got := TokenCount(tt.in); got != tt.want {
			t.Errorf("TokenCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestProgram_Codons(t *testing.T) {
	p := Program{"WSS": nil, "NNN": {"gN"}, "SSS": {}}
	want := []string{"NNN", "SSS", "WSS"}
	if diff := cmp.Diff(want, p.Codons()); diff != "" {
		t.Errorf("Codons mismatch (-want +got):\n%s", diff)
	}
	if _, ok := p.Lookup("OOO"); ok {
		t.Error("Expected lookup miss for OOO")
	}
}
