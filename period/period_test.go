package period

import "testing"

var tables = map[string][]float64{
	"scale": {100, 112, 100, 88},
	"sat":   {30, 60, 90, 60, 30, 0},
	"lum":   {50, 70, 90, 70, 50, 30, 10, 30},
	"one":   {7},
}

func TestTable_CycleLength(t *testing.T) {
	for name, values := range tables {
		for start := 0; start < len(values); start++ {
			tb := New(values...)
			for i := 0; i < start; i++ {
				tb.Up()
			}
			before, idx := tb.Value(), tb.Index()

			for i := 0; i < tb.Len(); i++ {
				tb.Up()
			}

			if tb.Value() != before || tb.Index() != idx {
				t.Errorf("%s from %d: expected value %v at %d after full cycle, got %v at %d",
					name, start, before, idx, tb.Value(), tb.Index())
			}
		}
	}
}

func TestTable_DownCycleLength(t *testing.T) {
	for name, values := range tables {
		tb := New(values...)
		for i := 0; i < tb.Len(); i++ {
			tb.Down()
		}
		if tb.Index() != 0 {
			t.Errorf("%s: expected cursor 0 after %d downs, got %d", name, tb.Len(), tb.Index())
		}
	}
}

func TestTable_UpDownIdentity(t *testing.T) {
	for name, values := range tables {
		for start := 0; start < len(values); start++ {
			tb := New(values...)
			for i := 0; i < start; i++ {
				tb.Up()
			}
			before := tb.Value()

			tb.Up()
			if got := tb.Down(); got != before {
				t.Errorf("%s from %d: up then down returned %v, want %v", name, start, got, before)
			}

			tb.Down()
			if got := tb.Up(); got != before {
				t.Errorf("%s from %d: down then up returned %v, want %v", name, start, got, before)
			}
		}
	}
}

func TestTable_Values(t *testing.T) {
	tb := New(30, 60, 90, 60, 30, 0)

	if v := tb.Value(); v != 30 {
		t.Errorf("Expected initial 30, got %v", v)
	}
	if v := tb.Up(); v != 60 {
		t.Errorf("Expected 60 after up, got %v", v)
	}
	tb.Reset()
	if v := tb.Down(); v != 0 {
		t.Errorf("Expected wrap to 0 after down from start, got %v", v)
	}
	if tb.Index() != 5 {
		t.Errorf("Expected cursor 5, got %d", tb.Index())
	}
}

func TestTable_CursorInRange(t *testing.T) {
	tb := New(tables["lum"]...)
	steps := []bool{true, false, false, false, true, true, false, true, true, true, true, true, true, true, true}
	for i, up := range steps {
		if up {
			tb.Up()
		} else {
			tb.Down()
		}
		if tb.Index() < 0 || tb.Index() >= tb.Len() {
			t.Fatalf("step %d: cursor %d out of range", i, tb.Index())
		}
	}
}

func TestTable_CopiesInput(t *testing.T) {
	src := []float64{1, 2, 3}
	tb := New(src...)
	src[0] = 99
	if tb.Value() != 1 {
		t.Error("Table must not alias the caller's slice")
	}
}

func TestNew_EmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for empty table")
		}
	}()
	New()
}
