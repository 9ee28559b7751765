package hashstrategy

import "testing"

type fakeCells map[int]uint64

func (c fakeCells) Get(i int) uint64 { return c[i] }

func TestV32NegativeComplementNotAbsoluteValue(t *testing.T) {
	// h1 = math.MinInt32, h2 = 0 forces c = h1 on the first iteration.
	lo := uint64(uint32(1 << 31))
	pos := v32Position(int32(-1<<31), 0, 1, 1<<30)
	want := int(uint32(^int32(-1<<31)) % uint32(1<<30))
	if pos != want {
		t.Fatalf("v32Position = %d, want %d (bitwise complement of MinInt32)", pos, want)
	}
	_ = lo
}

func TestV32PositionsDeterministic(t *testing.T) {
	out1 := make([]int, 4)
	out2 := make([]int, 4)
	v32{}.Positions(123, 456, 4, 1000, out1)
	v32{}.Positions(123, 456, 4, 1000, out2)
	for i := range out1 {
		if out1[i] != out2[i] {
			t.Fatalf("Positions not deterministic at %d: %d vs %d", i, out1[i], out2[i])
		}
		if out1[i] < 0 || out1[i] >= 1000 {
			t.Fatalf("position %d out of range [0,1000)", out1[i])
		}
	}
}

func TestV64PositionsDeterministic(t *testing.T) {
	out1 := make([]int, 4)
	out2 := make([]int, 4)
	v64{}.Positions(123, 456, 4, 1000, out1)
	v64{}.Positions(123, 456, 4, 1000, out2)
	for i := range out1 {
		if out1[i] != out2[i] {
			t.Fatalf("Positions not deterministic at %d: %d vs %d", i, out1[i], out2[i])
		}
	}
}

func TestV64MinPositionsStrictLessThanAppendsEqual(t *testing.T) {
	cells := fakeCells{10: 5, 20: 5, 30: 9}
	// lo = 10, hi = 10, m = 1000 yields positions 10, 20, 30 in that order.
	out := make([]int, 3)
	n := v64{}.MinPositions(10, 10, 3, 1000, cells, out)
	if n != 2 || out[0] != 10 || out[1] != 20 {
		t.Fatalf("expected both equal-minimum positions retained, got %v (n=%d)", out[:n], n)
	}
}

func TestV32MinPositionsStrictGreaterResetsToLarger(t *testing.T) {
	// Mirrors the verbatim-preserved quirk in v32.MinPositions: discovering
	// a strictly larger value resets the buffer to it.
	cells := fakeCells{10: 5, 20: 9, 30: 9}
	// lo = 10<<32 gives h1 = 0, h2 = 10, so with m = 1000 the positions are
	// 10, 20, 30 in that order.
	out := make([]int, 3)
	n := v32{}.MinPositions(10<<32, 0, 3, 1000, cells, out)
	if n != 2 || out[0] != 20 || out[1] != 30 {
		t.Fatalf("expected buffer reset to the larger value's positions, got %v (n=%d)", out[:n], n)
	}
}

func TestMightContainAndCount(t *testing.T) {
	cells := fakeCells{}
	m := 1000
	var out [3]int
	lo, hi := uint64(111), uint64(222)
	n := v64{}.Positions(lo, hi, 3, m, out[:])
	if n != 3 {
		t.Fatalf("Positions returned %d, want 3", n)
	}
	if (v64{}).MightContain(lo, hi, 3, m, cells) {
		t.Fatal("MightContain should be false when all cells are zero")
	}
	for _, p := range out {
		cells[p] = 5
	}
	if !(v64{}).MightContain(lo, hi, 3, m, cells) {
		t.Fatal("MightContain should be true once all positions are non-zero")
	}
	if got := (v64{}).Count(lo, hi, 3, m, cells); got != 5 {
		t.Fatalf("Count = %d, want 5", got)
	}
	cells[out[0]] = 0
	if got := (v64{}).Count(lo, hi, 3, m, cells); got != 0 {
		t.Fatalf("Count = %d, want 0 when any position is zero", got)
	}
}

func TestByOrdinal(t *testing.T) {
	if s, ok := ByOrdinal(OrdinalV32); !ok || s.Ordinal() != OrdinalV32 {
		t.Fatal("ByOrdinal(OrdinalV32) failed")
	}
	if s, ok := ByOrdinal(OrdinalV64); !ok || s.Ordinal() != OrdinalV64 {
		t.Fatal("ByOrdinal(OrdinalV64) failed")
	}
	if _, ok := ByOrdinal(-1); ok {
		t.Fatal("ByOrdinal(-1) should fail: negative ordinals are user-defined")
	}
}
