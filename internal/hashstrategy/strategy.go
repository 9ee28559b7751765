// Package hashstrategy implements the double-hash projections that turn a
// 128-bit hash into k cell positions in [0, m): V32 (Guava's legacy 32-bit
// combining strategy) and V64 (the modern additive 64-bit strategy). Both
// are pure functions of (lo, hi) — the two halves of a 128-bit hash — and
// carry no state.
package hashstrategy

// Ordinal identifies a strategy. Non-negative values are the enumerated
// stateless strategies below, in a stable order that is never reordered or
// reused. Negative values are reserved for user-defined stateful
// strategies.
type Ordinal int8

const (
	// OrdinalV32 is the double-hash-over-32-bit-halves strategy.
	OrdinalV32 Ordinal = 0
	// OrdinalV64 is the additive-64-bit double-hash strategy.
	OrdinalV64 Ordinal = 1
)

// CellReader exposes just enough of a cell array for a strategy to compute
// minPositions / mightContain / count without importing it (which would
// create a package cycle, since the filter facade binds the two).
type CellReader interface {
	Get(i int) uint64
}

// Strategy maps a 128-bit hash (lo, hi) to k positions in [0, m).
type Strategy interface {
	Ordinal() Ordinal

	// Positions fills out[:k] with the k hashed positions and returns k.
	Positions(lo, hi uint64, k, m int, out []int) int

	// MinPositions computes all k positions, reads their current values
	// from cells, and fills out with the subset at the minimum observed
	// value. Returns the count written. V32 and V64 intentionally differ in
	// how they treat a newly discovered minimum — see each implementation.
	MinPositions(lo, hi uint64, k, m int, cells CellReader, out []int) int

	// MightContain reports whether every one of the k positions is
	// non-zero in cells, short-circuiting on the first zero.
	MightContain(lo, hi uint64, k, m int, cells CellReader) bool

	// Count returns 0 if any of the k positions is zero, else the minimum
	// of the k values.
	Count(lo, hi uint64, k, m int, cells CellReader) uint64
}

// ByOrdinal returns the built-in strategy for a non-negative ordinal.
// Negative ordinals belong to caller-supplied strategies and are not
// resolvable here.
func ByOrdinal(o Ordinal) (Strategy, bool) {
	switch o {
	case OrdinalV32:
		return v32{}, true
	case OrdinalV64:
		return v64{}, true
	default:
		return nil, false
	}
}
