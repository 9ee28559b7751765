package countfilter

import "github.com/shaia/countfilter/internal/hashstrategy"

// CountingFilter estimates how many times each distinct element has been
// inserted, saturating at 2^bitsPerCell - 1 per cell. Every one of the k
// hashed positions is incremented on every insert, so systematic
// over-counting from hash collisions is expected; see SpectralFilter for
// the minimum-increment alternative.
type CountingFilter[T any] struct {
	*base[T]
}

// NewCountingFilter builds a counting filter sized for n expected
// insertions at false-positive target p, using bitsPerCell-bit saturating
// counters and the given strategy ordinal (OrdinalV32 or OrdinalV64).
// newPrimitive may be nil to use the default murmur3 128-bit primitive.
func NewCountingFilter[T any](n uint64, p float64, bitsPerCell int, ordinal hashstrategy.Ordinal, funnel Funnel[T], newPrimitive NewHashPrimitive) (*CountingFilter[T], error) {
	strategy, ok := hashstrategy.ByOrdinal(ordinal)
	if !ok {
		return nil, newError(InvalidDimension, "ordinal %d is not a built-in strategy", ordinal)
	}
	b, err := newBase(n, p, bitsPerCell, strategy, funnel, newPrimitive)
	if err != nil {
		return nil, err
	}
	return &CountingFilter[T]{base: b}, nil
}

// Insert increments every one of the k hashed positions for element,
// clamped per-cell at the saturation ceiling.
func (f *CountingFilter[T]) Insert(element T) {
	for _, pos := range f.positions(element) {
		f.cells.Increment(pos)
	}
}

// Union requires compatibility (same m, k, b, strategy, funnel identity)
// and performs cell-wise saturating addition.
func (f *CountingFilter[T]) Union(other *CountingFilter[T]) error {
	if err := f.compatible(other.base); err != nil {
		return err
	}
	f.cells.Union(other.cells)
	return nil
}

// Equal reports whether f and other share k, strategy, funnel identity, and
// cell-by-cell contents.
func (f *CountingFilter[T]) Equal(other *CountingFilter[T]) bool {
	return f.base.Equal(other.base)
}

// Stats reports population and load metrics.
func (f *CountingFilter[T]) Stats() Stats { return f.stats() }
