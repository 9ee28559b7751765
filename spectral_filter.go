package countfilter

import "github.com/shaia/countfilter/internal/hashstrategy"

// SpectralFilter inserts by incrementing only the currently minimum-valued
// hash positions (the minimum-increment rule), reducing the systematic
// over-counting a plain CountingFilter exhibits under hash collisions.
type SpectralFilter[T any] struct {
	*base[T]
}

// NewSpectralFilter builds a spectral filter with the same dimensioning
// rules as NewCountingFilter.
func NewSpectralFilter[T any](n uint64, p float64, bitsPerCell int, ordinal hashstrategy.Ordinal, funnel Funnel[T], newPrimitive NewHashPrimitive) (*SpectralFilter[T], error) {
	strategy, ok := hashstrategy.ByOrdinal(ordinal)
	if !ok {
		return nil, newError(InvalidDimension, "ordinal %d is not a built-in strategy", ordinal)
	}
	b, err := newBase(n, p, bitsPerCell, strategy, funnel, newPrimitive)
	if err != nil {
		return nil, err
	}
	return &SpectralFilter[T]{base: b}, nil
}

// Insert computes the k hashed positions, finds their minimum current
// value, and increments only the positions at that minimum — each at most
// once, even if a position recurs among the k hashes (positions are sorted
// and deduplicated before applying increments).
func (f *SpectralFilter[T]) Insert(element T) {
	positions := dedupSorted(f.minPositions(element))
	for _, pos := range positions {
		f.cells.Increment(pos)
	}
}

// InsertSetBatch stages element's minimum positions into the transaction
// bit set without incrementing anything yet. Call FlushSetBatch to apply
// one increment per distinct staged position. Net effect across a batch:
// each distinct position receives at most one increment per flush
// interval, regardless of how many elements in the batch hashed to it.
func (f *SpectralFilter[T]) InsertSetBatch(element T) {
	tx := f.ensureTxCache()
	for _, pos := range f.minPositions(element) {
		tx.Set(pos)
	}
}

// FlushSetBatch drains the transaction bit set via its clearing iterator,
// applying one increment per distinct staged position.
func (f *SpectralFilter[T]) FlushSetBatch() {
	if f.txCache == nil {
		return
	}
	it := f.txCache.ClearingIterator()
	for {
		pos, ok := it.Next()
		if !ok {
			break
		}
		f.cells.Increment(pos)
	}
}

// WeightedElement pairs an element with a positive increment amount for
// InsertBagBatch.
type WeightedElement[T any] struct {
	Element T
	Delta   uint64
}

// InsertBagBatch adds Delta (saturating, Delta >= 1) to each of an
// element's k hashed positions, deduplicated so a position repeated among
// the k hashes is added to only once per element.
func (f *SpectralFilter[T]) InsertBagBatch(elements []WeightedElement[T]) {
	for _, we := range elements {
		if we.Delta == 0 {
			continue
		}
		positions := f.positions(we.Element)
		buf := append([]int(nil), positions...)
		for _, pos := range dedupSorted(buf) {
			f.cells.Add(pos, we.Delta)
		}
	}
}

// Union requires compatibility and performs cell-wise saturating addition.
func (f *SpectralFilter[T]) Union(other *SpectralFilter[T]) error {
	if err := f.compatible(other.base); err != nil {
		return err
	}
	f.cells.Union(other.cells)
	return nil
}

// Equal reports whether f and other share k, strategy, funnel identity, and
// cell-by-cell contents.
func (f *SpectralFilter[T]) Equal(other *SpectralFilter[T]) bool {
	return f.base.Equal(other.base)
}

// Stats reports population and load metrics.
func (f *SpectralFilter[T]) Stats() Stats { return f.stats() }
