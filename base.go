package countfilter

import (
	"math"
	"sort"

	"github.com/shaia/countfilter/internal/bitblock"
	"github.com/shaia/countfilter/internal/hashstrategy"
)

// base holds the tuple ⟨m, k, b, strategy, funnel, cells, txCache?, minBuf?⟩
// shared by CountingFilter and SpectralFilter. txCache and minBuf are
// allocated lazily on first use and reused across calls — callers must not
// interleave two batch operations on the same filter.
type base[T any] struct {
	m, k, b      int
	strategy     hashstrategy.Strategy
	funnel       Funnel[T]
	newPrimitive NewHashPrimitive
	cells        *bitblock.CellArray

	txCache *bitblock.BitSet
	minBuf  []int
	posBuf  []int
}

func newBase[T any](n uint64, p float64, bitsPerCell int, strategy hashstrategy.Strategy, funnel Funnel[T], newPrimitive NewHashPrimitive) (*base[T], error) {
	if err := validateBitsPerCell(bitsPerCell); err != nil {
		return nil, err
	}
	m, k, err := dims(n, p)
	if err != nil {
		return nil, err
	}
	if newPrimitive == nil {
		newPrimitive = Murmur128()
	}
	return &base[T]{
		m:            m,
		k:            k,
		b:            bitsPerCell,
		strategy:     strategy,
		funnel:       funnel,
		newPrimitive: newPrimitive,
		cells:        bitblock.NewCellArray(m, bitsPerCell),
		posBuf:       make([]int, k),
	}, nil
}

func (f *base[T]) hash(element T) (lo, hi uint64) {
	return hash128(element, f.funnel, f.newPrimitive)
}

func (f *base[T]) minPositions(element T) []int {
	if f.minBuf == nil {
		f.minBuf = make([]int, f.k)
	}
	lo, hi := f.hash(element)
	n := f.strategy.MinPositions(lo, hi, f.k, f.m, f.cells, f.minBuf)
	return f.minBuf[:n]
}

func (f *base[T]) positions(element T) []int {
	lo, hi := f.hash(element)
	f.strategy.Positions(lo, hi, f.k, f.m, f.posBuf)
	return f.posBuf
}

func (f *base[T]) ensureTxCache() *bitblock.BitSet {
	if f.txCache == nil {
		f.txCache = bitblock.NewBitSet(f.m)
	}
	return f.txCache
}

// dedupSorted sorts positions ascending and compacts consecutive duplicates
// in place, returning the deduplicated prefix.
func dedupSorted(positions []int) []int {
	if len(positions) < 2 {
		return positions
	}
	sort.Ints(positions)
	w := 1
	for r := 1; r < len(positions); r++ {
		if positions[r] != positions[w-1] {
			positions[w] = positions[r]
			w++
		}
	}
	return positions[:w]
}

// MightContain reports whether every position hashed from element is
// currently non-zero.
func (f *base[T]) MightContain(element T) bool {
	lo, hi := f.hash(element)
	return f.strategy.MightContain(lo, hi, f.k, f.m, f.cells)
}

// Count delegates to the strategy: 0 if any hashed position is zero, else
// the minimum of the k cell values. The result is a lower bound on the true
// insertion count, capped by the saturation ceiling.
func (f *base[T]) Count(element T) uint64 {
	lo, hi := f.hash(element)
	return f.strategy.Count(lo, hi, f.k, f.m, f.cells)
}

// Clear resets cell contents but preserves dimensions.
func (f *base[T]) Clear() {
	f.cells.Clear()
	if f.txCache != nil {
		f.txCache.Clear()
	}
}

// Dimensions returns (m, k, b).
func (f *base[T]) Dimensions() (m, k, b int) { return f.m, f.k, f.b }

func (f *base[T]) compatible(other *base[T]) error {
	if f.m != other.m || f.k != other.k || f.b != other.b {
		return newError(Incompatible, "dimensions differ: (m=%d,k=%d,b=%d) vs (m=%d,k=%d,b=%d)", f.m, f.k, f.b, other.m, other.k, other.b)
	}
	if f.strategy.Ordinal() != other.strategy.Ordinal() {
		return newError(Incompatible, "strategy ordinal differs: %d vs %d", f.strategy.Ordinal(), other.strategy.Ordinal())
	}
	if f.funnel.Identity() != other.funnel.Identity() {
		return newError(Incompatible, "funnel identity differs: %q vs %q", f.funnel.Identity(), other.funnel.Identity())
	}
	return nil
}

// Equal reports whether f and other share k, strategy, funnel identity, and
// cell-by-cell contents.
func (f *base[T]) Equal(other *base[T]) bool {
	if f.compatible(other) != nil {
		return false
	}
	for i := 0; i < f.m; i++ {
		if f.cells.Get(i) != other.cells.Get(i) {
			return false
		}
	}
	return true
}

// ExportWords yields the backing word buffer for persistence.
func (f *base[T]) ExportWords() []uint64 {
	return f.cells.RawWords()
}

// Wrap rebinds the cell array to an externally supplied word buffer. The
// resulting logical size must match f.m.
func (f *base[T]) Wrap(words []uint64) error {
	needed := (f.m*f.b + 63) / 64
	if len(words) != needed {
		return newError(SizeMismatch, "wrap: buffer has %d words, need %d for m=%d b=%d", len(words), needed, f.m, f.b)
	}
	f.cells = bitblock.WrapCellArray(words, f.m, f.b)
	return nil
}

// Stats reports population and load metrics, mirroring a typical
// bloom-filter CacheStats accessor.
type Stats struct {
	Cells        int
	CellsSet     int
	BitsPerCell  int
	HashCount    int
	LoadFactor   float64
	EstimatedFPP float64
}

func (f *base[T]) stats() Stats {
	set := f.cells.PopulationCount()
	load := float64(set) / float64(f.m)
	return Stats{
		Cells:        f.m,
		CellsSet:     set,
		BitsPerCell:  f.b,
		HashCount:    f.k,
		LoadFactor:   load,
		EstimatedFPP: math.Pow(load, float64(f.k)),
	}
}
