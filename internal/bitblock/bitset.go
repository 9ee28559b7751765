package bitblock

import (
	"math/bits"

	"github.com/shaia/countfilter/internal/bitops"
)

// BitSet is a 1-bit-per-cell specialization of Block with a cached
// population count and a destructive clearing scan.
type BitSet struct {
	block *Block
	n     int
	pop   int
}

// NewBitSet allocates a BitSet of n bits, all initially zero.
func NewBitSet(n int) *BitSet {
	return &BitSet{block: NewBlock(n), n: n}
}

// WrapBitSet rebinds an externally supplied word buffer as a BitSet of n
// bits. The caller is responsible for the buffer having the right length;
// the population count is recomputed from the supplied words.
func WrapBitSet(words []uint64, n int) *BitSet {
	bs := &BitSet{block: WrapBlock(words), n: n}
	bs.pop = bitops.PopCount(words)
	return bs
}

// Size returns N, the number of addressable bits.
func (bs *BitSet) Size() int { return bs.n }

// Get returns 0 or 1 for bit i. Panics if i is out of range.
func (bs *BitSet) Get(i int) int {
	if i < 0 || i >= bs.n {
		panic("bitblock: BitSet index out of range")
	}
	return bs.block.GetBit(i)
}

// Set sets bit i and reports whether it was previously zero.
func (bs *BitSet) Set(i int) bool {
	if i < 0 || i >= bs.n {
		panic("bitblock: BitSet index out of range")
	}
	changed := bs.block.SetBit(i)
	if changed {
		bs.pop++
	}
	return changed
}

// PopulationCount returns the number of set bits, O(1).
func (bs *BitSet) PopulationCount() int { return bs.pop }

// Clear zeros every word and resets the population count.
func (bs *BitSet) Clear() {
	if bs.pop == 0 {
		return
	}
	bs.block.Clear()
	bs.pop = 0
}

// Union ORs other into bs in place. Requires identical word length.
func (bs *BitSet) Union(other *BitSet) {
	if bs.block.WordLen() != other.block.WordLen() {
		panic("bitblock: BitSet.Union requires identical word length")
	}
	bitops.OrWords(bs.block.RawWords(), other.block.RawWords())
	bs.pop = bitops.PopCount(bs.block.RawWords())
}

// Intersect ANDs other into bs in place. Requires identical word length.
func (bs *BitSet) Intersect(other *BitSet) {
	if bs.block.WordLen() != other.block.WordLen() {
		panic("bitblock: BitSet.Intersect requires identical word length")
	}
	bitops.AndWords(bs.block.RawWords(), other.block.RawWords())
	bs.pop = bitops.PopCount(bs.block.RawWords())
}

// RawWords exposes the backing word buffer, for export or for Union's
// sibling operations between compatible owners.
func (bs *BitSet) RawWords() []uint64 { return bs.block.RawWords() }

// ClearingIterator returns a lazy, destructive iterator over the indices of
// currently set bits: each bit is cleared as it is yielded. Indices are
// emitted in strictly ascending order. After exhaustion every word is zero
// and PopulationCount is zero.
func (bs *BitSet) ClearingIterator() *ClearingIterator {
	it := &ClearingIterator{bs: bs}
	it.advance()
	return it
}

// ClearingIterator consumes bits from its owning BitSet as it is drained.
type ClearingIterator struct {
	bs   *BitSet
	word int
}

func (it *ClearingIterator) advance() {
	words := it.bs.block.RawWords()
	for it.word < len(words) && words[it.word] == 0 {
		it.word++
	}
}

// HasNext reports whether any set bit remains.
func (it *ClearingIterator) HasNext() bool {
	return it.word < it.bs.block.WordLen()
}

// Next clears and returns the lowest remaining set bit's index.
func (it *ClearingIterator) Next() (int, bool) {
	if !it.HasNext() {
		return 0, false
	}
	words := it.bs.block.RawWords()
	w := words[it.word]
	lowest := w & (-w)
	idx := it.word*64 + bits.TrailingZeros64(lowest)
	words[it.word] = w ^ lowest
	it.bs.pop--
	it.advance()
	return idx, true
}
