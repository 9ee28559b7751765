package bitblock

import "errors"

// ErrUnsupportedIntersect is returned by CellArray.Intersect, which is
// declared only to mirror BitSet's shape; there is no well-defined
// saturating-count analogue of bitwise AND.
var ErrUnsupportedIntersect = errors.New("bitblock: CellArray.Intersect is not supported")

// CellArray is a b-bit-per-cell packed counter array, 1 <= b <= 31, with
// saturating increment, a cached non-zero-cell count, and ascending
// (cellIndex, value) cursors — one of which destructively zeros words as it
// leaves them.
type CellArray struct {
	block      *Block
	m          int
	b          int
	mask       uint64
	nonZero    int
	nonZeroOK  bool
}

// NewCellArray allocates a CellArray of m cells, each b bits wide.
func NewCellArray(m, b int) *CellArray {
	if b < 1 || b > 31 {
		panic("bitblock: CellArray bitsPerCell must be in [1, 31]")
	}
	return &CellArray{
		block:     NewBlock(m * b),
		m:         m,
		b:         b,
		mask:      (uint64(1) << uint(b)) - 1,
		nonZeroOK: true,
	}
}

// WrapCellArray rebinds an externally supplied word buffer as a CellArray of
// m cells at b bits each. The caller must ensure the buffer is long enough;
// the cached population count is marked invalid and recomputed lazily.
func WrapCellArray(words []uint64, m, b int) *CellArray {
	return &CellArray{
		block: WrapBlock(words),
		m:     m,
		b:     b,
		mask:  (uint64(1) << uint(b)) - 1,
	}
}

// Size returns M, the number of cells.
func (c *CellArray) Size() int { return c.m }

// BitsPerCell returns b.
func (c *CellArray) BitsPerCell() int { return c.b }

// CellMask returns 2^b - 1, the saturation ceiling.
func (c *CellArray) CellMask() uint64 { return c.mask }

func (c *CellArray) checkIndex(i int) {
	if i < 0 || i >= c.m {
		panic("bitblock: CellArray index out of range")
	}
}

// Get returns the value at cell i, in [0, 2^b - 1].
func (c *CellArray) Get(i int) uint64 {
	c.checkIndex(i)
	return c.block.GetCell(i, c.b)
}

// Add adds delta (>= 0) to cell i, clamped at the saturation ceiling.
// Returns true iff the stored value changed. delta == 0 is a no-op.
func (c *CellArray) Add(i int, delta uint64) bool {
	c.checkIndex(i)
	if delta == 0 {
		return false
	}
	old := c.block.GetCell(i, c.b)
	next := old + delta
	if next > c.mask || next < old { // clamp on ceiling or uint64 overflow
		next = c.mask
	}
	if next == old {
		return false
	}
	c.block.ApplyCellXOR(i, c.b, old^next)
	if c.nonZeroOK {
		if old == 0 {
			c.nonZero++
		} else if next == 0 {
			c.nonZero--
		}
	}
	return true
}

// Increment adds 1 to cell i, clamped at the saturation ceiling.
func (c *CellArray) Increment(i int) bool { return c.Add(i, 1) }

// Set is defined as Increment, per the shared hash-sink contract CellArray
// shares with BitSet — it does not set the cell to 1.
func (c *CellArray) Set(i int) bool { return c.Increment(i) }

// PopulationCount returns the number of non-zero cells, O(1) when the cache
// is valid and a full scan otherwise.
func (c *CellArray) PopulationCount() int {
	if !c.nonZeroOK {
		c.nonZero = 0
		for i := 0; i < c.m; i++ {
			if c.block.GetCell(i, c.b) != 0 {
				c.nonZero++
			}
		}
		c.nonZeroOK = true
	}
	return c.nonZero
}

// Clear zeros every word and resets the population count. No-op if already
// empty.
func (c *CellArray) Clear() {
	if c.nonZeroOK && c.nonZero == 0 {
		return
	}
	c.block.Clear()
	c.nonZero = 0
	c.nonZeroOK = true
}

// Union saturating-adds other into c cell-wise: self[i] := min(ceiling,
// self[i] + other[i]). Requires identical m and b.
func (c *CellArray) Union(other *CellArray) {
	if c.m != other.m || c.b != other.b {
		panic("bitblock: CellArray.Union requires identical dimensions")
	}
	for i := 0; i < c.m; i++ {
		v := other.block.GetCell(i, c.b)
		if v != 0 {
			c.Add(i, v)
		}
	}
}

// Intersect is declared to satisfy the same shape as BitSet but is not
// supported for CellArray: there is no well-defined saturating-count
// analogue of bitwise AND, so it fails loudly rather than guessing one.
func (c *CellArray) Intersect(*CellArray) error {
	return ErrUnsupportedIntersect
}

// RawWords exposes the backing word buffer.
func (c *CellArray) RawWords() []uint64 { return c.block.RawWords() }

// Cursor returns a lazy, read-only sequence of (cellIndex, value) pairs for
// all non-zero cells, ascending by cellIndex.
func (c *CellArray) Cursor() *Cursor {
	return &Cursor{ca: c, cell: -1}
}

// ClearingCursor behaves like Cursor but additionally zeros each backing
// word once the cursor has moved past every cell it holds.
func (c *CellArray) ClearingCursor() *Cursor {
	return &Cursor{ca: c, cell: -1, clearing: true, closedWord: -1}
}

// Cursor walks non-zero cells of a CellArray in ascending index order.
type Cursor struct {
	ca         *CellArray
	cell       int
	clearing   bool
	closedWord int
}

// Next yields the next non-zero cell, or false once exhausted. For a
// clearing cursor, once Next returns false every backing word is zero and
// the cached population count is zero.
func (cur *Cursor) Next() (index int, value uint64, ok bool) {
	ca := cur.ca
	for cur.cell+1 < ca.m {
		cur.cell++
		v := ca.block.GetCell(cur.cell, ca.b)
		if cur.clearing {
			cur.closeFinishedWords()
		}
		if v != 0 {
			return cur.cell, v, true
		}
	}
	if cur.clearing {
		cur.closeRemainingWords()
	}
	return 0, 0, false
}

// closeFinishedWords zeros any word that no remaining cell can still touch,
// i.e. every word strictly below the word the *next* cell starts in.
func (cur *Cursor) closeFinishedWords() {
	ca := cur.ca
	nextStart := (cur.cell + 1) * ca.b
	nextW0 := nextStart >> 6
	upTo := nextW0 - 1
	if cur.cell+1 >= ca.m {
		cur.closeRemainingWords()
		return
	}
	words := ca.block.RawWords()
	for w := cur.closedWord + 1; w <= upTo && w < len(words); w++ {
		words[w] = 0
		cur.closedWord = w
	}
}

func (cur *Cursor) closeRemainingWords() {
	ca := cur.ca
	words := ca.block.RawWords()
	for w := cur.closedWord + 1; w < len(words); w++ {
		words[w] = 0
	}
	cur.closedWord = len(words) - 1
	ca.nonZero = 0
	ca.nonZeroOK = true
}
