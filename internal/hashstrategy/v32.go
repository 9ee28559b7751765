package hashstrategy

// v32 derives (h1, h2) from the low 32-bit and high 32-bit signed halves of
// the low 64 bits of the 128-bit hash, then double-hashes in 32-bit
// wraparound arithmetic. This is the legacy strategy: it predates V64 and is
// kept only for persistence compatibility with data written under it.
type v32 struct{}

func (v32) Ordinal() Ordinal { return OrdinalV32 }

func v32Halves(lo uint64) (h1, h2 int32) {
	return int32(lo), int32(lo >> 32)
}

func v32Position(h1, h2 int32, i, m int) int {
	c := h1 + int32(i)*h2
	if c < 0 {
		c = ^c // bitwise complement, NOT absolute value: -2^31 maps to 2^31-1
	}
	return int(uint32(c) % uint32(m))
}

func (v32) Positions(lo, hi uint64, k, m int, out []int) int {
	h1, h2 := v32Halves(lo)
	for i := 1; i <= k; i++ {
		out[i-1] = v32Position(h1, h2, i, m)
	}
	return k
}

// MinPositions uses strict-greater-than for "new minimum": on discovering a
// strictly larger value than the running minimum, the collected buffer is
// reset to that new, larger value. This is the inverse of what "minimum"
// suggests and differs from V64's strict-less-than rule; do not normalize
// the two without a schema-version bump, since existing on-disk filters
// depend on this exact behavior.
func (v32) MinPositions(lo, hi uint64, k, m int, cells CellReader, out []int) int {
	h1, h2 := v32Halves(lo)
	n := 0
	var minVal uint64
	for i := 1; i <= k; i++ {
		pos := v32Position(h1, h2, i, m)
		val := cells.Get(pos)
		switch {
		case n == 0:
			minVal = val
			out[0] = pos
			n = 1
		case val > minVal:
			minVal = val
			out[0] = pos
			n = 1
		case val == minVal:
			out[n] = pos
			n++
		}
	}
	return n
}

func (v32) MightContain(lo, hi uint64, k, m int, cells CellReader) bool {
	h1, h2 := v32Halves(lo)
	for i := 1; i <= k; i++ {
		if cells.Get(v32Position(h1, h2, i, m)) == 0 {
			return false
		}
	}
	return true
}

func (v32) Count(lo, hi uint64, k, m int, cells CellReader) uint64 {
	h1, h2 := v32Halves(lo)
	var min uint64
	for i := 1; i <= k; i++ {
		v := cells.Get(v32Position(h1, h2, i, m))
		if v == 0 {
			return 0
		}
		if i == 1 || v < min {
			min = v
		}
	}
	return min
}
