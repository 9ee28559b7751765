// Package bitops provides small word-bulk helpers used by BitSet. It stands in for an amd64/arm64 SIMD backend:
// CellArray's cells straddle word boundaries and cannot use whole word
// vector ops, so only the plain bitwise-word operations (BitSet's
// union/intersect/popcount) have a home here, and they are expressed in
// portable Go rather than unverified assembly.
package bitops

import "math/bits"

// PopCount sums the population count of every word.
func PopCount(words []uint64) int {
	n := 0
	for _, w := range words {
		n += bits.OnesCount64(w)
	}
	return n
}

// OrWords ORs src into dst in place. Panics if the lengths differ.
func OrWords(dst, src []uint64) {
	if len(dst) != len(src) {
		panic("bitops: OrWords requires equal lengths")
	}
	for i := range dst {
		dst[i] |= src[i]
	}
}

// AndWords ANDs src into dst in place. Panics if the lengths differ.
func AndWords(dst, src []uint64) {
	if len(dst) != len(src) {
		panic("bitops: AndWords requires equal lengths")
	}
	for i := range dst {
		dst[i] &= src[i]
	}
}
