// Package countfilter implements a family of approximate set-membership and
// approximate multiplicity structures — a saturating counting filter and a
// spectral (minimum-increment) filter — over a shared bit-packed cell array
// and a transient deduplicating bit set.
//
// Elements are serialized to bytes by a caller-supplied Funnel and hashed
// with an injected 128-bit HashPrimitive (spaolacci/murmur3's 128-bit
// MurmurHash3 by default); a HashStrategy projects the resulting hash to k
// cell positions. None of insert, insertBatch, flush, clear, or union is
// safe for concurrent use on the same filter.
package countfilter

import "io"

// Sink is the byte sink a Funnel writes an element's serialization into.
type Sink interface {
	io.Writer
}

// Funnel serializes an element of type T into a Sink for hashing. Funnel
// identity participates in filter equality and union-compatibility checks,
// so implementations should be modeled as singletons or enumerated
// constants rather than ad hoc closures.
type Funnel[T any] interface {
	Funnel(element T, sink Sink)
	// Identity distinguishes this funnel from others of the same element
	// type for compatibility/equality purposes.
	Identity() string
}

// HashPrimitive is the injected 128-bit hash: write a byte stream into it,
// then read back the 16-byte digest as two uint64 halves.
type HashPrimitive interface {
	Sink
	// Sum128 returns the low and high 64-bit halves of the 128-bit digest.
	Sum128() (lo, hi uint64)
	// Reset returns the primitive to its zero state for reuse.
	Reset()
}

// NewHashPrimitive constructs a fresh HashPrimitive instance.
type NewHashPrimitive func() HashPrimitive

func hash128[T any](element T, funnel Funnel[T], newPrimitive NewHashPrimitive) (lo, hi uint64) {
	h := newPrimitive()
	funnel.Funnel(element, h)
	return h.Sum128()
}
