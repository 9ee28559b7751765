package countfilter

import "github.com/spaolacci/murmur3"

// Murmur128 is the default HashPrimitive: spaolacci/murmur3's 128-bit
// MurmurHash3, the "widely used 128-bit variant of a fast murmur-family
// hash" this package's strategies were written against. murmur3.Hash128
// already satisfies HashPrimitive: Write from hash.Hash, Sum128, and Reset.
func Murmur128() NewHashPrimitive {
	return func() HashPrimitive { return murmur3.New128() }
}
