package countfilter

import "math"

// dims computes m (cell count) and k (hash multiplicity) for expected
// insertions n and false-positive target p:
//
//	m := ceil(-n * ln(p) / (ln 2)^2)
//	k := max(1, round((m / n) * ln 2)), required to be in [1, 255]
//
// n == 0 is silently promoted to n := 1. p == 0 is promoted to the smallest
// representable positive float64, matching Guava's BloomFilter.create.
func dims(n uint64, p float64) (m, k int, err error) {
	if p <= 0 || p >= 1 {
		if p != 0 {
			return 0, 0, newError(InvalidDimension, "false positive rate p=%v must be in (0, 1)", p)
		}
		p = math.SmallestNonzeroFloat64
	}
	if n == 0 {
		n = 1
	}

	fn := float64(n)
	fm := math.Ceil(-fn * math.Log(p) / (math.Ln2 * math.Ln2))
	if fm < 1 {
		fm = 1
	}
	m = int(fm)

	fk := math.Round((fm / fn) * math.Ln2)
	k = int(fk)
	if k < 1 {
		k = 1
	}
	if k > 255 {
		return 0, 0, newError(InvalidDimension, "computed hash multiplicity k=%d exceeds 255 (n=%d, p=%v)", k, n, p)
	}
	return m, k, nil
}

func validateBitsPerCell(b int) error {
	if b < 1 || b > 31 {
		return newError(InvalidDimension, "bitsPerCell b=%d must be in [1, 31]", b)
	}
	return nil
}
