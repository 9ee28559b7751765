package countfilter_test

import (
	"fmt"
	"testing"

	cf "github.com/shaia/countfilter"
	"github.com/shaia/countfilter/internal/bitblock"
	"github.com/shaia/countfilter/internal/hashstrategy"

	willf_bitset "github.com/willf/bitset"
	willf_bloom "github.com/willf/bloom"
)

// --- Configuration for comparison benchmarks ---
var comparisonBenchmarks = []struct {
	name     string
	elements uint64
	fpr      float64
	ops      int
}{
	{"Size_10K_FPR_1%", 10_000, 0.01, 1000},
	{"Size_100K_FPR_1%", 100_000, 0.01, 1000},
	{"Size_1M_FPR_1%", 1_000_000, 0.01, 1000},
}

// BenchmarkComparisonInsert compares CountingFilter.Insert against the
// willf/bloom competitor's Add, used here as a baseline.
func BenchmarkComparisonInsert(b *testing.B) {
	for _, cfg := range comparisonBenchmarks {
		b.Run(fmt.Sprintf("%s/countfilter", cfg.name), func(b *testing.B) {
			f, err := cf.NewCountingFilter[uint64](cfg.elements, cfg.fpr, 4, hashstrategy.OrdinalV64, cf.Uint64Funnel{}, nil)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for j := 0; j < cfg.ops; j++ {
					f.Insert(uint64(i*cfg.ops + j))
				}
			}
		})

		b.Run(fmt.Sprintf("%s/willf_bloom", cfg.name), func(b *testing.B) {
			m, k := willf_bloom.EstimateParameters(uint(cfg.elements), cfg.fpr)
			bf := willf_bloom.New(m, k)
			data := make([]byte, 8)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for j := 0; j < cfg.ops; j++ {
					val := uint64(i*cfg.ops + j)
					for shift := 0; shift < 8; shift++ {
						data[shift] = byte(val >> (8 * shift))
					}
					bf.Add(data)
				}
			}
		})
	}
}

// BenchmarkComparisonBitSetClear compares BitSet.ClearingIterator's
// drain-while-scanning cost against a willf/bitset NextSet scan that clears
// each set bit as it finds it — the same "transaction cache" role the spectral filter's
// set-batch flush relies on.
func BenchmarkComparisonBitSetClear(b *testing.B) {
	const n = 1_000_000
	const inserted = 10_000

	b.Run("countfilter", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			bs := bitblock.NewBitSet(n)
			for j := 0; j < inserted; j++ {
				bs.Set((j * 97) % n)
			}
			it := bs.ClearingIterator()
			for {
				if _, ok := it.Next(); !ok {
					break
				}
			}
		}
	})

	b.Run("willf_bitset", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			bs := willf_bitset.New(n)
			for j := 0; j < inserted; j++ {
				bs.Set(uint((j * 97) % n))
			}
			for e, ok := bs.NextSet(0); ok; e, ok = bs.NextSet(e + 1) {
				bs.Clear(e)
			}
		}
	})
}
