package rabinkarp_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvsearch/rabinkarp"
)

// benchmarkScan searches n symbols of filler for a pattern at the end.
func benchmarkScan(b *testing.B, n int, opts ...rabinkarp.Option) {
	text := []byte(strings.Repeat("lorem ipsum ", n/12) + "dolor sit")
	pattern := []byte("dolor sit")

	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := rabinkarp.Scan(text, pattern, opts...)
		if err != nil || res.Index < 0 {
			b.Fatalf("scan failed: %v %+v", err, res)
		}
	}
}

// BenchmarkScan_DefaultModulus uses modulus 101 and pays for collisions.
func BenchmarkScan_DefaultModulus(b *testing.B) { benchmarkScan(b, 1<<16) }

// BenchmarkScan_LargeModulus uses a large prime and rarely verifies.
func BenchmarkScan_LargeModulus(b *testing.B) {
	benchmarkScan(b, 1<<16, rabinkarp.WithModulus(2_147_483_629))
}
