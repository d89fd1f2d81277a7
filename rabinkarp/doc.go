// Package rabinkarp implements Rabin–Karp substring search with a rolling
// polynomial hash.
//
// 🚀 How it works
//
//	H(s) = Σ s[k] · base^(M-1-k)  (mod modulus)
//
//	The pattern is hashed once. The first text window is hashed directly;
//	every following window is derived in O(1) by removing the outgoing
//	symbol, shifting by base and adding the incoming symbol. Equal hashes
//	are only a hint: each candidate window is compared symbol by symbol,
//	so a hash collision is counted and skipped, never reported as a match.
//
// ✨ Key features:
//   - Defaults base = 256, modulus = 101. The small modulus makes collisions
//     frequent on purpose; pass WithModulus for real workloads.
//   - Fixed-width arithmetic: every operand is reduced modulo the modulus
//     before multiplication, so uint64 never overflows.
//   - Scan reports windows inspected, hash hits and collisions.
//
// ⚙️ Usage:
//
//	idx := rabinkarp.IndexString("hello world", "world") // 6
//
//	res, err := rabinkarp.Scan(text, pattern, rabinkarp.WithModulus(1_000_000_007))
//	if err != nil {
//	  // ErrOptionViolation
//	}
//	fmt.Println(res.Index, res.Collisions)
//
// Performance:
//
//   - Time:   O(N + M) expected, O(N·M) when every window collides
//   - Memory: O(1) beyond the inputs
package rabinkarp
