// Package palindrome finds the longest palindromic run of a sequence
// using interval dynamic programming.
//
// 🚀 What is it?
//
//	A palindrome reads the same forwards and backwards. Given any sequence
//	of comparable symbols (bytes, runes, strings, ints...), the scanner
//	returns where its longest contiguous palindrome starts and how long it
//	is. Typical uses:
//	  • Text puzzles & teaching material
//	  • DNA/RNA hairpin and inverted-repeat detection
//	  • Symmetry checks on event or token streams
//
// ✨ Key features:
//   - generic over any comparable symbol type
//   - full-table mode: O(n²) memory, table available via Scan
//   - rolling mode: O(n) memory (WithMemoryMode(Rolling))
//   - deterministic tie-break: the smallest Begin among maximal runs
//   - optional per-cell observer (WithOnCell) for tracing the DP table
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvpal/palindrome"
//
//	r := palindrome.LongestString("babad")
//	// r.Begin == 0, r.Length == 3 ("bab")
//
//	t, r := palindrome.Scan([]byte("abba"))
//	ok, _ := t.At(0, 3) // true
//
// Boundary cases:
//
//   - Empty input returns Result{Begin: 0, Length: 0}; Empty() reports it.
//   - Any non-empty input has Length >= 1: a single symbol is a palindrome.
//
// Performance:
//
//   - Time:   O(n²)
//   - Memory: O(n²) (FullTable) or O(n) (Rolling)
package palindrome
