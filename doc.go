// Package lvpal finds palindromes in sequences: the longest palindromic
// run of text, DNA, tokens or any comparable symbols, computed with
// interval dynamic programming.
//
// 🚀 What is lvpal?
//
//	A small, deterministic, dependency-light toolkit:
//		• palindrome/: the interval-DP scanner (generic, O(n²) time,
//		  full-table or rolling O(n) memory, per-cell observer hook)
//		• symbols/   : text preparation: Unicode normalization, case
//		  folding, punctuation stripping, and mapping results back to text
//		• cmd/lvpal  : command-line wrapper (argument, file or stdin input;
//		  text, JSON or YAML output; LVPAL_* environment overrides)
//
// ✨ Guarantees
//
//   - Total: every finite input, including the empty one, has a result.
//   - Deterministic: among equally long palindromes the leftmost wins.
//   - Pure: no global state; concurrent calls never share memory.
//
// Quick example:
//
//	r := palindrome.LongestString("babad") // {Begin: 0, Length: 3}
//
//	go install github.com/katalvlaran/lvpal/cmd/lvpal@latest
package lvpal
