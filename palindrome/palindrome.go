// SPDX-License-Identifier: MIT

package palindrome

// Longest finds the longest palindromic run via interval dynamic programming.
//
// Description:
//
//	Finds the longest contiguous run of s that reads the same forwards and
//	backwards. Ties between runs of equal length resolve to the smallest
//	Begin, which is the first one met in scan order.
//
// Algorithm Outline:
//  1. n = len(s). If n == 0 return Result{} (Length 0, no valid run).
//  2. Seed every (i, i) as true and best = {Begin: 0, Length: 1}.
//  3. For L = 2..n (outer, ascending):
//     For i = 0..n-L (inner, ascending), j = i+L-1:
//     s[i] != s[j]  → (i, j) = false
//     L <= 3        → (i, j) = true
//     otherwise     → (i, j) = (i+1, j-1)
//     if (i, j) && L > best.Length → best = {i, L}
//  4. Return best.
//
// (i+1, j-1) has length L-2 and was filled by an earlier outer pass, so no
// cell ever reads a value that has not been written. The strict ">" keeps
// the first run found at each length.
//
// Memory Modes:
//   - FullTable: n×n table. Memory: O(n²).
//   - Rolling  : two parity rows. Memory: O(n).
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(n²) (FullTable) or O(n) (Rolling)
//
// Longest never fails and never allocates anything shared; concurrent calls
// on distinct or identical inputs are safe.
//
// Example:
//
//	r := palindrome.Longest([]byte("cbbd"))
//	// r == Result{Begin: 1, Length: 2}
func Longest[S ~[]T, T comparable](s S, opts ...Option) Result {
	o := gatherOptions(opts)

	var st store
	if o.MemoryMode == Rolling {
		st = newRolling(len(s))
	} else {
		st = newTable(len(s))
	}

	return scan(s, st, o.OnCell)
}

// LongestString runs Longest over the runes of s.
// Begin and Length of the result count runes, not bytes.
func LongestString(s string, opts ...Option) Result {
	return Longest([]rune(s), opts...)
}

// Scan runs the scanner in FullTable mode regardless of opts.MemoryMode
// and returns the filled table together with the result.
// For an empty s the table has Size 0.
func Scan[S ~[]T, T comparable](s S, opts ...Option) (*Table, Result) {
	o := gatherOptions(opts)
	t := newTable(len(s))

	return t, scan(s, t, o.OnCell)
}

// store is the cell storage the scan loop writes through.
type store interface {
	get(i, j int) bool
	set(i, j int, v bool)
}

// scan fills st in (L asc, i asc) order and tracks the best run.
func scan[S ~[]T, T comparable](s S, st store, onCell func(Cell)) Result {
	n := len(s)
	if n == 0 {
		return Result{}
	}

	best := Result{Begin: 0, Length: 1}
	for L := 2; L <= n; L++ {
		for i := 0; i+L <= n; i++ {
			j := i + L - 1

			ok := false
			if s[i] == s[j] {
				ok = L <= 3 || st.get(i+1, j-1)
			}
			st.set(i, j, ok)

			if ok && L > best.Length {
				best = Result{Begin: i, Length: L}
			}
			if onCell != nil {
				onCell(Cell{I: i, J: j, Palindrome: ok, Best: best})
			}
		}
	}

	return best
}

// rolling keeps one row per length parity. Cell (i, j) of length L lives
// at rows[L%2][i]; its inner cell (i+1, j-1) sits at rows[L%2][i+1] and is
// still holding the L-2 value because i ascends.
type rolling struct {
	rows [2][]bool
}

func newRolling(n int) *rolling {
	return &rolling{rows: [2][]bool{make([]bool, n), make([]bool, n)}}
}

func (r *rolling) get(i, j int) bool { return r.rows[(j-i+1)%2][i] }

func (r *rolling) set(i, j int, v bool) { r.rows[(j-i+1)%2][i] = v }
