// SPDX-License-Identifier: MIT

// Package palindrome - Table storage (row-major, upper triangle) & safe accessors.
//
// Purpose:
//   - Hold the interval-DP state: cell (i, j) is true iff s[i..j] is a palindrome.
//   - Use one flat buffer with the explicit index formula i*n + j.
//   - Public reads are bounds-checked and return sentinels instead of panicking;
//     the scanner itself uses the unchecked get/set helpers in its hot loop.
//
// Complexity quicksheet:
//   - newTable: O(n²) zero-init; At/get/set: O(1); Count: O(n²); String: O(n²).

package palindrome

import (
	"fmt"
	"strings"
)

const ctxAt = "At" // method tag used in error wrappers

// Formatting literals for String.
const (
	_fmtTrue  = '1'
	_fmtFalse = '0'
	_fmtBelow = '.'
)

// tableErrorf wraps a sentinel with the accessor name and coordinates.
func tableErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, i, j, err)
}

// Table is the n×n boolean DP table of one scan.
//   - n is the sequence length (>= 0).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//   - only cells with i <= j carry meaning; the lower triangle stays false.
type Table struct {
	n    int
	data []bool
}

var _ fmt.Stringer = (*Table)(nil)

// newTable allocates an n×n table with the diagonal set to true.
// Every single symbol is a palindrome, so (i, i) is seeded up front and
// the scan never depends on an unwritten length-1 cell.
func newTable(n int) *Table {
	t := &Table{n: n, data: make([]bool, n*n)}
	for i := 0; i < n; i++ {
		t.data[i*n+i] = true
	}

	return t
}

// Size returns n, the length of the scanned sequence.
func (t *Table) Size() int { return t.n }

// At reports whether s[i..j] (inclusive) is a palindrome.
//
// Errors:
//   - ErrOutOfRange    if i or j is outside [0, n-1].
//   - ErrLowerTriangle if i > j.
func (t *Table) At(i, j int) (bool, error) {
	if i < 0 || j < 0 || i >= t.n || j >= t.n {
		return false, tableErrorf(ctxAt, i, j, ErrOutOfRange)
	}
	if i > j {
		return false, tableErrorf(ctxAt, i, j, ErrLowerTriangle)
	}

	return t.get(i, j), nil
}

// Count returns the number of palindromic substrings, counted by position.
// Single symbols are included, so Count() >= Size().
func (t *Table) Count() int {
	var c int
	for i := 0; i < t.n; i++ {
		row := t.data[i*t.n : (i+1)*t.n]
		for j := i; j < t.n; j++ {
			if row[j] {
				c++
			}
		}
	}

	return c
}

// String renders the table one row per line: '1' palindrome, '0' not,
// '.' below the diagonal.
func (t *Table) String() string {
	var sb strings.Builder
	sb.Grow(t.n * (t.n + 1))
	for i := 0; i < t.n; i++ {
		for j := 0; j < t.n; j++ {
			switch {
			case j < i:
				sb.WriteByte(_fmtBelow)
			case t.get(i, j):
				sb.WriteByte(_fmtTrue)
			default:
				sb.WriteByte(_fmtFalse)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (t *Table) get(i, j int) bool { return t.data[i*t.n+j] }

func (t *Table) set(i, j int, v bool) { t.data[i*t.n+j] = v }
