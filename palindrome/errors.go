// SPDX-License-Identifier: MIT

// Package palindrome: sentinel error set.
// Scanning itself is total and never returns an error; these sentinels
// exist only for the bounds-checked Table accessor. Callers match them
// with errors.Is, the accessor wraps them with "Table.At(i,j): %w".

package palindrome

import "errors"

var (
	// ErrOutOfRange indicates that a row or column index is outside [0, n-1].
	ErrOutOfRange = errors.New("palindrome: index out of range")

	// ErrLowerTriangle indicates a read below the diagonal (i > j).
	// Those cells are never computed and have no meaning.
	ErrLowerTriangle = errors.New("palindrome: cell below diagonal")
)
