// SPDX-License-Identifier: MIT

// Package palindrome defines result records, observer payloads and
// functional options for the longest-palindrome scanner.
package palindrome

import "fmt"

// Result identifies one longest palindromic run of a sequence.
//
//   - Begin : index of the first symbol of the run.
//   - Length: number of symbols in the run; 0 only for an empty input.
//
// s[Begin : Begin+Length] reads the same forwards and backwards.
type Result struct {
	Begin  int
	Length int
}

// End returns the exclusive end index Begin+Length.
func (r Result) End() int { return r.Begin + r.Length }

// Empty reports whether r is the sentinel returned for an empty input.
func (r Result) Empty() bool { return r.Length == 0 }

// String renders r as "[begin,end)".
func (r Result) String() string {
	return fmt.Sprintf("[%d,%d)", r.Begin, r.End())
}

// Cell is passed to the OnCell hook after the scanner decided (I, J).
// Best is the running result after the update for this cell was applied.
type Cell struct {
	I, J       int
	Palindrome bool
	Best       Result
}

// Length returns the span length J-I+1 of the cell.
func (c Cell) Length() int { return c.J - c.I + 1 }

// MemoryMode controls how the scanner stores its DP table.
//
//   - FullTable: keep the whole n×n table. Memory: O(n²).
//     Required by Scan, which hands the table back to the caller.
//
//   - Rolling: keep two rows of n cells, one per length parity.
//     The row for length L overwrites the row for L-2 in place.
//     Memory: O(n).
type MemoryMode int

const (
	// FullTable stores every (i, j) cell.
	FullTable MemoryMode = iota

	// Rolling stores two parity rows only.
	Rolling
)

// String returns the flag spelling of m.
func (m MemoryMode) String() string {
	switch m {
	case FullTable:
		return "full"
	case Rolling:
		return "rolling"
	default:
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}
}

// ParseMemoryMode maps "full" or "rolling" onto a MemoryMode.
func ParseMemoryMode(s string) (MemoryMode, error) {
	switch s {
	case "full", "":
		return FullTable, nil
	case "rolling":
		return Rolling, nil
	default:
		return FullTable, fmt.Errorf("palindrome: unknown memory mode %q", s)
	}
}

// Option configures a scan via functional arguments.
type Option func(*Options)

// Options holds scanner parameters.
type Options struct {
	// MemoryMode selects table storage; see FullTable and Rolling.
	MemoryMode MemoryMode

	// OnCell, if non-nil, is invoked after every (i, j) cell with i < j
	// is decided, in scan order. It observes only; it cannot alter the scan.
	OnCell func(Cell)
}

// DefaultOptions returns Options with:
//   - FullTable storage
//   - no OnCell hook
func DefaultOptions() Options {
	return Options{
		MemoryMode: FullTable,
		OnCell:     nil,
	}
}

// WithMemoryMode selects the table storage.
// Panics on a mode other than FullTable or Rolling (programmer error).
func WithMemoryMode(m MemoryMode) Option {
	if m != FullTable && m != Rolling {
		panic(fmt.Sprintf("palindrome: WithMemoryMode(%d): unknown mode", int(m)))
	}

	return func(o *Options) {
		o.MemoryMode = m
	}
}

// WithOnCell registers an observer called after each cell is decided.
func WithOnCell(fn func(Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCell = fn
		}
	}
}

// gatherOptions applies opts over DefaultOptions.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
