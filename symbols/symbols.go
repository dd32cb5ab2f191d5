// SPDX-License-Identifier: MIT

package symbols

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Sequence is prepared text: Keys[k] is the comparison key of the k-th kept
// rune, which occupies Source[starts[k]:ends[k]].
type Sequence struct {
	Source string
	Keys   []string

	starts []int
	ends   []int
}

// Len returns the number of symbols.
func (s Sequence) Len() int { return len(s.Keys) }

// ByteRange returns the byte offsets [from, to) in Source covered by the
// symbols begin..begin+length-1. A zero length yields an empty range at 0.
func (s Sequence) ByteRange(begin, length int) (from, to int, err error) {
	if length == 0 && begin >= 0 && begin <= len(s.Keys) {
		return 0, 0, nil
	}
	if begin < 0 || length < 0 || begin+length > len(s.Keys) {
		return 0, 0, fmt.Errorf("ByteRange(%d,%d) over %d symbols: %w", begin, length, len(s.Keys), ErrOutOfRange)
	}

	return s.starts[begin], s.ends[begin+length-1], nil
}

// Span returns the slice of Source covered by the symbols
// begin..begin+length-1, including any dropped runes between them.
func (s Sequence) Span(begin, length int) (string, error) {
	from, to, err := s.ByteRange(begin, length)
	if err != nil {
		return "", err
	}

	return s.Source[from:to], nil
}

// Option configures Prepare.
type Option func(*Options)

// Options holds preparation parameters.
type Options struct {
	// Normalize enables Form on the whole text before splitting.
	Normalize bool
	Form      norm.Form

	// CaseFold compares runes by Unicode case folding.
	CaseFold bool

	// AlphanumericOnly drops runes that are neither letters nor numbers.
	AlphanumericOnly bool
}

// DefaultOptions returns Options that keep every rune verbatim.
func DefaultOptions() Options {
	return Options{}
}

// WithNormalization applies form to the text before splitting.
func WithNormalization(form norm.Form) Option {
	return func(o *Options) {
		o.Normalize = true
		o.Form = form
	}
}

// WithCaseFold compares runes case-insensitively.
func WithCaseFold() Option {
	return func(o *Options) { o.CaseFold = true }
}

// WithAlphanumericOnly skips punctuation, spaces, marks and symbols.
func WithAlphanumericOnly() Option {
	return func(o *Options) { o.AlphanumericOnly = true }
}

// ParseNormalization maps a flag value onto an Option.
// "none" (or "") returns an Option that leaves the text untouched.
func ParseNormalization(name string) (Option, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return func(*Options) {}, nil
	case "nfc":
		return WithNormalization(norm.NFC), nil
	case "nfd":
		return WithNormalization(norm.NFD), nil
	case "nfkc":
		return WithNormalization(norm.NFKC), nil
	case "nfkd":
		return WithNormalization(norm.NFKD), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownForm, name)
	}
}

// Prepare splits text into symbols according to opts.
//
// Implementation:
//   - Stage 1: normalize the whole text if requested; the result is Source.
//   - Stage 2: walk Source rune by rune, skipping non-alphanumerics if requested.
//   - Stage 3: key each kept rune by itself or by its case folding.
//
// Complexity:
//   - Time O(len(text)), Space O(len(text)).
func Prepare(text string, opts ...Option) Sequence {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	src := text
	if o.Normalize {
		src = o.Form.String(text)
	}

	var fold cases.Caser
	if o.CaseFold {
		fold = cases.Fold()
	}

	seq := Sequence{Source: src}
	for off := 0; off < len(src); {
		r, width := utf8.DecodeRuneInString(src[off:])
		start := off
		off += width

		if o.AlphanumericOnly && !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			continue
		}

		key := string(r)
		if o.CaseFold {
			key = fold.String(key)
		}
		seq.Keys = append(seq.Keys, key)
		seq.starts = append(seq.starts, start)
		seq.ends = append(seq.ends, off)
	}

	return seq
}
