// SPDX-License-Identifier: MIT

package symbols

import "errors"

var (
	// ErrOutOfRange is returned when a span does not fit in the sequence.
	ErrOutOfRange = errors.New("symbols: span out of range")

	// ErrUnknownForm is returned for a normalization name other than
	// none, nfc, nfd, nfkc or nfkd.
	ErrUnknownForm = errors.New("symbols: unknown normalization form")
)
