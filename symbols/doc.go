// Package symbols turns user text into a sequence of comparable keys for
// the palindrome scanner and maps scan results back onto the text.
//
// What
//
//   - One key per kept rune of the (optionally normalized) source text.
//   - Keys are strings so a folded rune that expands ("ß" → "ss") still
//     occupies exactly one position.
//   - Byte offsets of every kept rune are recorded, so a (begin, length)
//     result over keys maps back to a slice of Source.
//
// Options
//
//   - WithNormalization(form): apply a Unicode normal form (NFC, NFD, NFKC,
//     NFKD) to the whole text before splitting.
//   - WithCaseFold():          compare runes by their Unicode case folding.
//   - WithAlphanumericOnly():  drop runes that are neither letters nor
//     numbers; combining marks are dropped as well, so NFD + this option
//     compares base letters only.
//
// Usage
//
//	seq := symbols.Prepare("A man, a plan, a canal: Panama!",
//		symbols.WithCaseFold(), symbols.WithAlphanumericOnly())
//	r := palindrome.Longest(seq.Keys)
//	text, _ := seq.Span(r.Begin, r.Length)
//	// text == "A man, a plan, a canal: Panama"
//
// Invalid UTF-8 bytes are kept as single-byte symbols (key U+FFFD) unless
// WithAlphanumericOnly drops them.
package symbols
