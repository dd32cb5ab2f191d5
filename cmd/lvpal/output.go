// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpal/palindrome"
	"github.com/katalvlaran/lvpal/symbols"
)

// ErrUnknownOutput is returned for an --output value other than text, json or yaml.
var ErrUnknownOutput = errors.New("lvpal: unknown output format")

// report is what every output format prints.
// Begin and Length count symbols; ByteStart/ByteEnd index the prepared text.
type report struct {
	Begin     int    `json:"begin" yaml:"begin"`
	Length    int    `json:"length" yaml:"length"`
	Text      string `json:"text" yaml:"text"`
	ByteStart int    `json:"byte_start" yaml:"byte_start"`
	ByteEnd   int    `json:"byte_end" yaml:"byte_end"`
	Symbols   int    `json:"symbols" yaml:"symbols"`
	Mode      string `json:"mode" yaml:"mode"`
}

func newReport(seq symbols.Sequence, r palindrome.Result, mode palindrome.MemoryMode) (report, error) {
	from, to, err := seq.ByteRange(r.Begin, r.Length)
	if err != nil {
		return report{}, err
	}

	return report{
		Begin:     r.Begin,
		Length:    r.Length,
		Text:      seq.Source[from:to],
		ByteStart: from,
		ByteEnd:   to,
		Symbols:   seq.Len(),
		Mode:      mode.String(),
	}, nil
}

type renderer func(io.Writer, report) error

func rendererFor(format string) (renderer, error) {
	switch format {
	case "text", "":
		return renderText, nil
	case "json":
		return renderJSON, nil
	case "yaml":
		return renderYAML, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOutput, format)
	}
}

func renderText(w io.Writer, r report) error {
	_, err := fmt.Fprintf(w, "begin=%d length=%d text=%q\n", r.Begin, r.Length, r.Text)

	return err
}

func renderJSON(w io.Writer, r report) error {
	return json.NewEncoder(w).Encode(r)
}

func renderYAML(w io.Writer, r report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}

	return enc.Close()
}
