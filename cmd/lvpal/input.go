// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// Input source labels, reported in logs.
const (
	sourceArg   = "argument"
	sourceFile  = "file"
	sourceStdin = "stdin"
)

// readInput picks the text by precedence: argument, --file, stdin.
// File and stdin input lose one trailing line break.
func readInput(args []string, file string, stdin io.Reader) (text, source string, err error) {
	switch {
	case len(args) > 0:
		return args[0], sourceArg, nil
	case file != "":
		text, err = readMapped(file)
		if err != nil {
			return "", sourceFile, err
		}

		return trimLineBreak(text), sourceFile, nil
	default:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", sourceStdin, fmt.Errorf("read stdin: %w", err)
		}

		return trimLineBreak(string(b)), sourceStdin, nil
	}
}

// readMapped maps path read-only and copies its contents out before
// unmapping. Empty files are not mapped; zero-length maps are rejected by
// some platforms.
func readMapped(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("input %s is a directory", path)
	}
	if info.Size() == 0 {
		return "", nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return "", fmt.Errorf("map %s: %w", path, err)
	}
	text := string(data)
	if err = data.Unmap(); err != nil {
		return "", fmt.Errorf("unmap %s: %w", path, err)
	}

	return text, nil
}

func trimLineBreak(s string) string {
	s = strings.TrimSuffix(s, "\n")

	return strings.TrimSuffix(s, "\r")
}
