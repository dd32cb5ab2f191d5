// SPDX-License-Identifier: MIT

// Command lvpal prints the longest palindromic substring of a text read
// from an argument, a file or stdin.
//
//	lvpal babad                       # begin=0 length=3 text="bab"
//	lvpal --fold --alnum "Never odd or even"
//	lvpal --file genome.txt --mode rolling --output json
//	LVPAL_MODE=rolling lvpal --trace abba
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
