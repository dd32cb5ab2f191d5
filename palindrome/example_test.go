package palindrome_test

import (
	"fmt"

	"github.com/katalvlaran/lvpal/palindrome"
)

// ExampleLongestString finds the first of two equally long palindromes.
//
// Scenario:
//
//	"babad" holds "bab" (begin 0) and "aba" (begin 1); both have length 3.
//	The scan meets "bab" first, so it wins the tie.
//
// Complexity: O(n²) time, O(n²) memory
func ExampleLongestString() {
	in := "babad"
	r := palindrome.LongestString(in)
	fmt.Println(r, string([]rune(in)[r.Begin:r.End()]))
	// Output:
	// [0,3) bab
}

// ExampleLongest_rolling scans a DNA fragment with O(n) memory.
func ExampleLongest_rolling() {
	dna := []byte("TTGCATGCAAC")
	r := palindrome.Longest(dna, palindrome.WithMemoryMode(palindrome.Rolling))
	fmt.Printf("begin=%d length=%d run=%s\n", r.Begin, r.Length, dna[r.Begin:r.End()])
	// Output:
	// begin=7 length=4 run=CAAC
}

// ExampleScan prints the DP table of "abba".
// Row i, column j is 1 when s[i..j] is a palindrome; '.' marks unused cells.
func ExampleScan() {
	t, r := palindrome.Scan([]byte("abba"))
	fmt.Print(t)
	fmt.Println("longest:", r, "count:", t.Count())
	// Output:
	// 1001
	// .110
	// ..10
	// ...1
	// longest: [0,4) count: 6
}

// ExampleWithOnCell traces each decided cell of a short input.
func ExampleWithOnCell() {
	trace := palindrome.WithOnCell(func(c palindrome.Cell) {
		fmt.Printf("(%d,%d) %v best=%v\n", c.I, c.J, c.Palindrome, c.Best)
	})
	palindrome.LongestString("aab", trace)
	// Output:
	// (0,1) true best=[0,2)
	// (1,2) false best=[0,2)
	// (0,2) false best=[0,2)
}
