// Package main provides the entry point for the strsize CLI.
//
// strsize prints how much memory a fixed array of C string pointers
// occupies: the element count, the size of one char * on the build
// target, the total pointer footprint, and each string's length
// including its terminator.
//
// Usage:
//
//	strsize
//	strsize --format markdown
//
// See --help for all available options.
package main

// main is the entry point for strsize.
func main() {
	Execute()
}
