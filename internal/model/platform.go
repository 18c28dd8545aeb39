package model

import "unsafe"

// Platform constants used to size a StringTable.
const (
	// PointerSize is the size in bytes of one char * on the build target.
	// It is 8 on 64-bit targets and 4 on 32-bit targets. It never depends
	// on the strings being measured.
	PointerSize = int(unsafe.Sizeof((*byte)(nil)))

	// TerminatorSize is the NUL byte a C string stores after its text.
	// Lengths in a Report include it.
	TerminatorSize = 1
)

// PointerBits returns the pointer width of the build target in bits.
func PointerBits() int {
	return PointerSize * 8
}
