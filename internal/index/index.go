// Package index selects the discriminant width for a closed alternative
// set. The chosen width must cover every alternative index plus two
// reserved codes: the all-ones never-value niche and the all-ones-minus-one
// moved-from marker. Keeping the discriminant at the smallest usable
// width is what lets an enclosing optional wrapper reuse it instead of
// adding its own presence byte.
package index

import "fmt"

// Supported discriminant widths, in bytes.
const (
	Width1 = 1
	Width2 = 2
	Width4 = 4
	Width8 = 8
)

// Size returns the smallest supported width, in bytes, whose value range
// holds n alternative indices plus the two reserved codes. It panics when
// n is not positive; a count that overflows the widest width cannot be
// expressed as a Go slice length, so the 8-byte case never fails.
func Size(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("index: alternative count %d must be positive", n))
	}
	switch {
	case uint64(n) <= 1<<8-2:
		return Width1
	case uint64(n) <= 1<<16-2:
		return Width2
	case uint64(n) <= 1<<32-2:
		return Width4
	}
	return Width8
}

// Never returns the never-value code for a width: the all-ones bit
// pattern, reserved so an outer optional type can mark "no value"
// without extra storage.
func Never(size int) uint64 {
	switch size {
	case Width1:
		return 1<<8 - 1
	case Width2:
		return 1<<16 - 1
	case Width4:
		return 1<<32 - 1
	case Width8:
		return ^uint64(0)
	}
	panic(fmt.Sprintf("index: unsupported width %d", size))
}

// Moved returns the moved-from code for a width: one below the
// never-value code. A discriminant set to this value makes every later
// access fail fast instead of reading a dead slot.
func Moved(size int) uint64 {
	return Never(size) - 1
}

// Max returns the largest usable alternative index for a width, which is
// one below the moved-from code.
func Max(size int) uint64 {
	return Moved(size) - 1
}
