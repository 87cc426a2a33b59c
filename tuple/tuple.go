// Package tuple provides small fixed-arity value bundles. The choice
// package stores a multi-payload alternative in a single tuple slot so
// that every alternative occupies exactly one storage position.
package tuple

// T2 bundles two values.
type T2[A, B any] struct {
	F0 A
	F1 B
}

// T3 bundles three values.
type T3[A, B, C any] struct {
	F0 A
	F1 B
	F2 C
}

// T4 bundles four values.
type T4[A, B, C, D any] struct {
	F0 A
	F1 B
	F2 C
	F3 D
}

// With2 constructs a T2 from its elements.
func With2[A, B any](a A, b B) T2[A, B] {
	return T2[A, B]{F0: a, F1: b}
}

// With3 constructs a T3 from its elements.
func With3[A, B, C any](a A, b B, c C) T3[A, B, C] {
	return T3[A, B, C]{F0: a, F1: b, F2: c}
}

// With4 constructs a T4 from its elements.
func With4[A, B, C, D any](a A, b B, c C, d D) T4[A, B, C, D] {
	return T4[A, B, C, D]{F0: a, F1: b, F2: c, F3: d}
}
