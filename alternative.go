package choice

import (
	"cmp"
	"fmt"

	"github.com/closedset/choice/tuple"
)

// slotOps is the operation table for one alternative's storage slot.
// Dispatching an operation over the active index selects one of these
// tables; a nil entry means the alternative does not support that
// capability, and the schema-level capability is the conjunction over
// all alternatives.
type slotOps struct {
	// construct boxes a raw payload value, panicking when the value is
	// not the alternative's payload type. Nil for unit alternatives.
	construct func(v any) any
	// assign writes a raw payload value into an existing box in place,
	// preserving box identity.
	assign func(box, v any)
	// value unboxes a copy of the payload.
	value func(box any) any
	// str renders the payload for diagnostics.
	str func(box any) string

	eq    func(a, b any) bool
	order func(a, b any) int
	clone func(box any) any

	unit     bool
	typeName string
}

// Alternative declares one member of a closed alternative set: a unique
// tag plus the operation table for its payload slot. Build them with
// Alt, AltComparable, AltOrdered, Alt2, Alt3 or Unit and hand them to
// NewSchema.
type Alternative[K comparable] struct {
	tag K
	ops slotOps
}

// Tag returns the tag the alternative was declared with.
func (a Alternative[K]) Tag() K { return a.tag }

// PayloadType returns a diagnostic name for the payload type, or "unit"
// for payload-free alternatives.
func (a Alternative[K]) PayloadType() string { return a.ops.typeName }

// IsUnit reports whether the alternative is payload-free.
func (a Alternative[K]) IsUnit() bool { return a.ops.unit }

// AltOption adds a capability to a single-payload alternative.
type AltOption[T any] func(*slotOps)

// WithEq supplies payload equality, making the alternative participate
// in Choice.Equal.
func WithEq[T any](eq func(a, b T) bool) AltOption[T] {
	return func(ops *slotOps) {
		ops.eq = func(a, b any) bool {
			return eq(*mustUnbox[T](a), *mustUnbox[T](b))
		}
	}
}

// WithOrder supplies a payload ordering (negative, zero, positive),
// making the alternative participate in Choice.Compare. Ordering
// implies equality.
func WithOrder[T any](order func(a, b T) int) AltOption[T] {
	return func(ops *slotOps) {
		ops.order = func(a, b any) int {
			return order(*mustUnbox[T](a), *mustUnbox[T](b))
		}
		if ops.eq == nil {
			ops.eq = func(a, b any) bool {
				return order(*mustUnbox[T](a), *mustUnbox[T](b)) == 0
			}
		}
	}
}

// WithClone supplies a deep copy for the payload, making the alternative
// participate in Choice.Clone.
func WithClone[T any](clone func(T) T) AltOption[T] {
	return func(ops *slotOps) {
		ops.clone = func(box any) any {
			t := clone(*mustUnbox[T](box))
			return &t
		}
	}
}

// WithString overrides the diagnostic rendering of the payload.
func WithString[T any](str func(T) string) AltOption[T] {
	return func(ops *slotOps) {
		ops.str = func(box any) string { return str(*mustUnbox[T](box)) }
	}
}

// Alt declares a single-payload alternative. On its own it supports
// storage and access only; add capabilities with the With* options or
// use AltComparable/AltOrdered to derive them.
func Alt[T any, K comparable](tag K, opts ...AltOption[T]) Alternative[K] {
	ops := slotOps{
		typeName: fmt.Sprintf("%T", *new(T)),
		construct: func(v any) any {
			t, ok := v.(T)
			if !ok {
				panic(fmt.Sprintf("choice: payload %T does not fit alternative %v (%T)", v, tag, *new(T)))
			}
			return &t
		},
		assign: func(box, v any) {
			t, ok := v.(T)
			if !ok {
				panic(fmt.Sprintf("choice: payload %T does not fit alternative %v (%T)", v, tag, *new(T)))
			}
			*mustUnbox[T](box) = t
		},
		value: func(box any) any { return *mustUnbox[T](box) },
		str:   func(box any) string { return fmt.Sprint(*mustUnbox[T](box)) },
	}
	for _, o := range opts {
		o(&ops)
	}
	return Alternative[K]{tag: tag, ops: ops}
}

// AltComparable declares a single-payload alternative with equality and
// shallow cloning derived from the payload being comparable.
func AltComparable[T comparable, K comparable](tag K, opts ...AltOption[T]) Alternative[K] {
	all := append([]AltOption[T]{
		WithEq[T](func(a, b T) bool { return a == b }),
		WithClone[T](func(t T) T { return t }),
	}, opts...)
	return Alt[T](tag, all...)
}

// AltOrdered declares a single-payload alternative with equality,
// ordering and shallow cloning derived from the payload being ordered.
func AltOrdered[T cmp.Ordered, K comparable](tag K, opts ...AltOption[T]) Alternative[K] {
	all := append([]AltOption[T]{
		WithEq[T](func(a, b T) bool { return a == b }),
		WithOrder[T](cmp.Compare[T]),
		WithClone[T](func(t T) T { return t }),
	}, opts...)
	return Alt[T](tag, all...)
}

// Alt2 declares a two-payload alternative. The payloads are bundled in
// one tuple.T2 slot so the alternative still occupies a single storage
// position.
func Alt2[A, B any, K comparable](tag K, opts ...AltOption[tuple.T2[A, B]]) Alternative[K] {
	return Alt[tuple.T2[A, B]](tag, opts...)
}

// Alt2Comparable is Alt2 with equality and shallow cloning derived from
// both payloads being comparable.
func Alt2Comparable[A, B comparable, K comparable](tag K, opts ...AltOption[tuple.T2[A, B]]) Alternative[K] {
	return AltComparable[tuple.T2[A, B]](tag, opts...)
}

// Alt3 declares a three-payload alternative bundled in one tuple.T3 slot.
func Alt3[A, B, C any, K comparable](tag K, opts ...AltOption[tuple.T3[A, B, C]]) Alternative[K] {
	return Alt[tuple.T3[A, B, C]](tag, opts...)
}

// Unit declares a payload-free alternative. It trivially supports
// equality, ordering and cloning: two values holding the same unit
// alternative are always equal.
func Unit[K comparable](tag K) Alternative[K] {
	return Alternative[K]{
		tag: tag,
		ops: slotOps{
			unit:     true,
			typeName: "unit",
			value:    func(any) any { return nil },
			str:      func(any) string { return "()" },
			eq:       func(any, any) bool { return true },
			order:    func(any, any) int { return 0 },
			clone:    func(any) any { return nil },
		},
	}
}

// mustUnbox asserts that a slot box holds a payload of type T. A
// mismatch means two alternatives with the same tag but different
// payload types were compared across schemas, which is a programmer
// error and fails fast.
func mustUnbox[T any](box any) *T {
	p, ok := box.(*T)
	if !ok {
		panic(fmt.Sprintf("choice: payload %T where %T is required", box, (*T)(nil)))
	}
	return p
}
