// Package option provides an optional wrapper over choice values that
// costs no extra storage: absence is encoded in the Choice's own
// reserved never-value discriminant code, so an Option is exactly the
// size of the Choice it wraps.
package option

import "github.com/closedset/choice"

// Option holds a Choice or nothing. The zero Option is None.
type Option[K comparable] struct {
	c choice.Choice[K]
}

// Some wraps a constructed Choice. It panics when c is vacant or
// moved-from, so an Option never smuggles an invalid value past the
// fail-fast checks.
func Some[K comparable](c choice.Choice[K]) Option[K] {
	c.Which() // fail fast on vacant or moved-from input
	return Option[K]{c: c}
}

// None returns the absent Option.
func None[K comparable]() Option[K] {
	return Option[K]{}
}

// IsSome reports whether the Option holds a value.
func (o Option[K]) IsSome() bool { return !o.c.IsVacant() }

// IsNone reports whether the Option is absent.
func (o Option[K]) IsNone() bool { return o.c.IsVacant() }

// Unwrap returns the held Choice, panicking when the Option is None.
func (o Option[K]) Unwrap() choice.Choice[K] {
	if o.IsNone() {
		panic("option: Unwrap of None")
	}
	return o.c
}

// UnwrapOr returns the held Choice, or def when the Option is None.
func (o Option[K]) UnwrapOr(def choice.Choice[K]) choice.Choice[K] {
	if o.IsNone() {
		return def
	}
	return o.c
}

// Take returns the current Option and leaves None behind.
func (o *Option[K]) Take() Option[K] {
	out := *o
	*o = None[K]()
	return out
}

// Clone returns an independent copy. It requires the wrapped schema to
// support cloning when the Option is Some.
func (o Option[K]) Clone() Option[K] {
	if o.IsNone() {
		return o
	}
	return Option[K]{c: o.c.Clone()}
}
