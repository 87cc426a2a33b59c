// Package choice implements a closed-set tagged union: a value holding
// exactly one of a declared set of alternatives, selected by tag. The
// discriminant reserves two out-of-band codes — a never-value niche that
// lets an optional wrapper encode "no value" without extra storage, and
// a moved-from marker that turns use-after-move into a fail-fast panic.
//
// The alternative set is declared once as a Schema, typically in a
// package var:
//
//	var shapes = choice.NewSchema(
//		choice.AltOrdered[float64]("circle"),
//		choice.Alt2Comparable[float64, float64]("rect"),
//		choice.Unit[string]("empty"),
//	)
//
// Values are built with With or the deferred Of marker, inspected with
// Which, and accessed with the typed free functions Get, Mut, Set and
// Into. Every access from an invalid state or with a wrong tag panics;
// there is no recoverable error path for programmer errors.
package choice

import "fmt"

// Choice holds one live alternative of its schema, or one of the two
// reserved states: vacant (the never-value niche) and moved-from.
//
// Assigning a Choice shares the payload slot between the copies; use
// Clone for an independent copy and Take for an explicit move that
// invalidates the source.
type Choice[K comparable] struct {
	schema *Schema[K]
	index  uint64
	slot   any
}

// With constructs a Choice holding the alternative declared for tag,
// with v as its payload. It panics when the tag is not part of the
// schema, when the alternative is payload-free, or when v is not the
// declared payload type.
func With[T any, K comparable](s *Schema[K], tag K, v T) Choice[K] {
	i := s.indexOf(tag)
	ops := &s.alts[i].ops
	if ops.unit {
		panic(fmt.Sprintf("choice: alternative %v takes no payload", tag))
	}
	return Choice[K]{schema: s, index: uint64(i), slot: ops.construct(v)}
}

// WithUnit constructs a Choice holding the payload-free alternative
// declared for tag.
func WithUnit[K comparable](s *Schema[K], tag K) Choice[K] {
	i := s.indexOf(tag)
	if !s.alts[i].ops.unit {
		panic(fmt.Sprintf("choice: alternative %v requires a payload", tag))
	}
	return Choice[K]{schema: s, index: uint64(i)}
}

// FromValue constructs a Choice from an untyped payload value. It is the
// dynamic form of With used by codecs that reconstruct values from the
// wire; the payload must still match the declared type or FromValue
// panics.
func FromValue[K comparable](s *Schema[K], tag K, v any) Choice[K] {
	i := s.indexOf(tag)
	ops := &s.alts[i].ops
	if ops.unit {
		if v != nil {
			panic(fmt.Sprintf("choice: alternative %v takes no payload", tag))
		}
		return Choice[K]{schema: s, index: uint64(i)}
	}
	return Choice[K]{schema: s, index: uint64(i), slot: ops.construct(v)}
}

// Vacant returns the never-value state for a schema. It exists for
// optional-style wrappers that reuse the reserved discriminant code
// instead of carrying their own presence flag; every accessor except
// IsVacant, Clone and String panics on a vacant Choice.
func Vacant[K comparable](s *Schema[K]) Choice[K] {
	return Choice[K]{schema: s, index: s.never}
}

// IsVacant reports whether the Choice is in the never-value state. The
// zero Choice is vacant.
func (c Choice[K]) IsVacant() bool {
	return c.schema == nil || c.index == c.schema.never
}

// IsMoved reports whether the Choice has been moved from.
func (c Choice[K]) IsMoved() bool {
	return c.schema != nil && c.index == c.schema.moved
}

// checkLive panics unless the Choice holds a constructed alternative.
func (c *Choice[K]) checkLive(op string) {
	if c.schema == nil || c.index == c.schema.never {
		panic("choice: " + op + " on a vacant Choice")
	}
	if c.index == c.schema.moved {
		panic("choice: " + op + " on a moved-from Choice")
	}
}

// Which returns the tag of the active alternative. It panics on a
// vacant or moved-from Choice.
func (c Choice[K]) Which() K {
	c.checkLive("Which")
	return c.schema.alts[c.index].tag
}

// ActiveIndex returns the declaration index of the active alternative,
// or false when the Choice is vacant or moved-from. It is the
// non-panicking probe used by codecs and diagnostics.
func (c Choice[K]) ActiveIndex() (int, bool) {
	if c.schema == nil || c.index == c.schema.never || c.index == c.schema.moved {
		return 0, false
	}
	return int(c.index), true
}

// Schema returns the schema the Choice was built from, or nil for the
// zero value.
func (c Choice[K]) Schema() *Schema[K] { return c.schema }

// Value returns an untyped copy of the active payload, or nil for a
// unit alternative. It panics on a vacant or moved-from Choice. Typed
// access should prefer Get.
func (c Choice[K]) Value() any {
	c.checkLive("Value")
	return c.schema.alts[c.index].ops.value(c.slot)
}

// Get returns the payload of the alternative declared for tag. It
// panics unless tag is the active alternative, mirroring the contract
// of Which-then-access call sites.
func Get[T any, K comparable](c *Choice[K], tag K) T {
	return *mutSlot[T](c, tag, "Get")
}

// Mut returns a pointer to the payload of the active alternative
// declared for tag, for in-place mutation. The pointer stays valid and
// stable across same-tag Set calls.
func Mut[T any, K comparable](c *Choice[K], tag K) *T {
	return mutSlot[T](c, tag, "Mut")
}

// Into moves the payload of the alternative declared for tag out of the
// Choice, leaving it in the moved-from state: every later access
// panics.
func Into[T any, K comparable](c *Choice[K], tag K) T {
	v := *mutSlot[T](c, tag, "Into")
	c.index = c.schema.moved
	c.slot = nil
	return v
}

func mutSlot[T any, K comparable](c *Choice[K], tag K, op string) *T {
	c.checkLive(op)
	i := c.schema.indexOf(tag)
	if c.index != uint64(i) {
		panic(fmt.Sprintf("choice: %s of tag %v while %v is active", op, tag, c.schema.alts[c.index].tag))
	}
	if c.schema.alts[i].ops.unit {
		panic(fmt.Sprintf("choice: %s of payload-free alternative %v", op, tag))
	}
	return mustUnbox[T](c.slot)
}

// Set replaces the Choice's value with the alternative declared for
// tag. When tag is already active the payload is assigned in place,
// preserving slot identity; otherwise the old slot is dropped and a new
// one constructed. It panics on a vacant or moved-from Choice.
func Set[T any, K comparable](c *Choice[K], tag K, v T) {
	c.checkLive("Set")
	i := uint64(c.schema.indexOf(tag))
	ops := &c.schema.alts[i].ops
	if ops.unit {
		panic(fmt.Sprintf("choice: alternative %v takes no payload", tag))
	}
	if c.index == i {
		ops.assign(c.slot, v)
		return
	}
	c.slot = ops.construct(v)
	c.index = i
}

// SetUnit replaces the Choice's value with the payload-free alternative
// declared for tag.
func SetUnit[K comparable](c *Choice[K], tag K) {
	c.checkLive("SetUnit")
	i := uint64(c.schema.indexOf(tag))
	if !c.schema.alts[i].ops.unit {
		panic(fmt.Sprintf("choice: alternative %v requires a payload", tag))
	}
	if c.index != i {
		c.slot = nil
		c.index = i
	}
}

// Take moves the value out of src, returning it and leaving src in the
// moved-from state. It panics when src is vacant or already moved from.
func Take[K comparable](src *Choice[K]) Choice[K] {
	src.checkLive("Take")
	out := Choice[K]{schema: src.schema, index: src.index, slot: src.slot}
	src.index = src.schema.moved
	src.slot = nil
	return out
}

// Replace moves src into dst. When both hold the same alternative the
// payload is assigned into dst's existing slot, preserving slot
// identity; otherwise dst adopts src's slot. src always ends in the
// moved-from state. It panics when src is vacant or moved from, or when
// the two values come from different schemas.
func Replace[K comparable](dst, src *Choice[K]) {
	src.checkLive("Replace")
	if dst.schema != nil && dst.schema != src.schema {
		panic("choice: Replace across schemas")
	}
	ops := &src.schema.alts[src.index].ops
	switch {
	case dst.schema == nil || dst.index != src.index || ops.unit:
		dst.schema = src.schema
		dst.index = src.index
		dst.slot = src.slot
	default:
		ops.assign(dst.slot, ops.value(src.slot))
	}
	src.index = src.schema.moved
	src.slot = nil
}

// Clone returns an independent copy of the Choice. It requires every
// alternative in the schema to support cloning and panics otherwise,
// so a schema with one uncloneable alternative reports "not Clone"
// rather than silently sharing state. A vacant Choice clones to vacant;
// a moved-from Choice panics.
func (c Choice[K]) Clone() Choice[K] {
	if c.IsVacant() {
		return c
	}
	if c.index == c.schema.moved {
		panic("choice: Clone of a moved-from Choice")
	}
	if !c.schema.canClone {
		panic("choice: schema is not Clone")
	}
	ops := &c.schema.alts[c.index].ops
	out := c
	if !ops.unit {
		out.slot = ops.clone(c.slot)
	}
	return out
}

// Equal reports whether two Choices hold the same alternative with
// equal payloads. Tags compare first: unequal tags mean unequal values
// regardless of payloads. Both schemas must support equality on every
// alternative or Equal panics; comparing across schemas is allowed when
// the tag types match and the payload types at the shared tag are
// identical.
func (c Choice[K]) Equal(o Choice[K]) bool {
	c.checkLive("Equal")
	o.checkLive("Equal")
	if !c.schema.canEq || !o.schema.canEq {
		panic("choice: schema is not Eq")
	}
	if c.schema.alts[c.index].tag != o.schema.alts[o.index].tag {
		return false
	}
	ops := &c.schema.alts[c.index].ops
	checkSameArity(ops, &o.schema.alts[o.index].ops, c.schema.alts[c.index].tag)
	if ops.unit {
		return true
	}
	return ops.eq(c.slot, o.slot)
}

// checkSameArity panics when the two schemas disagree on whether the
// shared tag carries a payload. Without it a unit receiver would
// short-circuit before the payload-type check ever runs.
func checkSameArity[K comparable](a, b *slotOps, tag K) {
	if a.unit != b.unit {
		panic(fmt.Sprintf("choice: alternative %v is %s in one schema and %s in the other",
			tag, a.typeName, b.typeName))
	}
}

// Compare orders two Choices: first by the declaration index of their
// tags in c's schema, then, on equal tags, by payload. Both schemas
// must support ordering on every alternative or Compare panics, as does
// a tag of o that c's schema does not declare.
func (c Choice[K]) Compare(o Choice[K]) int {
	c.checkLive("Compare")
	o.checkLive("Compare")
	if !c.schema.canOrd || !o.schema.canOrd {
		panic("choice: schema is not Ord")
	}
	oi := uint64(c.schema.indexOf(o.schema.alts[o.index].tag))
	switch {
	case c.index < oi:
		return -1
	case c.index > oi:
		return 1
	}
	ops := &c.schema.alts[c.index].ops
	checkSameArity(ops, &o.schema.alts[o.index].ops, c.schema.alts[c.index].tag)
	if ops.unit {
		return 0
	}
	return ops.order(c.slot, o.slot)
}

// String renders the Choice for diagnostics. Unlike the accessors it
// never panics: vacant and moved-from states render as markers.
func (c Choice[K]) String() string {
	if c.IsVacant() {
		return "Choice(<vacant>)"
	}
	if c.index == c.schema.moved {
		return "Choice(<moved>)"
	}
	a := &c.schema.alts[c.index]
	if a.ops.unit {
		return fmt.Sprintf("Choice(%v)", a.tag)
	}
	return fmt.Sprintf("Choice(%v: %s)", a.tag, a.ops.str(c.slot))
}
