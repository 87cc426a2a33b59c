package choice

import (
	"fmt"

	"github.com/closedset/choice/internal/index"
)

// Schema is the closed, declared-once alternative set a Choice selects
// from. Building a Schema performs every validation the engine treats as
// a declaration error: duplicate tags, an empty set, and an alternative
// count too large for the widest discriminant. Those panic during
// construction (typically package initialization) so no Choice is ever
// produced from an invalid set.
//
// A Schema is immutable after construction and safe for concurrent use.
type Schema[K comparable] struct {
	alts  []Alternative[K]
	byTag map[K]int

	idxSize int
	never   uint64
	moved   uint64

	canEq    bool
	canOrd   bool
	canClone bool
}

// NewSchema builds a Schema from an ordered list of alternatives. The
// declaration order is significant: it fixes each alternative's index
// and is the first-stage ordering used by Choice.Compare. NewSchema
// panics on duplicate tags or an empty list.
func NewSchema[K comparable](alts ...Alternative[K]) *Schema[K] {
	if len(alts) == 0 {
		panic("choice: a schema needs at least one alternative")
	}
	s := &Schema[K]{
		alts:     alts,
		byTag:    make(map[K]int, len(alts)),
		canEq:    true,
		canOrd:   true,
		canClone: true,
	}
	for i, a := range alts {
		if prev, dup := s.byTag[a.tag]; dup {
			panic(fmt.Sprintf("choice: duplicate tag %v at positions %d and %d", a.tag, prev, i))
		}
		s.byTag[a.tag] = i
		s.canEq = s.canEq && a.ops.eq != nil
		s.canOrd = s.canOrd && a.ops.order != nil
		s.canClone = s.canClone && (a.ops.clone != nil || a.ops.unit)
	}
	s.idxSize = index.Size(len(alts))
	s.never = index.Never(s.idxSize)
	s.moved = index.Moved(s.idxSize)
	return s
}

// Len returns the number of alternatives.
func (s *Schema[K]) Len() int { return len(s.alts) }

// IndexOf returns the declaration index of a tag and whether the tag is
// part of the schema.
func (s *Schema[K]) IndexOf(tag K) (int, bool) {
	i, ok := s.byTag[tag]
	return i, ok
}

// TagAt returns the tag declared at index i.
func (s *Schema[K]) TagAt(i int) K {
	return s.alts[i].tag
}

// AltAt returns the alternative declared at index i.
func (s *Schema[K]) AltAt(i int) Alternative[K] {
	return s.alts[i]
}

// IndexSize returns the discriminant width in bytes selected for this
// schema: the smallest supported width holding every alternative index
// plus the two reserved codes.
func (s *Schema[K]) IndexSize() int { return s.idxSize }

// NeverValue returns the reserved discriminant code an optional wrapper
// may treat as "no value".
func (s *Schema[K]) NeverValue() uint64 { return s.never }

// UseAfterMove returns the reserved discriminant code marking a
// moved-from Choice.
func (s *Schema[K]) UseAfterMove() uint64 { return s.moved }

// CanEqual reports whether every alternative supports equality, which
// is the condition for Choice.Equal to be callable.
func (s *Schema[K]) CanEqual() bool { return s.canEq }

// CanCompare reports whether every alternative supports ordering, which
// is the condition for Choice.Compare to be callable.
func (s *Schema[K]) CanCompare() bool { return s.canOrd }

// CanClone reports whether every alternative supports cloning, which is
// the condition for Choice.Clone to be callable.
func (s *Schema[K]) CanClone() bool { return s.canClone }

// indexOf resolves a tag that call sites assert to be part of the
// schema. Unknown tags are a programmer error and fail fast.
func (s *Schema[K]) indexOf(tag K) int {
	i, ok := s.byTag[tag]
	if !ok {
		panic(fmt.Sprintf("choice: tag %v is not part of the schema", tag))
	}
	return i
}
