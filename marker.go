package choice

import (
	"fmt"

	"github.com/closedset/choice/tuple"
)

// Marker is a deferred Choice construction. Of captures the tag and
// payload at the call site without knowing the schema; Bind performs
// the actual construction once the destination schema is known. The
// payload is held as-is and boxed exactly once, at Bind.
type Marker[K comparable] struct {
	tag     K
	payload any
	unit    bool
}

// Of captures a tag and payload for later binding to a schema.
func Of[T any, K comparable](tag K, v T) Marker[K] {
	return Marker[K]{tag: tag, payload: v}
}

// OfUnit captures a payload-free tag for later binding to a schema.
func OfUnit[K comparable](tag K) Marker[K] {
	return Marker[K]{tag: tag, unit: true}
}

// Of2 captures a tag and two payload values, bundling them the way a
// two-payload alternative stores them.
func Of2[A, B any, K comparable](tag K, a A, b B) Marker[K] {
	return Marker[K]{tag: tag, payload: tuple.With2(a, b)}
}

// Of3 captures a tag and three payload values.
func Of3[A, B, C any, K comparable](tag K, a A, b B, c C) Marker[K] {
	return Marker[K]{tag: tag, payload: tuple.With3(a, b, c)}
}

// Tag returns the tag the marker was captured with.
func (m Marker[K]) Tag() K { return m.tag }

// Bind constructs the Choice in schema s. It panics when the tag is not
// part of s, when the payload arity disagrees with the declared
// alternative, or when the payload type does not fit.
func (m Marker[K]) Bind(s *Schema[K]) Choice[K] {
	i := s.indexOf(m.tag)
	ops := &s.alts[i].ops
	if m.unit != ops.unit {
		if m.unit {
			panic(fmt.Sprintf("choice: alternative %v requires a payload", m.tag))
		}
		panic(fmt.Sprintf("choice: alternative %v takes no payload", m.tag))
	}
	if m.unit {
		return Choice[K]{schema: s, index: uint64(i)}
	}
	return Choice[K]{schema: s, index: uint64(i), slot: ops.construct(m.payload)}
}
