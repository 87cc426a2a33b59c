package wire

import (
	"bytes"
	"fmt"

	"github.com/closedset/choice"
)

// PayloadCodec pairs a tag with encode/decode functions for that
// alternative's payload. Build them with Payload, UnitPayload or the
// primitive helpers (U32, Str, F64, ...).
type PayloadCodec[K comparable] struct {
	tag  K
	enc  func(*Writer, any)
	dec  func(*Reader) any
	unit bool
}

// Payload builds a codec for a single-payload alternative from typed
// encode and decode functions.
func Payload[T any, K comparable](tag K, enc func(*Writer, T), dec func(*Reader) T) PayloadCodec[K] {
	return PayloadCodec[K]{
		tag: tag,
		enc: func(w *Writer, v any) { enc(w, v.(T)) },
		dec: func(r *Reader) any { return dec(r) },
	}
}

// UnitPayload builds a codec for a payload-free alternative.
func UnitPayload[K comparable](tag K) PayloadCodec[K] {
	return PayloadCodec[K]{tag: tag, unit: true}
}

// Codec encodes and decodes Choice values of one schema. The wire form
// is the discriminant at the schema's selected width, little-endian,
// followed by the payload; a vacant value is the never-value code alone.
type Codec[K comparable] struct {
	schema  *choice.Schema[K]
	byIndex []PayloadCodec[K]
}

// NewCodec builds a Codec from a schema and a payload codec per
// alternative. It fails when a codec names a tag outside the schema,
// when an alternative is left without a codec, or when payload arity
// disagrees with the declaration.
func NewCodec[K comparable](s *choice.Schema[K], payloads ...PayloadCodec[K]) (*Codec[K], error) {
	byIndex := make([]PayloadCodec[K], s.Len())
	seen := make([]bool, s.Len())
	for _, p := range payloads {
		i, ok := s.IndexOf(p.tag)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownTag, p.tag)
		}
		if p.unit != s.AltAt(i).IsUnit() {
			return nil, fmt.Errorf("%w: arity mismatch for tag %v", ErrNoCodec, p.tag)
		}
		byIndex[i] = p
		seen[i] = true
	}
	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: tag %v", ErrNoCodec, s.TagAt(i))
		}
	}
	return &Codec[K]{schema: s, byIndex: byIndex}, nil
}

// Encode serializes a Choice. A vacant value encodes as the never-value
// code with no payload; a moved-from value returns ErrMovedValue.
func (c *Codec[K]) Encode(v choice.Choice[K]) ([]byte, error) {
	if v.IsMoved() {
		return nil, ErrMovedValue
	}
	var buf bytes.Buffer
	w := NewWriter(&buf)
	size := c.schema.IndexSize()
	i, ok := v.ActiveIndex()
	if !ok {
		w.WriteIndex(c.schema.NeverValue(), size)
		return buf.Bytes(), w.Error()
	}
	w.WriteIndex(uint64(i), size)
	p := c.byIndex[i]
	if !p.unit {
		p.enc(w, v.Value())
	}
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode deserializes a Choice, requiring the input to be exactly one
// value: trailing bytes are an error.
func (c *Codec[K]) Decode(data []byte) (choice.Choice[K], error) {
	r := NewReader(bytes.NewReader(data))
	size := c.schema.IndexSize()
	code := r.ReadIndex(size)
	if err := r.Error(); err != nil {
		return choice.Choice[K]{}, err
	}
	if code == c.schema.NeverValue() {
		if r.BytesRead() != len(data) {
			return choice.Choice[K]{}, ErrTrailingBytes
		}
		return choice.Vacant(c.schema), nil
	}
	if code >= uint64(c.schema.Len()) {
		return choice.Choice[K]{}, fmt.Errorf("%w: %#x", ErrBadIndex, code)
	}
	p := c.byIndex[code]
	var payload any
	if !p.unit {
		payload = p.dec(r)
		if err := r.Error(); err != nil {
			return choice.Choice[K]{}, err
		}
	}
	if r.BytesRead() != len(data) {
		return choice.Choice[K]{}, ErrTrailingBytes
	}
	if p.unit {
		return choice.FromValue(c.schema, c.schema.TagAt(int(code)), nil), nil
	}
	return choice.FromValue(c.schema, c.schema.TagAt(int(code)), payload), nil
}
