// Package wire serializes choice values to a compact little-endian
// binary form: the discriminant at the schema's selected width followed
// by the active alternative's payload. The never-value code encodes a
// vacant value; a moved-from value refuses to encode.
package wire

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"
)

// MaxPayloadLen caps length-prefixed strings and byte slices so a
// corrupt length prefix cannot drive a huge allocation.
const MaxPayloadLen = 1 << 20

// Writer encodes primitive values to an io.Writer. It is error-sticky:
// the first failure is recorded and every later write becomes a no-op,
// so call sites can write a whole value and check Error once.
type Writer struct {
	w   io.Writer
	err error
	n   int
}

// NewWriter returns a Writer over w. A *bytes.Buffer is the common
// underlying writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Bytes returns the written bytes when the underlying writer is a
// *bytes.Buffer and no error occurred, nil otherwise.
func (w *Writer) Bytes() []byte {
	if w.err != nil {
		return nil
	}
	if bb, ok := w.w.(*bytes.Buffer); ok {
		return bb.Bytes()
	}
	return nil
}

// Error returns the first error encountered, if any.
func (w *Writer) Error() error { return w.err }

// BytesWritten returns the number of bytes successfully written.
func (w *Writer) BytesWritten() int { return w.n }

func (w *Writer) write(p []byte) {
	if w.err != nil {
		return
	}
	n, err := w.w.Write(p)
	w.n += n
	if err != nil {
		w.err = err
	}
}

// WriteU8 writes one byte.
func (w *Writer) WriteU8(v uint8) { w.write([]byte{v}) }

// WriteBool writes a boolean as one byte.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteU8(1)
	} else {
		w.WriteU8(0)
	}
}

// WriteU16 writes a little-endian uint16.
func (w *Writer) WriteU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.write(b[:])
}

// WriteU32 writes a little-endian uint32.
func (w *Writer) WriteU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.write(b[:])
}

// WriteU64 writes a little-endian uint64.
func (w *Writer) WriteU64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.write(b[:])
}

// WriteI8 writes a signed byte.
func (w *Writer) WriteI8(v int8) { w.WriteU8(uint8(v)) }

// WriteI16 writes a little-endian int16.
func (w *Writer) WriteI16(v int16) { w.WriteU16(uint16(v)) }

// WriteI32 writes a little-endian int32.
func (w *Writer) WriteI32(v int32) { w.WriteU32(uint32(v)) }

// WriteI64 writes a little-endian int64.
func (w *Writer) WriteI64(v int64) { w.WriteU64(uint64(v)) }

// WriteF32 writes an IEEE-754 float32.
func (w *Writer) WriteF32(v float32) { w.WriteU32(math.Float32bits(v)) }

// WriteF64 writes an IEEE-754 float64.
func (w *Writer) WriteF64(v float64) { w.WriteU64(math.Float64bits(v)) }

// WriteString writes a u32 length prefix followed by the UTF-8 bytes.
func (w *Writer) WriteString(s string) {
	if len(s) > MaxPayloadLen {
		w.fail(ErrTooLarge)
		return
	}
	if !utf8.ValidString(s) {
		w.fail(ErrInvalidUTF8)
		return
	}
	w.WriteU32(uint32(len(s)))
	w.write([]byte(s))
}

// WriteBytes writes a u32 length prefix followed by the raw bytes.
func (w *Writer) WriteBytes(p []byte) {
	if len(p) > MaxPayloadLen {
		w.fail(ErrTooLarge)
		return
	}
	w.WriteU32(uint32(len(p)))
	w.write(p)
}

// WriteIndex writes a discriminant code at the given width.
func (w *Writer) WriteIndex(code uint64, size int) {
	switch size {
	case 1:
		w.WriteU8(uint8(code))
	case 2:
		w.WriteU16(uint16(code))
	case 4:
		w.WriteU32(uint32(code))
	default:
		w.WriteU64(code)
	}
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}
