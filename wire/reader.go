package wire

import (
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"
)

// Reader decodes primitive values from an io.Reader. Like Writer it is
// error-sticky: after the first failure every read returns the zero
// value and Error reports what went wrong.
type Reader struct {
	r   io.Reader
	err error
	n   int
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Error returns the first error encountered, if any.
func (r *Reader) Error() error { return r.err }

// BytesRead returns the number of bytes successfully consumed.
func (r *Reader) BytesRead() int { return r.n }

func (r *Reader) read(p []byte) bool {
	if r.err != nil {
		return false
	}
	n, err := io.ReadFull(r.r, p)
	r.n += n
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = ErrShortBuffer
		}
		r.err = err
		return false
	}
	return true
}

// ReadU8 reads one byte.
func (r *Reader) ReadU8() uint8 {
	var b [1]byte
	if !r.read(b[:]) {
		return 0
	}
	return b[0]
}

// ReadBool reads a boolean encoded as one byte.
func (r *Reader) ReadBool() bool {
	return r.ReadU8() != 0
}

// ReadU16 reads a little-endian uint16.
func (r *Reader) ReadU16() uint16 {
	var b [2]byte
	if !r.read(b[:]) {
		return 0
	}
	return binary.LittleEndian.Uint16(b[:])
}

// ReadU32 reads a little-endian uint32.
func (r *Reader) ReadU32() uint32 {
	var b [4]byte
	if !r.read(b[:]) {
		return 0
	}
	return binary.LittleEndian.Uint32(b[:])
}

// ReadU64 reads a little-endian uint64.
func (r *Reader) ReadU64() uint64 {
	var b [8]byte
	if !r.read(b[:]) {
		return 0
	}
	return binary.LittleEndian.Uint64(b[:])
}

// ReadI8 reads a signed byte.
func (r *Reader) ReadI8() int8 { return int8(r.ReadU8()) }

// ReadI16 reads a little-endian int16.
func (r *Reader) ReadI16() int16 { return int16(r.ReadU16()) }

// ReadI32 reads a little-endian int32.
func (r *Reader) ReadI32() int32 { return int32(r.ReadU32()) }

// ReadI64 reads a little-endian int64.
func (r *Reader) ReadI64() int64 { return int64(r.ReadU64()) }

// ReadF32 reads an IEEE-754 float32.
func (r *Reader) ReadF32() float32 { return math.Float32frombits(r.ReadU32()) }

// ReadF64 reads an IEEE-754 float64.
func (r *Reader) ReadF64() float64 { return math.Float64frombits(r.ReadU64()) }

// ReadString reads a u32 length prefix followed by UTF-8 bytes.
func (r *Reader) ReadString() string {
	n := r.ReadU32()
	if r.err != nil {
		return ""
	}
	if int(n) > MaxPayloadLen {
		r.fail(ErrTooLarge)
		return ""
	}
	b := make([]byte, n)
	if !r.read(b) {
		return ""
	}
	if !utf8.Valid(b) {
		r.fail(ErrInvalidUTF8)
		return ""
	}
	return string(b)
}

// ReadBytes reads a u32 length prefix followed by raw bytes.
func (r *Reader) ReadBytes() []byte {
	n := r.ReadU32()
	if r.err != nil {
		return nil
	}
	if int(n) > MaxPayloadLen {
		r.fail(ErrTooLarge)
		return nil
	}
	b := make([]byte, n)
	if !r.read(b) {
		return nil
	}
	return b
}

// ReadIndex reads a discriminant code at the given width.
func (r *Reader) ReadIndex(size int) uint64 {
	switch size {
	case 1:
		return uint64(r.ReadU8())
	case 2:
		return uint64(r.ReadU16())
	case 4:
		return uint64(r.ReadU32())
	default:
		return r.ReadU64()
	}
}

func (r *Reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}
