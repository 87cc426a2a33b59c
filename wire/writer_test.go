package wire

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterIsErrorSticky(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteString(strings.Repeat("x", MaxPayloadLen+1))
	require.ErrorIs(t, w.Error(), ErrTooLarge)

	// Later writes are no-ops once the writer has failed.
	w.WriteU32(1)
	assert.Zero(t, w.BytesWritten())
	assert.Nil(t, w.Bytes())
}

func TestWriterRejectsInvalidUTF8(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	w.WriteString(string([]byte{0xFF, 0xFE}))
	assert.ErrorIs(t, w.Error(), ErrInvalidUTF8)
}

func TestStringAndBytesFraming(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteString("hi")
	w.WriteBytes([]byte{9})
	require.NoError(t, w.Error())
	assert.Equal(t, []byte{2, 0, 0, 0, 'h', 'i', 1, 0, 0, 0, 9}, w.Bytes())

	r := NewReader(bytes.NewReader(w.Bytes()))
	assert.Equal(t, "hi", r.ReadString())
	assert.Equal(t, []byte{9}, r.ReadBytes())
	require.NoError(t, r.Error())
	assert.Equal(t, buf.Len(), r.BytesRead())
}

func TestReaderShortBuffer(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{1, 2}))
	r.ReadU32()
	assert.ErrorIs(t, r.Error(), ErrShortBuffer)

	// Sticky: further reads keep returning zero values.
	assert.Zero(t, r.ReadU64())
}

func TestReaderCapsLengthPrefix(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteU32(uint32(MaxPayloadLen + 1))
	r := NewReader(bytes.NewReader(w.Bytes()))
	r.ReadString()
	assert.ErrorIs(t, r.Error(), ErrTooLarge)
}

func TestIndexWidths(t *testing.T) {
	for _, size := range []int{1, 2, 4, 8} {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		code := uint64(1)<<(8*size) - 1
		if size == 8 {
			code = ^uint64(0)
		}
		w.WriteIndex(code, size)
		require.NoError(t, w.Error())
		require.Equal(t, size, w.BytesWritten())

		r := NewReader(bytes.NewReader(w.Bytes()))
		assert.Equal(t, code, r.ReadIndex(size))
		require.NoError(t, r.Error())
	}
}
