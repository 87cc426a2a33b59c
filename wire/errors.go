package wire

import "errors"

var (
	ErrShortBuffer   = errors.New("wire: buffer too small")
	ErrTooLarge      = errors.New("wire: payload too large")
	ErrInvalidUTF8   = errors.New("wire: invalid utf8 string")
	ErrBadIndex      = errors.New("wire: discriminant out of range")
	ErrMovedValue    = errors.New("wire: cannot encode a moved-from value")
	ErrNoCodec       = errors.New("wire: alternative has no payload codec")
	ErrUnknownTag    = errors.New("wire: tag is not part of the schema")
	ErrTrailingBytes = errors.New("wire: trailing bytes after value")
)
