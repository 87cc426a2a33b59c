package wire

// Primitive payload codecs for common alternative payload types.

// Bool builds a codec for a bool payload.
func Bool[K comparable](tag K) PayloadCodec[K] {
	return Payload(tag, (*Writer).WriteBool, (*Reader).ReadBool)
}

// U8 builds a codec for a uint8 payload.
func U8[K comparable](tag K) PayloadCodec[K] {
	return Payload(tag, (*Writer).WriteU8, (*Reader).ReadU8)
}

// U16 builds a codec for a uint16 payload.
func U16[K comparable](tag K) PayloadCodec[K] {
	return Payload(tag, (*Writer).WriteU16, (*Reader).ReadU16)
}

// U32 builds a codec for a uint32 payload.
func U32[K comparable](tag K) PayloadCodec[K] {
	return Payload(tag, (*Writer).WriteU32, (*Reader).ReadU32)
}

// U64 builds a codec for a uint64 payload.
func U64[K comparable](tag K) PayloadCodec[K] {
	return Payload(tag, (*Writer).WriteU64, (*Reader).ReadU64)
}

// I8 builds a codec for an int8 payload.
func I8[K comparable](tag K) PayloadCodec[K] {
	return Payload(tag, (*Writer).WriteI8, (*Reader).ReadI8)
}

// I16 builds a codec for an int16 payload.
func I16[K comparable](tag K) PayloadCodec[K] {
	return Payload(tag, (*Writer).WriteI16, (*Reader).ReadI16)
}

// I32 builds a codec for an int32 payload.
func I32[K comparable](tag K) PayloadCodec[K] {
	return Payload(tag, (*Writer).WriteI32, (*Reader).ReadI32)
}

// I64 builds a codec for an int64 payload.
func I64[K comparable](tag K) PayloadCodec[K] {
	return Payload(tag, (*Writer).WriteI64, (*Reader).ReadI64)
}

// F32 builds a codec for a float32 payload.
func F32[K comparable](tag K) PayloadCodec[K] {
	return Payload(tag, (*Writer).WriteF32, (*Reader).ReadF32)
}

// F64 builds a codec for a float64 payload.
func F64[K comparable](tag K) PayloadCodec[K] {
	return Payload(tag, (*Writer).WriteF64, (*Reader).ReadF64)
}

// Str builds a codec for a string payload.
func Str[K comparable](tag K) PayloadCodec[K] {
	return Payload(tag, (*Writer).WriteString, (*Reader).ReadString)
}

// Bytes builds a codec for a []byte payload.
func Bytes[K comparable](tag K) PayloadCodec[K] {
	return Payload(tag, (*Writer).WriteBytes, (*Reader).ReadBytes)
}
