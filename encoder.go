package lexcode

// An Encoder appends encoded values to a byte buffer.
// A driver encodes a composite key by calling one method per field,
// in the key's declared field order.
//
// Encoder methods cannot fail; a driver that is asked to encode a shape
// this format does not support should report a [MessageError] itself.
//
// Fixed-arity composites (structs, tuples, fixed arrays) have no methods
// of their own; emit their fields in order. Sequences and maps are framed
// with [Encoder.Elem] and [Encoder.End]. For a map, emit the key and then
// the value after each Elem. Map entries are encoded in the order they are
// emitted; emit them in key order if encoded maps must sort meaningfully.
//
// The zero Encoder is ready to use and appends to a nil buffer.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an Encoder appending to buf, which may be nil.
func NewEncoder(buf []byte) *Encoder {
	return &Encoder{buf}
}

// Buffer returns the buffer with everything encoded so far.
func (e *Encoder) Buffer() []byte {
	return e.buf
}

// Reset discards the Encoder's state and starts appending to buf,
// which may be nil.
func (e *Encoder) Reset(buf []byte) {
	e.buf = buf
}

// Bool encodes a bool as one byte, false before true.
func (e *Encoder) Bool(value bool) {
	if value {
		e.buf = append(e.buf, elemMarker)
	} else {
		e.buf = append(e.buf, endMarker)
	}
}

// Uint encodes an unsigned integer of any width up to 64 bits.
// The same value encodes to the same bytes regardless of width:
// values below 128 take one byte, and each level of the varint
// sorts entirely after the levels before it.
func (e *Encoder) Uint(value uint64) {
	e.buf = appendUvarint(e.buf, U128From64(value))
}

// Uint128 encodes an unsigned 128-bit integer,
// to the same bytes [Encoder.Uint] would produce when value fits in 64 bits.
func (e *Encoder) Uint128(value Uint128) {
	e.buf = appendUvarint(e.buf, value)
}

// Int encodes a signed integer of any width up to 64 bits.
// The same value encodes to the same bytes regardless of width,
// negatives sort before non-negatives, and values in [-64, 63]
// take one byte.
func (e *Encoder) Int(value int64) {
	e.buf = appendIvarint(e.buf, I128From64(value))
}

// Int128 encodes a signed 128-bit integer,
// to the same bytes [Encoder.Int] would produce when value fits in 64 bits.
func (e *Encoder) Int128(value Int128) {
	e.buf = appendIvarint(e.buf, value)
}

// Float32 encodes a float32 as four bytes in the order documented in float.go:
// ascending numeric order, with -0.0 before +0.0 and NaNs at the extremes.
func (e *Encoder) Float32(value float32) {
	e.buf = appendFloat32(e.buf, value)
}

// Float64 encodes a float64 as eight bytes, ordered like [Encoder.Float32].
func (e *Encoder) Float64(value float64) {
	e.buf = appendFloat64(e.buf, value)
}

// Rune encodes a Unicode code point as its unsigned scalar value.
// The code point must be a valid scalar value; [Decoder.Rune] rejects
// anything else.
func (e *Encoder) Rune(value rune) {
	e.buf = appendUvarint(e.buf, U128From64(uint64(uint32(value))))
}

// String encodes text, escaped and terminated with the 0x00 sentinel.
// The encoded order is the byte order of the UTF-8 text, which matches
// code point order but no locale's collation.
func (e *Encoder) String(value string) {
	e.buf = appendEscaped(e.buf, value, textSentinel)
}

// Bytes encodes a byte string, escaped and terminated with the 0x7F
// sentinel. The encoded order is the byte order of the data, except that a
// string sorts after an extension of itself whose next byte is below 0x7F.
func (e *Encoder) Bytes(value []byte) {
	e.buf = appendEscaped(e.buf, value, bytesSentinel)
}

// Fixed encodes a byte array of statically known length as its raw bytes,
// with no escaping or terminator. The decoder must know the length.
func (e *Encoder) Fixed(value []byte) {
	e.buf = append(e.buf, value...)
}

// Unit encodes the empty value, which takes no bytes.
func (e *Encoder) Unit() {}

// Elem begins a sequence element or map entry.
// Call before encoding each element; then call [Encoder.End].
func (e *Encoder) Elem() {
	e.buf = append(e.buf, elemMarker)
}

// End terminates a sequence or map.
// A sequence that ends sorts before any extension of it.
func (e *Encoder) End() {
	e.buf = append(e.buf, endMarker)
}

// None encodes an absent optional value. None sorts before every Some.
func (e *Encoder) None() {
	e.buf = append(e.buf, endMarker)
}

// Some encodes the presence flag of an optional value;
// encode the value itself next.
func (e *Encoder) Some() {
	e.buf = append(e.buf, elemMarker)
}

// Variant encodes an enum discriminant; encode the variant's payload next,
// if it has one. Variants sort by discriminant first, payload second.
func (e *Encoder) Variant(index uint32) {
	e.buf = appendUvarint(e.buf, U128From64(uint64(index)))
}
