package lexcode

import (
	"math"
	"unicode/utf8"
)

// A Decoder reads encoded values from a byte slice, advancing a cursor
// past each value it decodes. The driver must request the same shapes in
// the same order the values were encoded; the format is not
// self-describing.
//
// Decoding a nested value leaves the cursor at the following byte.
// After decoding a top-level value, call [Decoder.Finish] to verify the
// input was fully consumed.
//
// The Decoder does not modify its input, but decoded []byte values are
// copies, so they remain valid if the caller later reuses the input.
type Decoder struct {
	buf []byte
}

// NewDecoder returns a Decoder reading from buf.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf}
}

// Remaining returns the number of bytes not yet consumed.
func (d *Decoder) Remaining() int {
	return len(d.buf)
}

// Finish returns [ErrTrailingInput] if any input remains, nil otherwise.
func (d *Decoder) Finish() error {
	if len(d.buf) != 0 {
		return ErrTrailingInput
	}
	return nil
}

// Bool decodes a bool. Any byte other than 0x00 or 0x01 is malformed.
func (d *Decoder) Bool() (bool, error) {
	if len(d.buf) == 0 {
		return false, ErrUnexpectedEOF
	}
	b := d.buf[0]
	if b != endMarker && b != elemMarker {
		return false, malformedf("bool byte %#02x", b)
	}
	d.buf = d.buf[1:]
	return b == elemMarker, nil
}

// Uint128 decodes an unsigned integer of up to 128 bits.
func (d *Decoder) Uint128() (Uint128, error) {
	value, rest, err := getUvarint(d.buf)
	if err != nil {
		return Uint128{}, err
	}
	d.buf = rest
	return value, nil
}

// Uint decodes an unsigned integer into a 64-bit slot.
// A value the slot cannot hold is malformed.
func (d *Decoder) Uint() (uint64, error) {
	value, err := d.Uint128()
	if err != nil {
		return 0, err
	}
	if !value.IsUint64() {
		return 0, malformedf("varint overflows uint64")
	}
	return value.Lo, nil
}

// Uint8 decodes an unsigned integer into an 8-bit slot.
// A value the slot cannot hold is malformed.
func (d *Decoder) Uint8() (uint8, error) {
	return getUintN[uint8](d, math.MaxUint8, "uint8")
}

// Uint16 decodes an unsigned integer into a 16-bit slot.
// A value the slot cannot hold is malformed.
func (d *Decoder) Uint16() (uint16, error) {
	return getUintN[uint16](d, math.MaxUint16, "uint16")
}

// Uint32 decodes an unsigned integer into a 32-bit slot.
// A value the slot cannot hold is malformed.
func (d *Decoder) Uint32() (uint32, error) {
	return getUintN[uint32](d, math.MaxUint32, "uint32")
}

func getUintN[T uint8 | uint16 | uint32](d *Decoder, maxValue uint64, name string) (T, error) {
	value, err := d.Uint()
	if err != nil {
		return 0, err
	}
	if value > maxValue {
		return 0, malformedf("varint %d overflows %s", value, name)
	}
	return T(value), nil
}

// Int128 decodes a signed integer of up to 128 bits.
func (d *Decoder) Int128() (Int128, error) {
	value, rest, err := getIvarint(d.buf)
	if err != nil {
		return Int128{}, err
	}
	d.buf = rest
	return value, nil
}

// Int decodes a signed integer into a 64-bit slot.
// A value the slot cannot hold is malformed.
func (d *Decoder) Int() (int64, error) {
	value, err := d.Int128()
	if err != nil {
		return 0, err
	}
	if !value.IsInt64() {
		return 0, malformedf("varint overflows int64")
	}
	return int64(value.Lo), nil
}

// Int8 decodes a signed integer into an 8-bit slot.
// A value the slot cannot hold is malformed.
func (d *Decoder) Int8() (int8, error) {
	return getIntN[int8](d, math.MinInt8, math.MaxInt8, "int8")
}

// Int16 decodes a signed integer into a 16-bit slot.
// A value the slot cannot hold is malformed.
func (d *Decoder) Int16() (int16, error) {
	return getIntN[int16](d, math.MinInt16, math.MaxInt16, "int16")
}

// Int32 decodes a signed integer into a 32-bit slot.
// A value the slot cannot hold is malformed.
func (d *Decoder) Int32() (int32, error) {
	return getIntN[int32](d, math.MinInt32, math.MaxInt32, "int32")
}

func getIntN[T int8 | int16 | int32](d *Decoder, minValue, maxValue int64, name string) (T, error) {
	value, err := d.Int()
	if err != nil {
		return 0, err
	}
	if value < minValue || value > maxValue {
		return 0, malformedf("varint %d overflows %s", value, name)
	}
	return T(value), nil
}

// Float32 decodes a float32.
func (d *Decoder) Float32() (float32, error) {
	value, rest, err := getFloat32(d.buf)
	if err != nil {
		return 0, err
	}
	d.buf = rest
	return value, nil
}

// Float64 decodes a float64.
func (d *Decoder) Float64() (float64, error) {
	value, rest, err := getFloat64(d.buf)
	if err != nil {
		return 0, err
	}
	d.buf = rest
	return value, nil
}

// Rune decodes a Unicode code point.
// A value that is not a valid scalar value is malformed.
func (d *Decoder) Rune() (rune, error) {
	value, rest, err := getUvarint(d.buf)
	if err != nil {
		return 0, err
	}
	if !value.IsUint64() || value.Lo > uint64(utf8.MaxRune) || !utf8.ValidRune(rune(value.Lo)) {
		return 0, malformedf("invalid code point")
	}
	d.buf = rest
	return rune(value.Lo), nil
}

// String decodes escaped and terminated text.
// Data that is not valid UTF-8 is malformed.
func (d *Decoder) String() (string, error) {
	data, rest, err := getEscaped(d.buf, textSentinel)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", malformedf("text is not valid UTF-8")
	}
	d.buf = rest
	return string(data), nil
}

// Bytes decodes an escaped and terminated byte string.
func (d *Decoder) Bytes() ([]byte, error) {
	data, rest, err := getEscaped(d.buf, bytesSentinel)
	if err != nil {
		return nil, err
	}
	d.buf = rest
	return data, nil
}

// Fixed decodes a byte array of statically known length n.
func (d *Decoder) Fixed(n int) ([]byte, error) {
	if len(d.buf) < n {
		return nil, ErrUnexpectedEOF
	}
	value := append([]byte{}, d.buf[:n]...)
	d.buf = d.buf[n:]
	return value, nil
}

// Unit decodes the empty value, which takes no bytes.
func (d *Decoder) Unit() error {
	return nil
}

// More steps the sequence and map iteration protocol:
// it reports true if another element follows, and false at the
// terminator, consuming the framing byte either way.
// For a map, decode the key and then the value after each true.
func (d *Decoder) More() (bool, error) {
	return d.flag("framing")
}

// Option decodes the presence flag of an optional value:
// false for none, true for some. After true, decode the value itself.
func (d *Decoder) Option() (bool, error) {
	return d.flag("option")
}

func (d *Decoder) flag(what string) (bool, error) {
	if len(d.buf) == 0 {
		return false, ErrUnexpectedEOF
	}
	b := d.buf[0]
	if b != endMarker && b != elemMarker {
		return false, malformedf("%s byte %#02x", what, b)
	}
	d.buf = d.buf[1:]
	return b == elemMarker, nil
}

// Variant decodes an enum discriminant; decode the variant's payload next,
// if it has one.
func (d *Decoder) Variant() (uint32, error) {
	value, err := d.Uint()
	if err != nil {
		return 0, err
	}
	if value > math.MaxUint32 {
		return 0, malformedf("variant index overflows uint32")
	}
	return uint32(value), nil
}
