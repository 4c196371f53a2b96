/*
Package lexcode implements a binary encoding of typed values whose unsigned
byte-wise lexicographical order is the same as the natural order of the values.
Encoded values are intended to be used as keys in ordered key-value stores,
where the store sorts by raw bytes and the application needs that sort
to follow the logical order of structured composite keys.

The two entry points are [Encoder], which appends encoded values to a growable
byte buffer, and [Decoder], which reads values back from a byte slice while
advancing a cursor. A driver encodes a composite key by emitting its fields in
declared order, and decodes it by reading the same shapes in the same order.
The format is not self-describing; the decoder must know the expected shapes.

Integers use a variable-length encoding whose length is carried in the leading
unary run of 1-bits of the header, so small values are short and the same
numeric value encodes to the same bytes regardless of its declared width.
[Encoder.Uint] and [Encoder.Int] therefore serve every integer width up to 64
bits, and [Encoder.Uint128] and [Encoder.Int128] cover the full 128-bit range.

Variable-length data is escaped and terminated so that no encoding is a strict
prefix of another while preserving order:

  - Text is escaped with the 0x00 sentinel ([Encoder.String]).
  - Byte strings are escaped with the 0x7F sentinel ([Encoder.Bytes]).
  - Sequences and maps mark each element with 0x01 and end with 0x00
    ([Encoder.Elem], [Encoder.End], [Decoder.More]).

Fixed-arity composites (structs, tuples, fixed arrays) need no framing at all;
their fields are simply emitted in order.

Some orderings may be surprising. Text sorts by its UTF-8 bytes, which matches
code point order but not any locale's collation. A byte string sorts after
an extension of itself whose next byte is below 0x7F. Map entries are encoded in
the order the driver supplies them; supply them in key order if encoded maps
must sort meaningfully. The relative order of NaN floating-point encodings is
deterministic but meaningless.

Encoder methods cannot fail. Decoder methods return an error from a small
taxonomy: [ErrUnexpectedEOF], [ErrTrailingInput], or [ErrMalformed] (possibly
wrapped with detail). [MessageError] is for drivers to report mismatches;
the codec itself never returns one.

Encoders and Decoders hold no shared state; distinct instances are safe for
concurrent use.
*/
package lexcode

// Framing bytes for open-ended shapes. The element marker must be greater
// than the end marker so that a sequence that ends sorts before a sequence
// that continues, and both must be the two smallest byte values so that
// framing never sorts above data.
//
// The same two values serve as the option flags (none/some) and the boolean
// encodings (false/true); in every case the earlier value is the one that
// must sort first.
const (
	endMarker  byte = 0x00
	elemMarker byte = 0x01
)
