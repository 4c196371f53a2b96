package lexcode

// Text and byte strings are variable-length, so their encodings must be
// escaped and terminated to keep one encoding from being the prefix of
// another. A single sentinel byte S does both jobs: an S in the data is
// written as S 0x01, and the field ends with S 0x00. On decode, any other
// byte after an S is malformed.
//
// An escaped sentinel S 0x01 sorts relative to ordinary bytes exactly as
// the sentinel itself would, and sorts above the terminator S 0x00, so
// ordinary data compares in its natural byte order and a string sorts
// before its extension by the sentinel or anything above it.
//
// Text uses sentinel 0x00: nothing sorts below it, so a text string also
// sorts before every longer text it prefixes, and 0x00 appears in UTF-8
// only as the NUL character, so escaping almost never expands text.
// Byte strings have no byte to spare and use 0x7F, giving up the prefix
// guarantee for extensions whose next byte is below the sentinel.
const (
	textSentinel  byte = 0x00
	bytesSentinel byte = 0x7F

	escEnd     byte = 0x00
	escLiteral byte = 0x01
)

func appendEscaped[T []byte | string](buf []byte, value T, sentinel byte) []byte {
	for i := 0; i < len(value); i++ {
		if b := value[i]; b == sentinel {
			buf = append(buf, sentinel, escLiteral)
		} else {
			buf = append(buf, b)
		}
	}
	return append(buf, sentinel, escEnd)
}

// getEscaped unescapes buf up to and including the terminator,
// returning the data and the bytes following the terminator.
func getEscaped(buf []byte, sentinel byte) ([]byte, []byte, error) {
	out := make([]byte, 0, len(buf))
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != sentinel {
			out = append(out, b)
			continue
		}
		i++
		if i == len(buf) {
			return nil, buf, ErrUnexpectedEOF
		}
		switch buf[i] {
		case escEnd:
			return out, buf[i+1:], nil
		case escLiteral:
			out = append(out, sentinel)
		default:
			return nil, buf, malformedf("byte %#02x after sentinel %#02x", buf[i], sentinel)
		}
	}
	return nil, buf, ErrUnexpectedEOF
}
