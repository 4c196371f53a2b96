package lexcode

import (
	"errors"
	"fmt"
)

// Errors returned by Decoder methods.
// Detailed malformed-input errors wrap [ErrMalformed],
// so errors.Is(err, ErrMalformed) reports whether bytes violated the format.
var (
	ErrUnexpectedEOF = errors.New("lexcode: unexpected end of input")
	ErrTrailingInput = errors.New("lexcode: trailing bytes after top-level value")
	ErrMalformed     = errors.New("lexcode: malformed encoding")
)

func malformedf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrMalformed}, args...)...)
}

// A MessageError reports a mismatch detected by the driver of an Encoder or
// Decoder, such as being asked to encode a shape this format does not support.
// The codec itself never returns a MessageError.
type MessageError string

func (e MessageError) Error() string {
	return "lexcode: " + string(e)
}
