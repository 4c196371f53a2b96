package lexcode_test

// This file contains things that help in writing codec tests,
// it doesn't have any tests itself.

import (
	"bytes"
	"testing"

	"github.com/phiryll/lexcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase[T any] struct {
	name  string
	value T
	data  []byte
}

func concat(slices ...[]byte) []byte {
	var result []byte
	for _, s := range slices {
		result = append(result, s...)
	}
	return result
}

func encode(emit func(*lexcode.Encoder)) []byte {
	var e lexcode.Encoder
	emit(&e)
	return e.Buffer()
}

func encodeUint(value uint64) []byte {
	return encode(func(e *lexcode.Encoder) { e.Uint(value) })
}

func encodeUint128(value lexcode.Uint128) []byte {
	return encode(func(e *lexcode.Encoder) { e.Uint128(value) })
}

func encodeInt(value int64) []byte {
	return encode(func(e *lexcode.Encoder) { e.Int(value) })
}

func encodeInt128(value lexcode.Int128) []byte {
	return encode(func(e *lexcode.Encoder) { e.Int128(value) })
}

func encodeString(value string) []byte {
	return encode(func(e *lexcode.Encoder) { e.String(value) })
}

func encodeBytes(value []byte) []byte {
	return encode(func(e *lexcode.Encoder) { e.Bytes(value) })
}

// decodeAll decodes one value from data with read,
// requiring that it succeed and consume all of data.
func decodeAll[T any](t *testing.T, data []byte, read func(*lexcode.Decoder) (T, error)) T {
	t.Helper()
	d := lexcode.NewDecoder(data)
	got, err := read(d)
	require.NoError(t, err)
	require.NoError(t, d.Finish())
	return got
}

// assertAscending requires that encodings already in ascending semantic order
// are in strictly ascending unsigned byte-wise order.
func assertAscending(t *testing.T, encodings [][]byte) {
	t.Helper()
	for i := 1; i < len(encodings); i++ {
		assert.Equal(t, -1, bytes.Compare(encodings[i-1], encodings[i]),
			"encoding %d (%X) should sort before encoding %d (%X)",
			i-1, encodings[i-1], i, encodings[i])
	}
}
