package lexcode

// Things that need to be exported for testing, but should not be part of the
// public API. The identifiers are in the lexcode package, but the filename
// ends in _test.go, preventing their inclusion in the public API.

const (
	TestingTextSentinel  = textSentinel
	TestingBytesSentinel = bytesSentinel

	TestingEndMarker  = endMarker
	TestingElemMarker = elemMarker

	TestingMaxUvarintLen = maxUvarintLen
)

// Used by white-box table tests.
var (
	TestingUvarintBase = uvarintBase
	TestingIvarintBase = ivarintBase
)
