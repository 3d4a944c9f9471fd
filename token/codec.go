package token

import "encoding/base64"

// EncodeSegment encodes data as URL-safe base64 with the right-side
// padding stripped. Every segment of a token goes through this; leaving
// padding in would break cross-implementation verification of the
// dot-delimited triplet.
func EncodeSegment(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeSegment is the inverse of [EncodeSegment]. It rejects padded or
// non-URL-safe input.
func DecodeSegment(segment string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(segment)
}
