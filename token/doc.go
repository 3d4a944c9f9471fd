// Package token builds and verifies signed, URL-safe bearer tokens.
//
// A token is three unpadded base64url segments joined by dots:
//
//	base64url(header_json) "." base64url(payload_json) "." base64url(mac)
//
// The header carries {typ, alg, kid}; the kid identifies which secret in
// a rotated key set signed the token. The payload carries the subject's
// id, name, and role plus a not-before/expiry window in epoch
// milliseconds. [Issuer] signs, [Parser] is its verification sibling.
package token
