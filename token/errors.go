package token

import "errors"

var (
	// ErrUnknownAlgorithm is returned when a header names an algorithm the
	// key store does not sign with.
	ErrUnknownAlgorithm = errors.New("unknown signing algorithm")
	// ErrUnknownKeyID is returned when a kid does not resolve to a secret.
	ErrUnknownKeyID = errors.New("unknown key id")
	// ErrTokenMalformed is returned when a token is not exactly three
	// decodable segments with a JWT-typed header.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrSignatureInvalid is returned when the MAC does not verify.
	ErrSignatureInvalid = errors.New("token signature invalid")
	// ErrTokenNotYetValid is returned when now precedes the nbf claim.
	ErrTokenNotYetValid = errors.New("token not yet valid")
	// ErrTokenExpired is returned when the exp claim has passed.
	ErrTokenExpired = errors.New("token expired")
)
