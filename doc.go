// Package authcore implements credential verification and signed token
// issuance as a framework-agnostic core. It receives the submitted fields
// of a login request, locates the user through a caller-supplied
// [UserStore], verifies the password without revealing whether the
// identifier exists, and either produces a signed bearer token, signals
// that a second factor is pending, or produces a denial reason.
//
// The package is designed for concurrent server workloads: Flow methods
// are safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// authcore is the public surface. It exposes [Flow], [Builder], [Config],
// the login [Outcome] variants, and audit/metrics value types. Token
// encoding, signing, and verification live in the token subpackage;
// password hashing in the password subpackage. Rate limiting and audit
// dispatch live under internal/ and are never exported.
//
// # What this package must NOT do
//
//   - Store or transport sessions. Where a token ends up (cookie, header,
//     body) is the caller's decision, expressed through [StorageMode] and
//     a [TokenAttacher].
//   - Persist user records. [UserStore] is read-only from the core's
//     perspective within a single login attempt.
//   - Perform I/O outside of Flow methods; construction via Builder is
//     allocation-only until Build.
//
// # Timing contract
//
// Login must perform the same shape of password-hash work whether the
// identifier resolves to a user or not. The absent-user path runs a dummy
// hash comparison against a fixed reference so an observer cannot
// distinguish "no such user" from "wrong password".
package authcore
