// Package password provides the hash implementations behind the core's
// PasswordHasher contract: bcrypt (the default) and argon2id in PHC
// string format. Both verify in constant time and expose a DummyVerify
// that performs a full-cost comparison against fixed reference material,
// always reporting false. The login flow runs DummyVerify when no user
// record exists so absent-user and wrong-password denials cost the same.
package password
