package authcore

// DecisionKind tags the outcome of credential verification.
type DecisionKind uint8

const (
	// DecisionDenied rejects the attempt with a user-facing reason.
	DecisionDenied DecisionKind = iota
	// DecisionAuthenticated accepts the password for the carried user.
	DecisionAuthenticated
	// DecisionOtpPending accepts the password but defers for a second
	// factor. Produced by the flow, not the verifier.
	DecisionOtpPending
)

// Decision is the tagged result of one verification. Exactly one is
// produced per login attempt and consumed immediately by the flow.
type Decision struct {
	Kind   DecisionKind
	User   *UserRecord
	Reason string
}

// Verifier decides whether a submitted password authenticates a located
// user record. It is a pure decision function: no side effects beyond
// the hash comparisons themselves.
type Verifier struct {
	hasher PasswordHasher
	hashOf func(UserRecord) string
}

// NewVerifier creates a Verifier using the given hasher and stored-hash
// accessor.
func NewVerifier(hasher PasswordHasher, hashOf func(UserRecord) string) *Verifier {
	if hashOf == nil {
		hashOf = func(u UserRecord) string { return u.PasswordHash }
	}
	return &Verifier{hasher: hasher, hashOf: hashOf}
}

// Verify authenticates password against user. A nil user means the
// identifier did not resolve; the verifier still performs a dummy hash
// comparison so that path costs the same as a wrong password, then
// denies with the generic message.
//
// The unconfirmed-account check runs before the password comparison and
// returns a more specific message: reaching that branch already implies
// the account exists, so the message discloses nothing new.
func (v *Verifier) Verify(user *UserRecord, password string) Decision {
	if user == nil {
		v.hasher.DummyVerify()
		return Decision{Kind: DecisionDenied, Reason: MsgInvalidCredentials}
	}

	if user.ConfirmedAt == nil {
		return Decision{Kind: DecisionDenied, Reason: MsgConfirmationRequired}
	}

	ok, err := v.hasher.Verify(password, v.hashOf(*user))
	if err != nil || !ok {
		return Decision{Kind: DecisionDenied, Reason: MsgInvalidCredentials}
	}

	return Decision{Kind: DecisionAuthenticated, User: user}
}
