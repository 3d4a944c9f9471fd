package authcore

import "errors"

var (
	// ErrFlowNotReady is returned when a Flow method is called before the
	// flow was fully constructed through [Builder.Build].
	ErrFlowNotReady = errors.New("flow not initialized")
	// ErrUserNotFound is the sentinel a [UserStore] returns when no record
	// matches the submitted identifier. The flow never surfaces it to the
	// end user; it collapses into the generic denial message.
	ErrUserNotFound = errors.New("user not found")
	// ErrLoginRateLimited is returned when the login attempt budget for an
	// identifier or client IP is exhausted.
	ErrLoginRateLimited = errors.New("login rate limited")
	// ErrInvalidCredentials is the sentinel behind every generic denial.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountUnconfirmed is the sentinel behind the unconfirmed-account
	// denial.
	ErrAccountUnconfirmed = errors.New("account unconfirmed")
)

// User-facing denial messages. "Invalid credentials" is deliberately shared
// by the absent-user and wrong-password outcomes so a caller cannot
// enumerate accounts from the response. The confirmation message is more
// specific: once that branch is reached the account's existence is already
// implied by the attempt itself.
const (
	MsgInvalidCredentials   = "Invalid credentials"
	MsgConfirmationRequired = "You have to confirm your email address before continuing."
	MsgTooManyAttempts      = "Too many failed login attempts. Try again later."
)
