package authcore

import (
	"context"
	"io"
	"time"

	internalaudit "github.com/softwinter/authcore/internal/audit"
)

// StorageMode tells the caller how an issued token is expected to be
// stored. The core never writes cookies itself; the mode is carried on
// the outcome so the surrounding transport layer can act on it.
type StorageMode uint8

const (
	// StorageCookie asks the caller to attach the token as a cookie.
	StorageCookie StorageMode = iota
	// StorageCaller leaves token placement entirely to the caller.
	StorageCaller
)

// UserRecord is the account record the core borrows from a [UserStore]
// for the duration of one login attempt. The core only reads it.
type UserRecord struct {
	ID           string
	Name         string
	Role         string
	PasswordHash string
	ConfirmedAt  *time.Time
	OtpRequired  bool
}

// UserStore locates user records. FindUser returns [ErrUserNotFound]
// (possibly wrapped) when no record matches the identifier under the
// given field name.
type UserStore interface {
	FindUser(ctx context.Context, identifier, fieldName string) (*UserRecord, error)
}

// PasswordHasher verifies submitted passwords against stored hashes.
// Verify must compare in constant time. DummyVerify must perform the
// same shape of work as Verify against a fixed reference and always
// report false; the flow runs it when no user record exists so the two
// denial paths are indistinguishable by timing.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
	DummyVerify() bool
}

// Outcome is one of the four terminal results of a login attempt:
// [AuthError], [AuthInfo], [OtpRequired], or [TokenIssued].
type Outcome interface {
	loginOutcome()
}

// AuthError carries a denial reason to surface to the end user, verbatim.
type AuthError struct {
	Message string
}

// AuthInfo carries an informational message for the end user. The default
// flow never produces it; custom [TokenAttacher] strategies may.
type AuthInfo struct {
	Message string
}

// OtpRequired signals that the password checked out but a second factor
// is outstanding. No token has been issued.
type OtpRequired struct {
	Storage   StorageMode
	FieldName string
	UserID    string
}

// TokenIssued carries a signed token produced for an authenticated user.
type TokenIssued struct {
	Storage   StorageMode
	FieldName string
	Token     string
}

func (AuthError) loginOutcome()   {}
func (AuthInfo) loginOutcome()    {}
func (OtpRequired) loginOutcome() {}
func (TokenIssued) loginOutcome() {}

// TokenAttacher converts a freshly issued token into the terminal
// [Outcome] of the attempt. The default attacher wraps the token in
// [TokenIssued]; callers can substitute a strategy that writes the token
// somewhere and returns [AuthInfo] instead.
type TokenAttacher func(storage StorageMode, fieldName, token string) Outcome

// AuditEvent is a structured audit record emitted by the flow.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the flow's audit dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer], one object per line.
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}
