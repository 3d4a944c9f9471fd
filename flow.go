package authcore

import (
	"context"
	"errors"
	"time"

	internalaudit "github.com/softwinter/authcore/internal/audit"
	"github.com/softwinter/authcore/internal/rate"
	"github.com/softwinter/authcore/token"
)

const (
	auditEventLoginSuccess     = "login.success"
	auditEventLoginFailure     = "login.failure"
	auditEventLoginRateLimited = "login.rate_limited"
	auditEventOtpRequired      = "login.otp_required"
	auditEventTokenIssued      = "token.issued"
)

// Flow orchestrates one login attempt end to end: extract the submitted
// fields, locate the user, verify the password, then issue a token,
// defer for a second factor, or deny. Construct through [Builder.Build];
// a built Flow is safe for concurrent use.
type Flow struct {
	config   Config
	users    UserStore
	verifier *Verifier
	issuer   *token.Issuer
	limiter  *rate.Limiter
	audit    *internalaudit.Dispatcher
	metrics  *Metrics
}

// Login runs the attempt described by the raw request parameters and
// returns one of the four terminal outcomes. The error return is
// reserved for infrastructure and configuration failures (throttle
// backend down, signing misconfiguration); authentication denials are
// data, carried in the [AuthError] outcome.
func (f *Flow) Login(ctx context.Context, params map[string]string) (Outcome, error) {
	if f == nil || f.users == nil || f.verifier == nil || f.issuer == nil {
		return nil, ErrFlowNotReady
	}

	ip := clientIPFromContext(ctx)

	fieldName, identifier, pass, err := f.config.Identifier.Select(params)
	if err != nil {
		f.metrics.inc(MetricLoginFailure)
		f.emitAudit(ctx, auditEventLoginFailure, false, "", ErrInvalidCredentials, map[string]string{
			"reason": "selector_failed",
		})
		return AuthError{Message: MsgInvalidCredentials}, nil
	}

	if f.limiter != nil {
		if err := f.limiter.Check(ctx, identifier, ip); err != nil {
			if errors.Is(err, rate.ErrRateLimited) {
				return f.rateLimited(ctx, identifier, fieldName), nil
			}
			return nil, err
		}
	}

	user, err := f.users.FindUser(ctx, identifier, fieldName)
	lookupFailed := ""
	if err != nil {
		// A store error and an absent user take the same verification
		// path; only the audit record tells them apart.
		if !errors.Is(err, ErrUserNotFound) {
			lookupFailed = err.Error()
		}
		user = nil
	}
	if user == nil {
		f.metrics.inc(MetricDummyCheck)
	}

	decision := f.verifier.Verify(user, pass)
	if decision.Kind == DecisionAuthenticated && decision.User.OtpRequired {
		decision = Decision{Kind: DecisionOtpPending, User: decision.User}
	}

	switch decision.Kind {
	case DecisionAuthenticated:
		return f.issueToken(ctx, decision.User, identifier, fieldName, ip)

	case DecisionOtpPending:
		f.metrics.inc(MetricOtpRequired)
		f.emitAudit(ctx, auditEventOtpRequired, true, decision.User.ID, nil, map[string]string{
			"identifier": identifier,
			"field":      fieldName,
		})
		return OtpRequired{
			Storage:   f.config.Storage,
			FieldName: fieldName,
			UserID:    decision.User.ID,
		}, nil

	case DecisionDenied:
		if f.limiter != nil {
			if err := f.limiter.Increment(ctx, identifier, ip); err != nil {
				if errors.Is(err, rate.ErrRateLimited) {
					return f.rateLimited(ctx, identifier, fieldName), nil
				}
				return nil, err
			}
		}
		meta := map[string]string{
			"identifier": identifier,
			"field":      fieldName,
		}
		if lookupFailed != "" {
			meta["store_error"] = lookupFailed
		}
		userID := ""
		if decision.User != nil {
			userID = decision.User.ID
		}
		f.metrics.inc(MetricLoginFailure)
		f.emitAudit(ctx, auditEventLoginFailure, false, userID, errors.New(decision.Reason), meta)
		return AuthError{Message: decision.Reason}, nil

	default:
		// Unknown decision shapes deny generically.
		f.metrics.inc(MetricLoginFailure)
		f.emitAudit(ctx, auditEventLoginFailure, false, "", ErrInvalidCredentials, nil)
		return AuthError{Message: MsgInvalidCredentials}, nil
	}
}

func (f *Flow) issueToken(ctx context.Context, user *UserRecord, identifier, fieldName, ip string) (Outcome, error) {
	signed, err := f.issuer.Generate(token.Subject{
		ID:   user.ID,
		Name: user.Name,
		Role: user.Role,
	})
	if err != nil {
		// Signing failures are configuration-class, never translated into
		// a user-facing denial.
		f.emitAudit(ctx, auditEventLoginFailure, false, user.ID, err, map[string]string{
			"identifier": identifier,
			"reason":     "token_generation",
		})
		return nil, err
	}

	if f.limiter != nil {
		if err := f.limiter.Reset(ctx, identifier, ip); err != nil {
			return nil, err
		}
	}

	f.metrics.inc(MetricTokenIssued)
	f.metrics.inc(MetricLoginSuccess)
	f.emitAudit(ctx, auditEventLoginSuccess, true, user.ID, nil, map[string]string{
		"identifier": identifier,
		"field":      fieldName,
	})
	f.emitAudit(ctx, auditEventTokenIssued, true, user.ID, nil, nil)

	if f.config.TokenAttach != nil {
		return f.config.TokenAttach(f.config.Storage, fieldName, signed), nil
	}
	return TokenIssued{
		Storage:   f.config.Storage,
		FieldName: fieldName,
		Token:     signed,
	}, nil
}

func (f *Flow) rateLimited(ctx context.Context, identifier, fieldName string) Outcome {
	f.metrics.inc(MetricLoginRateLimited)
	f.emitAudit(ctx, auditEventLoginRateLimited, false, "", ErrLoginRateLimited, map[string]string{
		"identifier": identifier,
		"field":      fieldName,
	})
	return AuthError{Message: MsgTooManyAttempts}
}

func (f *Flow) emitAudit(ctx context.Context, eventType string, success bool, userID string, cause error, metadata map[string]string) {
	if f.audit == nil {
		return
	}
	event := internalaudit.Event{
		Timestamp: time.Now(),
		EventType: eventType,
		UserID:    userID,
		IP:        clientIPFromContext(ctx),
		Success:   success,
		Metadata:  metadata,
	}
	if cause != nil {
		event.Error = cause.Error()
	}
	f.audit.Emit(ctx, event)
}

// Metrics returns a snapshot of the flow's counters.
func (f *Flow) Metrics() MetricsSnapshot {
	return f.metrics.Snapshot()
}

// AuditDropped reports how many audit events were dropped by a full
// buffer since the flow was built.
func (f *Flow) AuditDropped() uint64 {
	return f.audit.Dropped()
}

// Close drains and stops the audit dispatcher. The flow must not be
// used after Close.
func (f *Flow) Close() {
	f.audit.Close()
}
