package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

const millisPerMinute = 60_000

// Policy bounds a token's validity window in whole minutes. Both values
// are validated on construction, never at issuance time: a Policy in
// hand is always well-formed and nbf < exp holds for every token minted
// under it.
type Policy struct {
	notBeforeDelayMinutes int
	validityMinutes       int
}

// NewPolicy builds a Policy from a not-before delay and a validity span.
// The delay must be non-negative and the validity at least one minute.
// A violation is a configuration error and should fail startup.
func NewPolicy(notBeforeDelayMinutes, validityMinutes int) (Policy, error) {
	if notBeforeDelayMinutes < 0 {
		return Policy{}, fmt.Errorf("not-before delay must be non-negative, got %d", notBeforeDelayMinutes)
	}
	if validityMinutes < 1 {
		return Policy{}, fmt.Errorf("validity must be at least one minute, got %d", validityMinutes)
	}
	return Policy{
		notBeforeDelayMinutes: notBeforeDelayMinutes,
		validityMinutes:       validityMinutes,
	}, nil
}

// ParsePolicy builds a Policy from string configuration values. Inputs
// that are not integers fail here, before any request is served.
func ParsePolicy(notBeforeDelayMinutes, validityMinutes string) (Policy, error) {
	delay, err := strconv.Atoi(notBeforeDelayMinutes)
	if err != nil {
		return Policy{}, fmt.Errorf("not-before delay must be an integer, got %q", notBeforeDelayMinutes)
	}
	validity, err := strconv.Atoi(validityMinutes)
	if err != nil {
		return Policy{}, fmt.Errorf("validity must be an integer, got %q", validityMinutes)
	}
	return NewPolicy(delay, validity)
}

// Window computes the (nbf, exp) pair in epoch milliseconds for a token
// minted at now.
func (p Policy) Window(now time.Time) (nbf, exp int64) {
	nbf = now.UnixMilli() + int64(p.notBeforeDelayMinutes)*millisPerMinute
	exp = nbf + int64(p.validityMinutes)*millisPerMinute
	return nbf, exp
}

// ValidityMinutes reports the configured validity span.
func (p Policy) ValidityMinutes() int { return p.validityMinutes }

// NotBeforeDelayMinutes reports the configured activation delay.
func (p Policy) NotBeforeDelayMinutes() int { return p.notBeforeDelayMinutes }

var errZeroPolicy = errors.New("zero policy: use NewPolicy or ParsePolicy")

// validate guards against a zero-value Policy smuggled past the
// constructors.
func (p Policy) validate() error {
	if p.validityMinutes < 1 {
		return errZeroPolicy
	}
	return nil
}
