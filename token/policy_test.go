package token

import (
	"testing"
	"time"
)

func TestNewPolicyRejectsNegativeDelay(t *testing.T) {
	if _, err := NewPolicy(-1, 30); err == nil {
		t.Fatal("expected negative delay to be rejected")
	}
}

func TestNewPolicyRejectsZeroValidity(t *testing.T) {
	if _, err := NewPolicy(0, 0); err == nil {
		t.Fatal("expected zero validity to be rejected")
	}
	if _, err := NewPolicy(0, -5); err == nil {
		t.Fatal("expected negative validity to be rejected")
	}
}

func TestParsePolicyRejectsNonInteger(t *testing.T) {
	if _, err := ParsePolicy("five", "30"); err == nil {
		t.Fatal("expected non-integer delay to be rejected")
	}
	if _, err := ParsePolicy("5", "half an hour"); err == nil {
		t.Fatal("expected non-integer validity to be rejected")
	}
}

func TestParsePolicyAccepting(t *testing.T) {
	policy, err := ParsePolicy("5", "30")
	if err != nil {
		t.Fatalf("ParsePolicy failed: %v", err)
	}
	if policy.NotBeforeDelayMinutes() != 5 || policy.ValidityMinutes() != 30 {
		t.Fatalf("unexpected policy: %+v", policy)
	}
}

func TestWindowInvariant(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)

	cases := []struct {
		delay, validity int
	}{
		{0, 1},
		{0, 60},
		{5, 30},
		{1440, 10080},
	}
	for _, tc := range cases {
		policy, err := NewPolicy(tc.delay, tc.validity)
		if err != nil {
			t.Fatalf("NewPolicy(%d, %d) failed: %v", tc.delay, tc.validity, err)
		}

		nbf, exp := policy.Window(now)
		if nbf != now.UnixMilli()+int64(tc.delay)*60_000 {
			t.Fatalf("delay %d: nbf = %d", tc.delay, nbf)
		}
		if exp-nbf != int64(tc.validity)*60_000 {
			t.Fatalf("validity %d: exp-nbf = %d", tc.validity, exp-nbf)
		}
		if nbf >= exp {
			t.Fatalf("window invariant violated: nbf %d >= exp %d", nbf, exp)
		}
	}
}
