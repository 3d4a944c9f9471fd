package authcore

import (
	"testing"
	"time"
)

// stubHasher counts comparisons so tests can observe that the dummy path
// runs exactly when no user record exists.
type stubHasher struct {
	verifyCalls int
	dummyCalls  int
}

func (s *stubHasher) Hash(password string) (string, error) {
	return "stub:" + password, nil
}

func (s *stubHasher) Verify(password, encodedHash string) (bool, error) {
	s.verifyCalls++
	return "stub:"+password == encodedHash, nil
}

func (s *stubHasher) DummyVerify() bool {
	s.dummyCalls++
	return false
}

func confirmedAt() *time.Time {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &ts
}

func TestVerifyAbsentUserRunsDummyCheck(t *testing.T) {
	hasher := &stubHasher{}
	verifier := NewVerifier(hasher, nil)

	decision := verifier.Verify(nil, "whatever")

	if decision.Kind != DecisionDenied || decision.Reason != MsgInvalidCredentials {
		t.Fatalf("unexpected decision %+v", decision)
	}
	if hasher.dummyCalls != 1 {
		t.Fatalf("expected exactly one dummy comparison, got %d", hasher.dummyCalls)
	}
	if hasher.verifyCalls != 0 {
		t.Fatalf("expected no real comparison, got %d", hasher.verifyCalls)
	}
}

func TestVerifyUnconfirmedSkipsPasswordCheck(t *testing.T) {
	hasher := &stubHasher{}
	verifier := NewVerifier(hasher, nil)

	user := &UserRecord{ID: "1", PasswordHash: "stub:right"}

	// Even the correct password is denied before comparison.
	decision := verifier.Verify(user, "right")

	if decision.Kind != DecisionDenied || decision.Reason != MsgConfirmationRequired {
		t.Fatalf("unexpected decision %+v", decision)
	}
	if hasher.verifyCalls != 0 || hasher.dummyCalls != 0 {
		t.Fatalf("expected no hash comparison, got verify=%d dummy=%d", hasher.verifyCalls, hasher.dummyCalls)
	}
}

func TestVerifyWrongPassword(t *testing.T) {
	hasher := &stubHasher{}
	verifier := NewVerifier(hasher, nil)

	user := &UserRecord{ID: "1", PasswordHash: "stub:right", ConfirmedAt: confirmedAt()}
	decision := verifier.Verify(user, "wrong")

	if decision.Kind != DecisionDenied || decision.Reason != MsgInvalidCredentials {
		t.Fatalf("unexpected decision %+v", decision)
	}
	if hasher.verifyCalls != 1 {
		t.Fatalf("expected one real comparison, got %d", hasher.verifyCalls)
	}
}

func TestVerifyMatch(t *testing.T) {
	hasher := &stubHasher{}
	verifier := NewVerifier(hasher, nil)

	user := &UserRecord{ID: "1", PasswordHash: "stub:right", ConfirmedAt: confirmedAt()}
	decision := verifier.Verify(user, "right")

	if decision.Kind != DecisionAuthenticated {
		t.Fatalf("unexpected decision %+v", decision)
	}
	if decision.User != user {
		t.Fatal("decision must carry the verified record")
	}
}

func TestVerifyHashAccessor(t *testing.T) {
	hasher := &stubHasher{}
	verifier := NewVerifier(hasher, func(u UserRecord) string { return "stub:alt" })

	user := &UserRecord{ID: "1", PasswordHash: "stub:right", ConfirmedAt: confirmedAt()}

	if d := verifier.Verify(user, "alt"); d.Kind != DecisionAuthenticated {
		t.Fatalf("expected accessor-selected hash to verify, got %+v", d)
	}
	if d := verifier.Verify(user, "right"); d.Kind != DecisionDenied {
		t.Fatalf("expected stored-field password to be ignored, got %+v", d)
	}
}
