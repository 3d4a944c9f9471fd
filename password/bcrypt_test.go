package password

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func newTestBcrypt(t *testing.T) *Bcrypt {
	t.Helper()

	hasher, err := NewBcrypt(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewBcrypt failed: %v", err)
	}
	return hasher
}

func TestBcryptHashAndVerify(t *testing.T) {
	hasher := newTestBcrypt(t)

	hash, err := hasher.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Fatalf("unexpected hash prefix: %s", hash)
	}

	ok, err := hasher.Verify("correct-password", hash)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !ok {
		t.Fatal("expected matching password to verify")
	}
}

func TestBcryptVerifyMismatchIsNotAnError(t *testing.T) {
	hasher := newTestBcrypt(t)

	hash, err := hasher.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	ok, err := hasher.Verify("wrong-password", hash)
	if err != nil {
		t.Fatalf("mismatch surfaced as error: %v", err)
	}
	if ok {
		t.Fatal("expected wrong password to fail verification")
	}
}

func TestBcryptVerifyMalformedHash(t *testing.T) {
	hasher := newTestBcrypt(t)

	if _, err := hasher.Verify("anything", "not a bcrypt hash"); err == nil {
		t.Fatal("expected malformed hash to error")
	}
}

func TestBcryptDummyVerifyAlwaysFalse(t *testing.T) {
	hasher := newTestBcrypt(t)

	for range 3 {
		if hasher.DummyVerify() {
			t.Fatal("dummy verification must never succeed")
		}
	}
}

func TestBcryptCostBounds(t *testing.T) {
	if _, err := NewBcrypt(bcrypt.MaxCost + 1); err == nil {
		t.Fatal("expected out-of-range cost to be rejected")
	}
	if _, err := NewBcrypt(0); err != nil {
		t.Fatalf("expected zero cost to select the default, got %v", err)
	}
}

func TestBcryptEmptyPassword(t *testing.T) {
	hasher := newTestBcrypt(t)

	if _, err := hasher.Hash(""); err == nil {
		t.Fatal("expected empty password to be rejected")
	}
}
