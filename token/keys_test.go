package token

import (
	"errors"
	"testing"
)

func TestPairFor(t *testing.T) {
	pair, err := PairFor("HS256")
	if err != nil {
		t.Fatalf("PairFor failed: %v", err)
	}
	if pair.MAC != "sha256" {
		t.Fatalf("unexpected MAC name %q", pair.MAC)
	}

	if _, err := PairFor("none"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm, got %v", err)
	}
	if _, err := PairFor("RS256"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("expected asymmetric algorithm to be rejected, got %v", err)
	}
}

func TestStaticKeyStoreValidation(t *testing.T) {
	if _, err := NewStaticKeyStore("HS999", "k1", []byte("s")); err == nil {
		t.Fatal("expected unknown algorithm to be rejected")
	}
	if _, err := NewStaticKeyStore("HS256", "", []byte("s")); err == nil {
		t.Fatal("expected empty key id to be rejected")
	}
	if _, err := NewStaticKeyStore("HS256", "k1", nil); err == nil {
		t.Fatal("expected empty secret to be rejected")
	}
}

func TestStaticKeyStoreRotation(t *testing.T) {
	store, err := NewStaticKeyStore("HS512", "k1", []byte("first"))
	if err != nil {
		t.Fatalf("NewStaticKeyStore failed: %v", err)
	}

	if err := store.Rotate("k2", []byte("second")); err != nil {
		t.Fatalf("Rotate failed: %v", err)
	}

	current := store.Current()
	if current.KeyID != "k2" {
		t.Fatalf("expected current kid k2, got %q", current.KeyID)
	}
	if current.Algorithm.Header != "HS512" {
		t.Fatalf("rotation changed algorithm to %q", current.Algorithm.Header)
	}

	// The retired key must keep resolving for in-flight tokens.
	secret, err := store.Secret("k1")
	if err != nil {
		t.Fatalf("retired key lookup failed: %v", err)
	}
	if string(secret) != "first" {
		t.Fatalf("unexpected retired secret %q", secret)
	}

	if _, err := store.Secret("k3"); !errors.Is(err, ErrUnknownKeyID) {
		t.Fatalf("expected ErrUnknownKeyID, got %v", err)
	}
}

func TestStaticKeyStoreRotateConflict(t *testing.T) {
	store, err := NewStaticKeyStore("HS256", "k1", []byte("first"))
	if err != nil {
		t.Fatalf("NewStaticKeyStore failed: %v", err)
	}
	if err := store.Rotate("k1", []byte("different")); err == nil {
		t.Fatal("expected rebinding a kid to a new secret to fail")
	}
}

func TestStaticKeyStoreRetire(t *testing.T) {
	store, err := NewStaticKeyStore("HS256", "k1", []byte("first"))
	if err != nil {
		t.Fatalf("NewStaticKeyStore failed: %v", err)
	}
	if err := store.Retire("k1"); err == nil {
		t.Fatal("expected retiring the current key to fail")
	}

	if err := store.Rotate("k2", []byte("second")); err != nil {
		t.Fatalf("Rotate failed: %v", err)
	}
	if err := store.Retire("k1"); err != nil {
		t.Fatalf("Retire failed: %v", err)
	}
	if _, err := store.Secret("k1"); !errors.Is(err, ErrUnknownKeyID) {
		t.Fatalf("expected retired key to be gone, got %v", err)
	}
}

func TestNewKeyID(t *testing.T) {
	a, b := NewKeyID(), NewKeyID()
	if a == "" || a == b {
		t.Fatalf("expected distinct non-empty key ids, got %q and %q", a, b)
	}
}
