package token

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// AlgorithmPair names the signing algorithm two ways: the identifier the
// token header advertises and the MAC family behind it. Issuer and
// Parser key everything off Header; MAC is informational, for interop
// tooling that wants the hash family by name.
type AlgorithmPair struct {
	Header string
	MAC    string
}

// The supported header algorithms and their MAC families. The wire
// format is symmetric-key only, so nothing beyond HMAC appears here.
var algorithmPairs = map[string]string{
	"HS256": "sha256",
	"HS384": "sha384",
	"HS512": "sha512",
}

// PairFor resolves the [AlgorithmPair] for a header algorithm name.
func PairFor(headerAlg string) (AlgorithmPair, error) {
	mac, ok := algorithmPairs[headerAlg]
	if !ok {
		return AlgorithmPair{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, headerAlg)
	}
	return AlgorithmPair{Header: headerAlg, MAC: mac}, nil
}

// SigningKey identifies the key material an [Issuer] signs with: the kid
// embedded in token headers plus the algorithm pair. The secret itself
// stays inside the [KeyStore].
type SigningKey struct {
	KeyID     string
	Algorithm AlgorithmPair
}

// KeyStore supplies the current signing key and resolves secrets by key
// ID. Secret must keep resolving retired key IDs for as long as tokens
// signed under them may still be in flight.
type KeyStore interface {
	Current() SigningKey
	Secret(keyID string) ([]byte, error)
}

// StaticKeyStore is an in-memory [KeyStore] with rotation support. All
// keys share one algorithm pair; rotation introduces a new current
// secret while retaining old ones for verification.
type StaticKeyStore struct {
	mu      sync.RWMutex
	pair    AlgorithmPair
	current string
	secrets map[string][]byte
}

// NewStaticKeyStore creates a store signing with the given header
// algorithm under the given key ID.
func NewStaticKeyStore(headerAlg, keyID string, secret []byte) (*StaticKeyStore, error) {
	pair, err := PairFor(headerAlg)
	if err != nil {
		return nil, err
	}
	if keyID == "" {
		return nil, errors.New("key id must not be empty")
	}
	if len(secret) == 0 {
		return nil, errors.New("secret must not be empty")
	}
	return &StaticKeyStore{
		pair:    pair,
		current: keyID,
		secrets: map[string][]byte{keyID: secret},
	}, nil
}

// Current returns the signing key new tokens are minted under.
func (s *StaticKeyStore) Current() SigningKey {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return SigningKey{KeyID: s.current, Algorithm: s.pair}
}

// Secret resolves the secret for a key ID, current or retired.
func (s *StaticKeyStore) Secret(keyID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	secret, ok := s.secrets[keyID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKeyID, keyID)
	}
	return secret, nil
}

// Rotate makes keyID the current signing key. The previous key stays
// resolvable so tokens it signed keep verifying until they expire.
func (s *StaticKeyStore) Rotate(keyID string, secret []byte) error {
	if keyID == "" {
		return errors.New("key id must not be empty")
	}
	if len(secret) == 0 {
		return errors.New("secret must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.secrets[keyID]; ok && string(existing) != string(secret) {
		return fmt.Errorf("key id %q already bound to a different secret", keyID)
	}
	s.secrets[keyID] = secret
	s.current = keyID
	return nil
}

// Retire drops a key ID from the store. Tokens signed under it stop
// verifying immediately; the current key cannot be retired.
func (s *StaticKeyStore) Retire(keyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if keyID == s.current {
		return errors.New("cannot retire the current signing key")
	}
	delete(s.secrets, keyID)
	return nil
}

// NewKeyID generates a fresh key identifier for rotation.
func NewKeyID() string {
	return uuid.NewString()
}
