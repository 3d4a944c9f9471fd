package token

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer mints signed tokens for authenticated subjects. It consults the
// [KeyStore] on every call, so key rotation takes effect without
// rebuilding the issuer.
type Issuer struct {
	keys   KeyStore
	policy Policy
	now    func() time.Time
}

// NewIssuer creates an Issuer bound to a key store and a validated
// time-window policy.
func NewIssuer(keys KeyStore, policy Policy) (*Issuer, error) {
	if keys == nil {
		return nil, fmt.Errorf("issuer requires a key store")
	}
	if err := policy.validate(); err != nil {
		return nil, err
	}
	return &Issuer{
		keys:   keys,
		policy: policy,
		now:    time.Now,
	}, nil
}

// Generate builds and signs a token for the subject. The header carries
// the current key's algorithm and kid; the payload carries the subject
// and the policy's nbf/exp window anchored at now.
func (i *Issuer) Generate(sub Subject) (string, error) {
	key := i.keys.Current()

	method := jwt.GetSigningMethod(key.Algorithm.Header)
	if method == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, key.Algorithm.Header)
	}
	secret, err := i.keys.Secret(key.KeyID)
	if err != nil {
		return "", err
	}

	nbf, exp := i.policy.Window(i.now())

	headerJSON, err := json.Marshal(Header{
		Type:      "JWT",
		Algorithm: key.Algorithm.Header,
		KeyID:     key.KeyID,
	})
	if err != nil {
		return "", err
	}
	claimsJSON, err := json.Marshal(Claims{
		ID:        sub.ID,
		Name:      sub.Name,
		Role:      sub.Role,
		NotBefore: nbf,
		Expiry:    exp,
	})
	if err != nil {
		return "", err
	}

	signingInput := EncodeSegment(headerJSON) + "." + EncodeSegment(claimsJSON)
	mac, err := method.Sign(signingInput, secret)
	if err != nil {
		return "", err
	}

	return signingInput + "." + EncodeSegment(mac), nil
}
