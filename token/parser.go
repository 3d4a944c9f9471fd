package token

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Parser is the verification sibling of [Issuer]: same codec, same
// millisecond window semantics, kid lookup through the same [KeyStore].
// The header algorithm must match the store's configured pair; nothing
// the token says can widen the accepted algorithm set.
type Parser struct {
	keys   KeyStore
	leeway time.Duration
	now    func() time.Time
}

// NewParser creates a Parser. leeway loosens the nbf/exp checks to absorb
// clock skew between issuer and verifier; zero means exact.
func NewParser(keys KeyStore, leeway time.Duration) (*Parser, error) {
	if keys == nil {
		return nil, fmt.Errorf("parser requires a key store")
	}
	if leeway < 0 {
		return nil, fmt.Errorf("leeway must be non-negative")
	}
	return &Parser{
		keys:   keys,
		leeway: leeway,
		now:    time.Now,
	}, nil
}

// Parse verifies a token's structure, signature, and validity window and
// returns its claims.
func (p *Parser) Parse(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", ErrTokenMalformed, len(parts))
	}

	headerJSON, err := DecodeSegment(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: header segment: %v", ErrTokenMalformed, err)
	}
	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, fmt.Errorf("%w: header json: %v", ErrTokenMalformed, err)
	}
	if header.Type != "JWT" {
		return nil, fmt.Errorf("%w: unexpected typ %q", ErrTokenMalformed, header.Type)
	}

	// Allow-list check before any crypto: the only acceptable algorithm is
	// the one the key store signs with.
	if header.Algorithm != p.keys.Current().Algorithm.Header {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, header.Algorithm)
	}
	method := jwt.GetSigningMethod(header.Algorithm)
	if method == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, header.Algorithm)
	}

	secret, err := p.keys.Secret(header.KeyID)
	if err != nil {
		return nil, err
	}

	mac, err := DecodeSegment(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: signature segment: %v", ErrTokenMalformed, err)
	}
	if err := method.Verify(parts[0]+"."+parts[1], mac, secret); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}

	claimsJSON, err := DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: payload segment: %v", ErrTokenMalformed, err)
	}
	var claims Claims
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return nil, fmt.Errorf("%w: payload json: %v", ErrTokenMalformed, err)
	}

	nowMillis := p.now().UnixMilli()
	leewayMillis := p.leeway.Milliseconds()
	if claims.NotBefore > nowMillis+leewayMillis {
		return nil, ErrTokenNotYetValid
	}
	if nowMillis >= claims.Expiry+leewayMillis {
		return nil, ErrTokenExpired
	}

	return &claims, nil
}
