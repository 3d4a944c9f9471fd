package token

// Header is the first token segment. Field order matters for byte-level
// reproducibility: encoding/json serializes struct fields in declaration
// order, so two issuers with the same inputs emit identical segments.
type Header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
	KeyID     string `json:"kid"`
}

// Subject is the minimal user identity baked into a token.
type Subject struct {
	ID   string
	Name string
	Role string
}

// Claims is the second token segment: the subject plus the validity
// window in epoch milliseconds. Claims exist only long enough to be
// serialized or checked; nothing retains them.
type Claims struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	NotBefore int64  `json:"nbf"`
	Expiry    int64  `json:"exp"`
}

// Subject extracts the identity portion of the claims.
func (c *Claims) Subject() Subject {
	return Subject{ID: c.ID, Name: c.Name, Role: c.Role}
}
