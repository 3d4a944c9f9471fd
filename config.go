package authcore

import (
	"errors"
	"time"
)

// Config is the explicit configuration object for a [Flow]. It is
// constructed once, passed to [Builder.WithConfig], and never consulted
// through any ambient global.
type Config struct {
	Token      TokenConfig
	Storage    StorageMode
	Identifier IdentifierSelector
	// HashAccessor selects which stored hash a user record is verified
	// against. The indirection is a typed accessor fixed at configuration
	// time, not a runtime field-name lookup.
	HashAccessor func(UserRecord) string
	// TokenAttach converts an issued token into the terminal outcome.
	// Nil means the default: wrap it in [TokenIssued].
	TokenAttach TokenAttacher
	Security    SecurityConfig
	Audit       AuditConfig
	Metrics     MetricsConfig
}

// TokenConfig is the time-window policy for issued tokens, in whole
// minutes. Validated at Build time, never on the request path.
type TokenConfig struct {
	NotBeforeDelayMinutes int
	ValidityMinutes       int
}

// SecurityConfig tunes login attempt throttling. The limiter activates
// only when a Redis client is supplied and MaxLoginAttempts is positive.
type SecurityConfig struct {
	MaxLoginAttempts int
	LoginCooldown    time.Duration
	EnableIPThrottle bool
}

// AuditConfig controls the async audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig controls the in-process counters.
type MetricsConfig struct {
	Enabled bool
}

func defaultConfig() Config {
	return Config{
		Token: TokenConfig{
			NotBeforeDelayMinutes: 0,
			ValidityMinutes:       60,
		},
		Storage:      StorageCookie,
		Identifier:   ByField("email"),
		HashAccessor: func(u UserRecord) string { return u.PasswordHash },
		Security: SecurityConfig{
			MaxLoginAttempts: 5,
			LoginCooldown:    15 * time.Minute,
			EnableIPThrottle: true,
		},
		Audit: AuditConfig{
			Enabled:    true,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{Enabled: true},
	}
}

func cloneConfig(cfg Config) Config {
	// All fields are values or immutable references; a shallow copy is a
	// faithful clone.
	return cfg
}

// Validate checks the parts of the configuration that do not need the
// builder's collaborators. Token window bounds are enforced again by
// token.NewPolicy at Build.
func (c Config) Validate() error {
	if c.Token.NotBeforeDelayMinutes < 0 {
		return errors.New("token not-before delay must be non-negative")
	}
	if c.Token.ValidityMinutes < 1 {
		return errors.New("token validity must be at least one minute")
	}
	if c.Identifier == nil {
		return errors.New("identifier selector required")
	}
	if c.HashAccessor == nil {
		return errors.New("hash accessor required")
	}
	if c.Storage != StorageCookie && c.Storage != StorageCaller {
		return errors.New("invalid storage mode")
	}
	if c.Security.MaxLoginAttempts > 0 && c.Security.LoginCooldown <= 0 {
		return errors.New("login cooldown required when attempt limiting is enabled")
	}
	return nil
}
