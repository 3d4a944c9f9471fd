package authcore

import (
	"errors"

	"github.com/redis/go-redis/v9"

	internalaudit "github.com/softwinter/authcore/internal/audit"
	"github.com/softwinter/authcore/internal/rate"
	"github.com/softwinter/authcore/password"
	"github.com/softwinter/authcore/token"
)

// Builder assembles a [Flow]. Collaborators are supplied through With*
// methods; Build validates the configuration and wires everything
// together. A Builder is single-use.
type Builder struct {
	config Config
	redis  *redis.Client

	users     UserStore
	keys      token.KeyStore
	hasher    PasswordHasher
	auditSink AuditSink

	built bool
}

// New returns a Builder loaded with the default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the entire configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis supplies the Redis client backing the login attempt limiter.
// Optional: without it, attempt limiting is disabled.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithUserStore supplies the external store that locates user records.
func (b *Builder) WithUserStore(store UserStore) *Builder {
	b.users = store
	return b
}

// WithKeyStore supplies the signing key source for token issuance.
func (b *Builder) WithKeyStore(keys token.KeyStore) *Builder {
	b.keys = keys
	return b
}

// WithHasher supplies the password hash implementation. Defaults to
// bcrypt at its default cost.
func (b *Builder) WithHasher(hasher PasswordHasher) *Builder {
	b.hasher = hasher
	return b
}

// WithAuditSink supplies the sink receiving audit events.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// Build validates and wires the flow. Configuration errors surface here,
// at startup, never on the login path.
func (b *Builder) Build() (*Flow, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if b.users == nil {
		return nil, errors.New("user store required")
	}
	if b.keys == nil {
		return nil, errors.New("key store required")
	}

	hasher := b.hasher
	if hasher == nil {
		var err error
		hasher, err = password.NewBcrypt(0)
		if err != nil {
			return nil, err
		}
	}

	policy, err := token.NewPolicy(cfg.Token.NotBeforeDelayMinutes, cfg.Token.ValidityMinutes)
	if err != nil {
		return nil, err
	}
	issuer, err := token.NewIssuer(b.keys, policy)
	if err != nil {
		return nil, err
	}

	var limiter *rate.Limiter
	if b.redis != nil && cfg.Security.MaxLoginAttempts > 0 {
		limiter = rate.New(b.redis, rate.Config{
			EnableIPThrottle: cfg.Security.EnableIPThrottle,
			MaxAttempts:      cfg.Security.MaxLoginAttempts,
			Cooldown:         cfg.Security.LoginCooldown,
		})
	}

	dispatcher := internalaudit.NewDispatcher(internalaudit.Config{
		Enabled:    cfg.Audit.Enabled,
		BufferSize: cfg.Audit.BufferSize,
		DropIfFull: cfg.Audit.DropIfFull,
	}, b.auditSink)

	b.built = true

	return &Flow{
		config:   cfg,
		users:    b.users,
		verifier: NewVerifier(hasher, cfg.HashAccessor),
		issuer:   issuer,
		limiter:  limiter,
		audit:    dispatcher,
		metrics:  newMetrics(cfg.Metrics.Enabled),
	}, nil
}
