// Package gate short-circuits requests carrying revoked tokens before
// any route handling happens. It is a revocation screen, not the
// authoritative authentication check: that remains the local signature
// verification applied on protected routes.
package gate

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/censudex/gateway/internal/auth"
	"github.com/censudex/gateway/internal/authservice"
	"github.com/censudex/gateway/internal/tokencache"
)

const revokedMessage = "token has been revoked"

// Middleware consults the validity cache and falls back to the auth
// service on a miss. A transport failure talking to the auth service
// admits the request (fail-open) and defers to the local token check.
type Middleware struct {
	cache       tokencache.Cache
	validator   *authservice.Client
	public      PublicRule
	positiveTTL time.Duration
	negativeTTL time.Duration
	logger      *zap.Logger
}

// Options tunes cache lifetimes.
type Options struct {
	PositiveTTL time.Duration
	NegativeTTL time.Duration
}

// NewMiddleware constructs the gate.
func NewMiddleware(cache tokencache.Cache, validator *authservice.Client, opts Options, logger *zap.Logger) *Middleware {
	if opts.PositiveTTL <= 0 {
		opts.PositiveTTL = 10 * time.Second
	}
	if opts.NegativeTTL <= 0 {
		opts.NegativeTTL = time.Minute
	}
	return &Middleware{
		cache:       cache,
		validator:   validator,
		public:      NewPublicRule(),
		positiveTTL: opts.PositiveTTL,
		negativeTTL: opts.NegativeTTL,
		logger:      logger,
	}
}

// Handle applies the gate to every inbound request.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	if m.public.Matches(c.Path(), c.Method()) {
		return c.Next()
	}

	authHeader := c.Get(fiber.HeaderAuthorization)
	token, ok := auth.BearerToken(authHeader)
	if !ok {
		// No token: the local signature check on protected routes
		// produces the standard unauthenticated response.
		return c.Next()
	}

	ctx := c.UserContext()
	key := tokencache.Key(token)

	valid, hit, err := m.cache.Get(ctx, key)
	if err != nil {
		m.logger.Warn("token cache read failed", zap.Error(err))
	} else if hit {
		if !valid {
			m.logger.Warn("token from cache is revoked")
			return reject(c, revokedMessage)
		}
		return c.Next()
	}

	result, err := m.validator.Validate(ctx, authHeader)
	if err != nil {
		// The auth service being unreachable must not become a full
		// authentication outage; the local token check still runs.
		m.logger.Error("error communicating with auth service", zap.Error(err))
		return c.Next()
	}

	if !result.IsValid {
		if err := m.cache.Set(ctx, key, false, m.negativeTTL); err != nil {
			m.logger.Warn("token cache write failed", zap.Error(err))
		}
		message := result.Message
		if message == "" {
			message = "invalid or revoked token"
		}
		return reject(c, message)
	}

	if err := m.cache.Set(ctx, key, true, m.positiveTTL); err != nil {
		m.logger.Warn("token cache write failed", zap.Error(err))
	}
	m.logger.Debug("token validated successfully")
	return c.Next()
}

func reject(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": message})
}
