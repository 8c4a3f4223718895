package auth

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/app/models"
)

const storeContextKey = "auth.store"

// Provider builds per-request stores that share one authenticator.
type Provider struct {
	authenticator Authenticator
	delay         time.Duration
	logger        *zap.Logger
	opts          []Option
}

func NewProvider(authenticator Authenticator, delay time.Duration, logger *zap.Logger, opts ...Option) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		authenticator: authenticator,
		delay:         delay,
		logger:        logger,
		opts:          opts,
	}
}

// NewStore returns an Anonymous store bound to mirror.
func (p *Provider) NewStore(mirror Mirror) *Store {
	return NewStore(mirror, p.authenticator, p.delay, p.logger, p.opts...)
}

// SetStore attaches the request's store to the gin context.
func SetStore(c *gin.Context, s *Store) {
	c.Set(storeContextKey, s)
}

// StoreFromContext returns the store set by the session middleware, or nil.
func StoreFromContext(c *gin.Context) *Store {
	v, exists := c.Get(storeContextKey)
	if !exists {
		return nil
	}
	s, ok := v.(*Store)
	if !ok {
		return nil
	}
	return s
}

// IdentityFromContext returns the signed-in identity or nil.
func IdentityFromContext(c *gin.Context) *models.Identity {
	s := StoreFromContext(c)
	if s == nil {
		return nil
	}
	identity, _ := s.Identity()
	return identity
}

// SessionIDFromContext returns the current session id or "".
func SessionIDFromContext(c *gin.Context) string {
	s := StoreFromContext(c)
	if s == nil {
		return ""
	}
	return s.SessionID()
}
