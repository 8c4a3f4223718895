package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/app/models"
	"github.com/FACorreiaa/influencer-hub/internal/pkg/cache"
)

// State is the lifecycle position of a Store.
type State int

const (
	StateAnonymous State = iota
	StateAuthenticating
	StateAuthenticated
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const (
	invalidCredentialsMessage = "Invalid credentials"
	genericLoginMessage       = "An error occurred during login"
)

// Snapshot is a point-in-time copy of a Store's observable state.
type Snapshot struct {
	State     State
	Identity  *models.Identity
	SessionID string
	Loading   bool
	Error     string
}

// Store owns the current identity for one browser session and keeps it in
// sync with a durable Mirror. The zero value is not usable; use NewStore.
type Store struct {
	mu      sync.Mutex
	state   State
	record  *models.SessionRecord
	loading bool
	errMsg  string

	mirror Mirror
	auth   Authenticator
	delay  time.Duration
	logger *zap.Logger
	now    func() time.Time
	newID  func() string

	ended       *cache.UnifiedCache[time.Time]
	logoutHooks []func(sessionID string)
}

// Option customizes a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSessionIDs replaces the session id generator.
func WithSessionIDs(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithEndedSessions records logged out session ids in ended. Restore rejects
// any mirrored session found there.
func WithEndedSessions(ended *cache.UnifiedCache[time.Time]) Option {
	return func(s *Store) { s.ended = ended }
}

// WithLogoutHook registers fn to run with the session id after a logout.
// Hooks run without the store lock held.
func WithLogoutHook(fn func(sessionID string)) Option {
	return func(s *Store) { s.logoutHooks = append(s.logoutHooks, fn) }
}

// NewStore returns an Anonymous store. Call Restore to pick up a mirrored session.
func NewStore(mirror Mirror, authenticator Authenticator, delay time.Duration, logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		state:  StateAnonymous,
		mirror: mirror,
		auth:   authenticator,
		delay:  delay,
		logger: logger,
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore reads the mirror and, when it holds a valid session, moves the
// store to Authenticated. Invalid or logged out sessions are removed from the
// mirror and the store stays Anonymous.
func (s *Store) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.mirror.Load()
	if err != nil {
		s.logger.Warn("Failed to read session mirror", zap.Error(err))
		s.dropMirrorLocked()
		return fmt.Errorf("%w: %v", models.ErrMalformedSession, err)
	}
	if data == nil {
		return nil
	}

	rec, err := DecodeRecord(data)
	if err != nil {
		s.logger.Warn("Discarding malformed session", zap.Error(err))
		s.dropMirrorLocked()
		return err
	}
	if s.ended != nil {
		if at, ok := s.ended.Get(rec.SessionID); ok {
			s.logger.Info("Rejecting logged out session",
				zap.String("session_id", rec.SessionID),
				zap.Time("ended_at", at))
			s.dropMirrorLocked()
			return models.ErrSessionEnded
		}
	}

	s.record = &rec
	s.state = StateAuthenticated
	s.errMsg = ""
	return nil
}

// Login waits for the configured delay and then checks the credentials.
// Overlapping calls are not deduplicated; whichever finishes last decides
// the final state.
func (s *Store) Login(ctx context.Context, email, password string) error {
	l := s.logger.With(zap.String("method", "Login"), zap.String("email", email))
	l.Debug("Attempting login")

	s.mu.Lock()
	s.state = StateAuthenticating
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	if err := s.wait(ctx); err != nil {
		l.Info("Login interrupted", zap.Error(err))
		s.mu.Lock()
		s.loading = false
		if s.record != nil {
			s.state = StateAuthenticated
		} else {
			s.state = StateAnonymous
		}
		s.mu.Unlock()
		return fmt.Errorf("login interrupted: %w", err)
	}

	identity, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		l.Warn("Login rejected", zap.Error(err))
		s.mu.Lock()
		defer s.mu.Unlock()
		s.fail(err)
		return fmt.Errorf("login failed: %w", err)
	}

	rec := models.SessionRecord{
		SessionID: s.newID(),
		IssuedAt:  s.now().UTC(),
		Identity:  identity,
	}
	data, err := EncodeRecord(rec)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		err = s.mirror.Save(data)
	}
	if err != nil {
		l.Error("Failed to persist session", zap.Error(err))
		s.fail(err)
		return fmt.Errorf("app error storing session: %w", err)
	}

	s.record = &rec
	s.state = StateAuthenticated
	s.loading = false
	l.Info("Login successful", zap.String("session_id", rec.SessionID))
	return nil
}

// Logout clears the identity and removes the mirrored session. The session id
// is marked as ended and the logout hooks run with it. It never fails; mirror
// errors are logged.
func (s *Store) Logout() {
	s.mu.Lock()
	var sessionID string
	if s.record != nil {
		sessionID = s.record.SessionID
		s.logger.Info("User logout", zap.String("session_id", sessionID))
	}
	s.record = nil
	s.state = StateAnonymous
	s.loading = false
	s.errMsg = ""
	s.dropMirrorLocked()
	s.mu.Unlock()

	if sessionID == "" {
		return
	}
	if s.ended != nil {
		s.ended.Set(sessionID, s.now().UTC())
	}
	for _, hook := range s.logoutHooks {
		hook(sessionID)
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:   s.state,
		Loading: s.loading,
		Error:   s.errMsg,
	}
	if s.record != nil {
		identity := s.record.Identity
		snap.Identity = &identity
		snap.SessionID = s.record.SessionID
	}
	return snap
}

// Identity returns the current identity, if authenticated.
func (s *Store) Identity() (*models.Identity, bool) {
	snap := s.Snapshot()
	return snap.Identity, snap.Identity != nil
}

// SessionID returns the id of the current session or "" when anonymous.
func (s *Store) SessionID() string {
	return s.Snapshot().SessionID
}

// IsAuthenticated reports whether an identity is set. Failed and
// Authenticating stores without an identity are treated as anonymous.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Identity()
	return ok
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	return s.Snapshot().State
}

// ErrorMessage returns the displayable message of the last failed login.
func (s *Store) ErrorMessage() string {
	return s.Snapshot().Error
}

func (s *Store) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// fail must be called with s.mu held.
func (s *Store) fail(err error) {
	s.record = nil
	s.state = StateFailed
	s.loading = false
	if errors.Is(err, models.ErrInvalidCredentials) {
		s.errMsg = invalidCredentialsMessage
	} else {
		s.errMsg = genericLoginMessage
	}
	s.dropMirrorLocked()
}

func (s *Store) dropMirrorLocked() {
	if err := s.mirror.Remove(); err != nil {
		s.logger.Warn("Failed to remove session mirror", zap.Error(err))
	}
}
