package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/FACorreiaa/influencer-hub/internal/app/models"
)

// DefaultDemoPassword is used when no password hash is configured.
const DefaultDemoPassword = "password"

// Authenticator resolves a credential pair to an identity.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (models.Identity, error)
}

// DemoAuthenticator accepts exactly one email and password.
type DemoAuthenticator struct {
	email    string
	hash     []byte
	identity models.Identity
}

// NewDemoAuthenticator builds the demo credential check. An empty
// passwordHash means the default demo password.
func NewDemoAuthenticator(email, passwordHash string) (*DemoAuthenticator, error) {
	hash := []byte(passwordHash)
	if passwordHash == "" {
		var err error
		hash, err = HashPassword(DefaultDemoPassword, bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
	}
	if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("invalid demo password hash: %w", err)
	}

	identity := models.DemoIdentity()
	identity.Email = email
	return &DemoAuthenticator{email: email, hash: hash, identity: identity}, nil
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string, cost int) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

func (a *DemoAuthenticator) Authenticate(_ context.Context, email, password string) (models.Identity, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(a.email)) == 1
	passwordOK := bcrypt.CompareHashAndPassword(a.hash, []byte(password)) == nil
	if !emailOK || !passwordOK {
		return models.Identity{}, models.ErrInvalidCredentials
	}
	return a.identity, nil
}
