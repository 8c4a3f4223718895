package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/app/models"
)

// JWTConfig holds JWT authentication configuration
type JWTConfig struct {
	SecretKey       string
	TokenExpiration time.Duration
	Issuer          string
	Logger          *zap.Logger
	Optional        bool // If true, missing/invalid tokens won't block the request
}

// Claims carries the mirrored session envelope in the "user" claim.
type Claims struct {
	Email   string          `json:"email,omitempty"`
	Session json.RawMessage `json:"user"`
	jwt.RegisteredClaims
}

// NewJWTService creates a new JWT service
func NewJWTService() *JWTService {
	return &JWTService{}
}

type JWTService struct{}

// GenerateToken signs a token holding the serialized session.
func (s *JWTService) GenerateToken(config JWTConfig, rec models.SessionRecord) (string, error) {
	data, err := EncodeRecord(rec)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		Email:   rec.Identity.Email,
		Session: data,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   rec.Identity.ID,
			ID:        rec.SessionID,
			Issuer:    config.Issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(config.TokenExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.SecretKey))
	if err != nil {
		if config.Logger != nil {
			config.Logger.Error("Failed to sign token", zap.Error(err))
		}
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token
func (s *JWTService) ValidateToken(config JWTConfig, tokenString string) (*Claims, error) {
	claims := &Claims{}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(config.Issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.SecretKey), nil
	}, opts...)

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// TokenMirror keeps the serialized session inside a signed bearer token.
// Save issues a new token, readable through Token.
type TokenMirror struct {
	service *JWTService
	config  JWTConfig
	token   string
}

func NewTokenMirror(service *JWTService, config JWTConfig, token string) *TokenMirror {
	return &TokenMirror{service: service, config: config, token: token}
}

func (m *TokenMirror) Load() ([]byte, error) {
	if m.token == "" {
		return nil, nil
	}
	claims, err := m.service.ValidateToken(m.config, m.token)
	if err != nil {
		return nil, fmt.Errorf("invalid bearer token: %w", err)
	}
	return claims.Session, nil
}

func (m *TokenMirror) Save(data []byte) error {
	rec, err := DecodeRecord(data)
	if err != nil {
		return err
	}
	token, err := m.service.GenerateToken(m.config, rec)
	if err != nil {
		return err
	}
	m.token = token
	return nil
}

func (m *TokenMirror) Remove() error {
	m.token = ""
	return nil
}

// Token returns the current bearer token, "" after Remove.
func (m *TokenMirror) Token() string {
	return m.token
}

// bearerToken extracts the token from the Authorization header, falling back
// to the "token" query parameter.
func bearerToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return c.Query("token")
}

// JWTAuthMiddleware restores a Store from the bearer token and puts it in the
// context. Unless config.Optional is set, requests without a valid session
// are rejected with 401.
func JWTAuthMiddleware(config JWTConfig, provider *Provider) gin.HandlerFunc {
	service := NewJWTService()
	return func(c *gin.Context) {
		mirror := NewTokenMirror(service, config, bearerToken(c))
		store := provider.NewStore(mirror)
		if err := store.Restore(); err != nil && config.Logger != nil {
			config.Logger.Debug("Rejected bearer token", zap.Error(err))
		}
		SetStore(c, store)

		if !store.IsAuthenticated() && !config.Optional {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}
