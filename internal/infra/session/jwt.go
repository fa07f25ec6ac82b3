package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/ShubhamAnand123/onlawthink/internal/ports"
)

var (
	ErrMissingToken = errors.New("missing session token")
	ErrExpiredToken = errors.New("session token has expired")
	ErrInvalidToken = errors.New("invalid session token")
)

// Claims is the part of the session token the client looks at.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenFunc yields the current raw token, or "" when there is none.
type TokenFunc func() string

// JWTSource reports a viewer as authenticated while their token is valid.
// The token is re-read and re-checked on every call.
type JWTSource struct {
	token TokenFunc
	key   []byte
	now   func() time.Time
	log   *zap.Logger
}

type Option func(*JWTSource)

// WithSigningKey enables HS256 signature verification. Without a key the token is
// parsed unverified and only its time claims are checked; the same token is sent
// to the directory service as a bearer token, which verifies it.
func WithSigningKey(key []byte) Option {
	return func(s *JWTSource) { s.key = key }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JWTSource) { s.now = now }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *JWTSource) { s.log = l }
}

func NewJWTSource(token TokenFunc, opts ...Option) *JWTSource {
	s := &JWTSource{
		token: token,
		now:   time.Now,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.SessionSource = (*JWTSource)(nil)

func (s *JWTSource) IsAuthenticated() bool {
	raw := ""
	if s.token != nil {
		raw = s.token()
	}
	if _, err := s.Validate(raw); err != nil {
		s.log.Debug("session.rejected", zap.Error(err))
		return false
	}
	return true
}

// Validate parses raw and returns its claims when the token is usable now.
func (s *JWTSource) Validate(raw string) (*Claims, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "Bearer "))
	if raw == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	if len(s.key) == 0 {
		if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
		return claims, s.checkTimes(claims)
	}

	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *JWTSource) checkTimes(c *Claims) error {
	now := s.now()
	if c.ExpiresAt != nil && !now.Before(c.ExpiresAt.Time) {
		return ErrExpiredToken
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return fmt.Errorf("%w: not valid yet", ErrInvalidToken)
	}
	return nil
}

// FirstToken returns the first non-empty token of the given sources, in order.
func FirstToken(sources ...TokenFunc) TokenFunc {
	return func() string {
		for _, src := range sources {
			if src == nil {
				continue
			}
			if t := strings.TrimSpace(src()); t != "" {
				return t
			}
		}
		return ""
	}
}

func EnvToken(name string, getenv func(string) string) TokenFunc {
	return func() string {
		if name == "" {
			return ""
		}
		return getenv(name)
	}
}

func StaticToken(token string) TokenFunc {
	return func() string { return token }
}

// StoreToken reads the persisted token; read errors count as no token.
func StoreToken(store ports.SessionStore) TokenFunc {
	return func() string {
		t, err := store.Load()
		if err != nil {
			return ""
		}
		return t
	}
}

// Mask hides all but the last four characters of a token.
func Mask(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}
