package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/IBM/schematics-go-sdk/core"
)

// DefaultExpiryLeeway is how long before its exp claim a token is treated as expired.
const DefaultExpiryLeeway = 30 * time.Second

// BearerTokenStrategy authenticates using an IAM access token.
//
// The token is used as given. If it parses as a JWT, its exp claim is
// inspected (without verifying the signature; the service does that) so
// that requests with an expired token never leave the process.
type BearerTokenStrategy struct {
	token  string
	leeway time.Duration
	now    func() time.Time
}

// BearerOption configures a BearerTokenStrategy.
type BearerOption func(*BearerTokenStrategy)

// WithExpiryLeeway sets how long before expiry a token is rejected.
func WithExpiryLeeway(d time.Duration) BearerOption {
	return func(s *BearerTokenStrategy) {
		s.leeway = d
	}
}

// NewBearerTokenStrategy creates a new bearer token authentication strategy.
//
// Example:
//
//	strategy := auth.NewBearerTokenStrategy(os.Getenv("SCHEMATICS_BEARER_TOKEN"))
func NewBearerTokenStrategy(token string, opts ...BearerOption) *BearerTokenStrategy {
	s := &BearerTokenStrategy{
		token:  token,
		leeway: DefaultExpiryLeeway,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetToken returns the access token, or an AuthenticationError if it is
// empty or its exp claim has passed.
func (s *BearerTokenStrategy) GetToken(ctx context.Context) (string, error) {
	if s.token == "" {
		return "", core.NewAuthenticationError("bearer token is empty", "")
	}
	if exp, ok := s.ExpiresAt(); ok && !s.now().Add(s.leeway).Before(exp) {
		return "", core.NewAuthenticationError(
			fmt.Sprintf("bearer token expired at %s", exp.UTC().Format(time.RFC3339)), "")
	}
	return s.token, nil
}

// ExpiresAt returns the token's exp claim. ok is false for opaque tokens and
// JWTs without an exp claim.
func (s *BearerTokenStrategy) ExpiresAt() (exp time.Time, ok bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.token, claims); err != nil {
		return time.Time{}, false
	}
	date, err := claims.GetExpirationTime()
	if err != nil || date == nil {
		return time.Time{}, false
	}
	return date.Time, true
}

// ApplyAuth applies the token to the Authorization header.
func (s *BearerTokenStrategy) ApplyAuth(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
}
