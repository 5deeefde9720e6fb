package auth

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/IBM/schematics-go-sdk/core"
)

// BasicAuthStrategy authenticates with a username and password.
type BasicAuthStrategy struct {
	username string
	password string
}

// NewBasicAuthStrategy creates a new basic authentication strategy.
func NewBasicAuthStrategy(username, password string) *BasicAuthStrategy {
	return &BasicAuthStrategy{username: username, password: password}
}

// GetToken returns the base64 encoded credentials.
func (s *BasicAuthStrategy) GetToken(ctx context.Context) (string, error) {
	if s.username == "" {
		return "", core.NewAuthenticationError("basic auth username is empty", "")
	}
	return base64.StdEncoding.EncodeToString([]byte(s.username + ":" + s.password)), nil
}

// ApplyAuth applies the credentials to the Authorization header.
func (s *BasicAuthStrategy) ApplyAuth(req *http.Request, token string) {
	req.Header.Set("Authorization", "Basic "+token)
}

// NoAuthStrategy sends requests without credentials.
type NoAuthStrategy struct{}

// NewNoAuthStrategy creates a strategy that adds no Authorization header.
func NewNoAuthStrategy() *NoAuthStrategy {
	return &NoAuthStrategy{}
}

// GetToken always returns an empty token.
func (s *NoAuthStrategy) GetToken(ctx context.Context) (string, error) {
	return "", nil
}

// ApplyAuth does nothing.
func (s *NoAuthStrategy) ApplyAuth(req *http.Request, token string) {}
