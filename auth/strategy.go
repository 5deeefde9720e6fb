// Package auth provides authentication strategies for the Schematics API.
//
// The service sits behind IBM Cloud IAM and expects an IAM access token:
//
//	Authorization: Bearer <access token>
//
// The SDK does not exchange API keys for tokens and does not refresh them.
// Callers obtain the access token themselves (for example with
// `ibmcloud iam oauth-tokens`) and hand it to [NewBearerTokenStrategy].
//
// # Bearer Token (Recommended)
//
//	service, _ := schematics.New(
//	    schematics.WithBearerToken(os.Getenv("SCHEMATICS_BEARER_TOKEN")),
//	)
//
// When the token is a JWT, its exp claim is checked before each request so an
// expired token fails locally with an AuthenticationError instead of a
// round trip to the service.
//
// # Basic
//
// Private or on-premises deployments behind a proxy may accept basic
// credentials:
//
//	service, _ := schematics.New(
//	    schematics.WithBasicAuth("user", "password"),
//	)
//
// # None
//
// [NoAuthStrategy] sends no Authorization header. It is intended for tests
// and for gateways that inject credentials themselves.
package auth

import (
	"context"
	"net/http"
)

// Strategy defines the interface for authentication strategies.
//
// The SDK provides three built-in implementations:
//   - [BearerTokenStrategy]: For IAM access tokens
//   - [BasicAuthStrategy]: For username/password credentials
//   - [NoAuthStrategy]: For unauthenticated requests
type Strategy interface {
	// GetToken returns the credential to send with the next request.
	// It fails when the credential is known to be unusable (e.g. expired).
	GetToken(ctx context.Context) (string, error)

	// ApplyAuth applies authentication headers to the request.
	ApplyAuth(req *http.Request, token string)
}
