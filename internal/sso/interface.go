package sso

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ssooidc"
)

// SSOOIDCAPI is the slice of the OIDC endpoint used by the registrar and
// the token acquirer.
type SSOOIDCAPI interface {
	RegisterClient(ctx context.Context, params *ssooidc.RegisterClientInput, optFns ...func(*ssooidc.Options)) (*ssooidc.RegisterClientOutput, error)
	StartDeviceAuthorization(ctx context.Context, params *ssooidc.StartDeviceAuthorizationInput, optFns ...func(*ssooidc.Options)) (*ssooidc.StartDeviceAuthorizationOutput, error)
	CreateToken(ctx context.Context, params *ssooidc.CreateTokenInput, optFns ...func(*ssooidc.Options)) (*ssooidc.CreateTokenOutput, error)
}

// OIDCClientFactory builds an OIDC client for the user's SSO region.
type OIDCClientFactory interface {
	OIDCClient(ctx context.Context, region string) (SSOOIDCAPI, error)
}

// VerificationSurface is where the verification URL is shown to the user.
// The token acquirer polls Closed on every iteration: a closed surface
// turns further polling failures into a cancellation.
type VerificationSurface interface {
	Open(url string) error
	Closed() bool
	Close()
}
