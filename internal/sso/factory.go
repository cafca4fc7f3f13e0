package sso

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssooidc"
)

// RealOIDCClientFactory builds ssooidc clients from the default AWS
// configuration chain.
type RealOIDCClientFactory struct{}

func (f *RealOIDCClientFactory) OIDCClient(ctx context.Context, region string) (SSOOIDCAPI, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return ssooidc.NewFromConfig(cfg), nil
}
