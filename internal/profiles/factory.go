package profiles

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sso"
)

type RealSSOClientFactory struct{}

func (f *RealSSOClientFactory) SSOClient(ctx context.Context, region string) (SSOAPI, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return sso.NewFromConfig(cfg), nil
}
