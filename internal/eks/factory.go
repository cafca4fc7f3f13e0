package eks

import (
	"context"
	"fmt"

	"github.com/BerryBytes/frost/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/ssocreds"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	"github.com/aws/aws-sdk-go-v2/service/sso"
)

// RealClusterClientFactory derives per-profile credentials from the SSO
// token cache, the same way `aws` CLI profiles generated by this tool do.
type RealClusterClientFactory struct{}

func (f *RealClusterClientFactory) profileConfig(ctx context.Context, profile models.Profile, region string) (aws.Config, error) {
	ssoRegionCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(profile.SSORegion))
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	provider := ssocreds.New(sso.NewFromConfig(ssoRegionCfg), profile.SSOAccountID, profile.SSORoleName, profile.SSOStartURL)

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(aws.NewCredentialsCache(provider)),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profile.Name, err)
	}
	return cfg, nil
}

func (f *RealClusterClientFactory) EC2Client(ctx context.Context, profile models.Profile, region string) (EC2API, error) {
	cfg, err := f.profileConfig(ctx, profile, region)
	if err != nil {
		return nil, err
	}
	return ec2.NewFromConfig(cfg), nil
}

func (f *RealClusterClientFactory) EKSClient(ctx context.Context, profile models.Profile, region string) (EKSAPI, error) {
	cfg, err := f.profileConfig(ctx, profile, region)
	if err != nil {
		return nil, err
	}
	return eks.NewFromConfig(cfg), nil
}
