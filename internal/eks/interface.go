package eks

import (
	"context"

	"github.com/BerryBytes/frost/models"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/eks"
)

type EKSAPI interface {
	ListClusters(ctx context.Context, input *eks.ListClustersInput, opts ...func(*eks.Options)) (*eks.ListClustersOutput, error)
	DescribeCluster(ctx context.Context, input *eks.DescribeClusterInput, opts ...func(*eks.Options)) (*eks.DescribeClusterOutput, error)
}

type EC2API interface {
	DescribeRegions(ctx context.Context, input *ec2.DescribeRegionsInput, opts ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
}

// ClusterClientFactory builds API clients scoped to one profile's
// short-lived SSO credentials in one region.
type ClusterClientFactory interface {
	EC2Client(ctx context.Context, profile models.Profile, region string) (EC2API, error)
	EKSClient(ctx context.Context, profile models.Profile, region string) (EKSAPI, error)
}
