package eks_test

import (
	"context"
	"errors"
	"testing"

	internaleks "github.com/BerryBytes/frost/internal/eks"
	"github.com/BerryBytes/frost/models"
	mock_eks "github.com/BerryBytes/frost/tests/mock/eks"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testProfile = models.Profile{
	Name:         "sbx-admin",
	SSOAccountID: "111111111111",
	SSORoleName:  "AdministratorAccess",
	Region:       "us-west-2",
}

func describeRegionsOutput(names ...string) *ec2.DescribeRegionsOutput {
	regions := make([]ec2types.Region, 0, len(names))
	for _, name := range names {
		regions = append(regions, ec2types.Region{RegionName: aws.String(name)})
	}
	return &ec2.DescribeRegionsOutput{Regions: regions}
}

func describeClusterOutput(name string) *eks.DescribeClusterOutput {
	return &eks.DescribeClusterOutput{Cluster: &ekstypes.Cluster{
		Name:                 aws.String(name),
		Endpoint:             aws.String("https://" + name + ".eks.example.com"),
		CertificateAuthority: &ekstypes.Certificate{Data: aws.String("Y2EtZGF0YQ==")},
	}}
}

func TestRegions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ec2api := mock_eks.NewMockEC2API(ctrl)
	factory := mock_eks.NewMockClusterClientFactory(ctrl)
	factory.EXPECT().EC2Client(gomock.Any(), testProfile, "us-east-1").Return(ec2api, nil)
	ec2api.EXPECT().DescribeRegions(gomock.Any(), gomock.Any()).
		Return(describeRegionsOutput("us-west-2", "eu-west-1"), nil)

	discoverer := internaleks.NewDiscoverer(factory, zap.NewNop())
	regions, err := discoverer.Regions(context.TODO(), testProfile)
	require.NoError(t, err)
	assert.Equal(t, []string{"us-west-2", "eu-west-1"}, regions)
}

func TestDiscoverClusters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ec2api := mock_eks.NewMockEC2API(ctrl)
	eksWest := mock_eks.NewMockEKSAPI(ctrl)
	eksEast := mock_eks.NewMockEKSAPI(ctrl)
	factory := mock_eks.NewMockClusterClientFactory(ctrl)

	factory.EXPECT().EC2Client(gomock.Any(), testProfile, "us-east-1").Return(ec2api, nil)
	ec2api.EXPECT().DescribeRegions(gomock.Any(), gomock.Any()).
		Return(describeRegionsOutput("us-west-2", "eu-west-1"), nil)

	factory.EXPECT().EKSClient(gomock.Any(), testProfile, "us-west-2").Return(eksWest, nil)
	factory.EXPECT().EKSClient(gomock.Any(), testProfile, "eu-west-1").Return(eksEast, nil)

	eksWest.EXPECT().ListClusters(gomock.Any(), gomock.Any()).
		Return(&eks.ListClustersOutput{Clusters: []string{"alpha"}}, nil)
	eksWest.EXPECT().DescribeCluster(gomock.Any(), &eks.DescribeClusterInput{Name: aws.String("alpha")}).
		Return(describeClusterOutput("alpha"), nil)

	eksEast.EXPECT().ListClusters(gomock.Any(), gomock.Any()).
		Return(&eks.ListClustersOutput{Clusters: []string{"beta"}}, nil)
	eksEast.EXPECT().DescribeCluster(gomock.Any(), &eks.DescribeClusterInput{Name: aws.String("beta")}).
		Return(describeClusterOutput("beta"), nil)

	discoverer := internaleks.NewDiscoverer(factory, zap.NewNop())
	infos, err := discoverer.DiscoverClusters(context.TODO(), []models.Profile{testProfile})
	require.NoError(t, err)
	require.Len(t, infos, 2)

	names := []string{infos[0].Cluster.Name, infos[1].Cluster.Name}
	assert.ElementsMatch(t, []string{"alpha", "beta"}, names)
	for _, info := range infos {
		assert.Equal(t, testProfile.Name, info.Profile.Name)
	}
}

func TestDiscoverClusters_PaginatedListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ec2api := mock_eks.NewMockEC2API(ctrl)
	eksapi := mock_eks.NewMockEKSAPI(ctrl)
	factory := mock_eks.NewMockClusterClientFactory(ctrl)

	factory.EXPECT().EC2Client(gomock.Any(), gomock.Any(), gomock.Any()).Return(ec2api, nil)
	ec2api.EXPECT().DescribeRegions(gomock.Any(), gomock.Any()).
		Return(describeRegionsOutput("us-west-2"), nil)
	factory.EXPECT().EKSClient(gomock.Any(), gomock.Any(), "us-west-2").Return(eksapi, nil)

	gomock.InOrder(
		eksapi.EXPECT().ListClusters(gomock.Any(), &eks.ListClustersInput{}).
			Return(&eks.ListClustersOutput{Clusters: []string{"alpha"}, NextToken: aws.String("page2")}, nil),
		eksapi.EXPECT().ListClusters(gomock.Any(), &eks.ListClustersInput{NextToken: aws.String("page2")}).
			Return(&eks.ListClustersOutput{Clusters: []string{"beta"}}, nil),
	)
	eksapi.EXPECT().DescribeCluster(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *eks.DescribeClusterInput, _ ...func(*eks.Options)) (*eks.DescribeClusterOutput, error) {
			return describeClusterOutput(aws.ToString(input.Name)), nil
		}).Times(2)

	discoverer := internaleks.NewDiscoverer(factory, zap.NewNop())
	infos, err := discoverer.DiscoverClusters(context.TODO(), []models.Profile{testProfile})
	require.NoError(t, err)
	assert.Len(t, infos, 2)
}

func TestDiscoverClusters_FailingPairContributesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ec2api := mock_eks.NewMockEC2API(ctrl)
	eksWest := mock_eks.NewMockEKSAPI(ctrl)
	factory := mock_eks.NewMockClusterClientFactory(ctrl)

	factory.EXPECT().EC2Client(gomock.Any(), gomock.Any(), gomock.Any()).Return(ec2api, nil)
	ec2api.EXPECT().DescribeRegions(gomock.Any(), gomock.Any()).
		Return(describeRegionsOutput("us-west-2", "eu-west-1"), nil)

	factory.EXPECT().EKSClient(gomock.Any(), gomock.Any(), "us-west-2").Return(eksWest, nil)
	factory.EXPECT().EKSClient(gomock.Any(), gomock.Any(), "eu-west-1").
		Return(nil, errors.New("region disabled"))

	eksWest.EXPECT().ListClusters(gomock.Any(), gomock.Any()).
		Return(&eks.ListClustersOutput{Clusters: []string{"alpha"}}, nil)
	eksWest.EXPECT().DescribeCluster(gomock.Any(), gomock.Any()).
		Return(describeClusterOutput("alpha"), nil)

	discoverer := internaleks.NewDiscoverer(factory, zap.NewNop())
	infos, err := discoverer.DiscoverClusters(context.TODO(), []models.Profile{testProfile})
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "alpha", infos[0].Cluster.Name)
}

func TestDiscoverClusters_NoProfiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	factory := mock_eks.NewMockClusterClientFactory(ctrl)
	discoverer := internaleks.NewDiscoverer(factory, zap.NewNop())

	infos, err := discoverer.DiscoverClusters(context.TODO(), nil)
	require.NoError(t, err)
	assert.Nil(t, infos)
}

func TestDiscoverClusters_RegionListingError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ec2api := mock_eks.NewMockEC2API(ctrl)
	factory := mock_eks.NewMockClusterClientFactory(ctrl)
	factory.EXPECT().EC2Client(gomock.Any(), gomock.Any(), gomock.Any()).Return(ec2api, nil)
	ec2api.EXPECT().DescribeRegions(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("throttled"))

	discoverer := internaleks.NewDiscoverer(factory, zap.NewNop())
	_, err := discoverer.DiscoverClusters(context.TODO(), []models.Profile{testProfile})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to describe regions")
}

func TestDiscoverClusters_SkipsIncompleteClusterData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ec2api := mock_eks.NewMockEC2API(ctrl)
	eksapi := mock_eks.NewMockEKSAPI(ctrl)
	factory := mock_eks.NewMockClusterClientFactory(ctrl)

	factory.EXPECT().EC2Client(gomock.Any(), gomock.Any(), gomock.Any()).Return(ec2api, nil)
	ec2api.EXPECT().DescribeRegions(gomock.Any(), gomock.Any()).
		Return(describeRegionsOutput("us-west-2"), nil)
	factory.EXPECT().EKSClient(gomock.Any(), gomock.Any(), "us-west-2").Return(eksapi, nil)

	eksapi.EXPECT().ListClusters(gomock.Any(), gomock.Any()).
		Return(&eks.ListClustersOutput{Clusters: []string{"creating"}}, nil)
	// A cluster still provisioning has no endpoint yet.
	eksapi.EXPECT().DescribeCluster(gomock.Any(), gomock.Any()).
		Return(&eks.DescribeClusterOutput{Cluster: &ekstypes.Cluster{Name: aws.String("creating")}}, nil)

	discoverer := internaleks.NewDiscoverer(factory, zap.NewNop())
	infos, err := discoverer.DiscoverClusters(context.TODO(), []models.Profile{testProfile})
	require.NoError(t, err)
	assert.Empty(t, infos)
}
