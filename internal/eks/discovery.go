package eks

import (
	"context"
	"fmt"
	"sync"

	"github.com/BerryBytes/frost/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// regionDiscoveryRegion is where DescribeRegions itself is called; the
// listing is global, any reachable region works.
const regionDiscoveryRegion = "us-east-1"

// Discoverer lists the clusters reachable through a set of profiles.
type Discoverer struct {
	Factory ClusterClientFactory
	Log     *zap.Logger
}

func NewDiscoverer(factory ClusterClientFactory, log *zap.Logger) *Discoverer {
	return &Discoverer{Factory: factory, Log: log}
}

// Regions lists the enabled regions as seen by one profile.
func (d *Discoverer) Regions(ctx context.Context, profile models.Profile) ([]string, error) {
	d.Log.Info("listing regions", zap.String("profile", profile.Name))

	api, err := d.Factory.EC2Client(ctx, profile, regionDiscoveryRegion)
	if err != nil {
		return nil, err
	}
	output, err := api.DescribeRegions(ctx, &ec2.DescribeRegionsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to describe regions: %w", err)
	}

	regions := make([]string, 0, len(output.Regions))
	for _, region := range output.Regions {
		regions = append(regions, aws.ToString(region.RegionName))
	}
	d.Log.Debug("discovered regions", zap.Strings("regions", regions))
	return regions, nil
}

// DiscoverClusters fans out over (profile, region) pairs in parallel. A
// failing pair contributes zero clusters rather than aborting the cycle;
// the full candidate set is collected before any naming happens.
func (d *Discoverer) DiscoverClusters(ctx context.Context, profiles []models.Profile) ([]models.ClusterInfo, error) {
	if len(profiles) == 0 {
		return nil, nil
	}

	regions, err := d.Regions(ctx, profiles[0])
	if err != nil {
		return nil, err
	}

	var (
		mu       sync.Mutex
		clusters []models.ClusterInfo
	)
	group, groupCtx := errgroup.WithContext(ctx)
	for _, profile := range profiles {
		for _, region := range regions {
			group.Go(func() error {
				found := d.clustersForPair(groupCtx, profile, region)
				mu.Lock()
				clusters = append(clusters, found...)
				mu.Unlock()
				return nil
			})
		}
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return clusters, nil
}

// clustersForPair lists and describes the clusters one profile can see in
// one region. Failures are isolated to the pair.
func (d *Discoverer) clustersForPair(ctx context.Context, profile models.Profile, region string) []models.ClusterInfo {
	api, err := d.Factory.EKSClient(ctx, profile, region)
	if err != nil {
		d.Log.Warn("skipping region for profile",
			zap.String("profile", profile.Name), zap.String("region", region), zap.Error(err))
		return nil
	}

	var names []string
	input := &eks.ListClustersInput{}
	for {
		output, err := api.ListClusters(ctx, input)
		if err != nil {
			d.Log.Warn("failed listing clusters",
				zap.String("profile", profile.Name), zap.String("region", region), zap.Error(err))
			return nil
		}
		names = append(names, output.Clusters...)
		if output.NextToken == nil {
			break
		}
		input.NextToken = output.NextToken
	}

	var infos []models.ClusterInfo
	for _, name := range names {
		d.Log.Info("found cluster",
			zap.String("profile", profile.Name), zap.String("region", region), zap.String("cluster", name))

		output, err := api.DescribeCluster(ctx, &eks.DescribeClusterInput{Name: aws.String(name)})
		if err != nil {
			d.Log.Warn("failed describing cluster",
				zap.String("cluster", name), zap.String("region", region), zap.Error(err))
			continue
		}
		cluster := output.Cluster
		if cluster == nil || cluster.Endpoint == nil || cluster.CertificateAuthority == nil {
			d.Log.Warn("invalid cluster data", zap.String("cluster", name))
			continue
		}
		infos = append(infos, models.ClusterInfo{
			Cluster: models.EKSCluster{
				Name:                     name,
				Endpoint:                 aws.ToString(cluster.Endpoint),
				CertificateAuthorityData: aws.ToString(cluster.CertificateAuthority.Data),
			},
			Profile: profile,
			Region:  region,
		})
	}
	return infos
}
