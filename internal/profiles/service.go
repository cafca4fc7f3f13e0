package profiles

import (
	"context"

	"github.com/BerryBytes/frost/models"
	"go.uber.org/zap"
)

// Service recomputes the AWS CLI profiles from the portal listings and
// persists them. Accounts and roles are ephemeral; only the generated
// profiles are written to disk.
type Service struct {
	Factory SSOClientFactory
	Writer  ProfileWriter
	Log     *zap.Logger
}

func NewService(factory SSOClientFactory, writer ProfileWriter, log *zap.Logger) *Service {
	return &Service{Factory: factory, Writer: writer, Log: log}
}

func (s *Service) RefreshProfiles(ctx context.Context, userConfig models.UserConfig, accessToken string) ([]models.Profile, error) {
	s.Log.Info("refreshing profiles")

	api, err := s.Factory.SSOClient(ctx, userConfig.Region)
	if err != nil {
		return nil, err
	}

	accounts, err := ListAccounts(ctx, api, accessToken)
	if err != nil {
		return nil, err
	}
	s.Log.Debug("discovered accounts", zap.Int("count", len(accounts)))

	roles, err := ListAllRoles(ctx, api, accessToken, accounts)
	if err != nil {
		return nil, err
	}
	s.Log.Debug("discovered roles", zap.Int("count", len(roles)))

	generated := GenerateProfiles(userConfig, accounts, roles)
	if err := s.Writer.WriteProfiles(generated); err != nil {
		return nil, err
	}
	s.Log.Info("profiles written", zap.Int("count", len(generated)))

	return generated, nil
}
