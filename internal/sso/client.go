package sso

import (
	"context"
	"fmt"

	"github.com/BerryBytes/frost/internal/config"
	"github.com/BerryBytes/frost/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssooidc"
	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registrar owns the persisted OIDC client registration. Registrations
// are reused across process restarts until the endpoint-declared expiry.
type Registrar struct {
	Factory OIDCClientFactory
	Store   config.Store
	Clock   clock.Clock
	Log     *zap.Logger
}

func NewRegistrar(factory OIDCClientFactory, store config.Store, clk clock.Clock, log *zap.Logger) *Registrar {
	return &Registrar{Factory: factory, Store: store, Clock: clk, Log: log}
}

// GetOrRegisterClient returns the persisted client, re-registering it
// under the same display name when it has expired. The scheduler
// guarantees at most one refresh cycle runs at a time, so registration
// never races with itself.
func (r *Registrar) GetOrRegisterClient(ctx context.Context, userConfig models.UserConfig) (*models.RegisteredClient, error) {
	client, err := r.Store.SSOClient()
	if err != nil {
		return nil, err
	}

	switch {
	case client == nil:
		name := fmt.Sprintf("Frost-%s", uuid.NewString())
		r.Log.Info("registering new SSO client", zap.String("clientName", name))
		client, err = r.register(ctx, userConfig, name)
		if err != nil {
			return nil, err
		}
	case client.Expired(r.Clock.Now()):
		r.Log.Info("re-registering expired SSO client", zap.String("clientName", client.ClientName))
		client, err = r.register(ctx, userConfig, client.ClientName)
		if err != nil {
			return nil, err
		}
	}

	r.Log.Debug("using SSO client",
		zap.String("clientId", client.ClientID),
		zap.Int64("issuedAt", client.IssuedAt),
		zap.Int64("expiresAt", client.ExpiresAt))
	return client, nil
}

func (r *Registrar) register(ctx context.Context, userConfig models.UserConfig, clientName string) (*models.RegisteredClient, error) {
	oidc, err := r.Factory.OIDCClient(ctx, userConfig.Region)
	if err != nil {
		return nil, err
	}

	out, err := oidc.RegisterClient(ctx, &ssooidc.RegisterClientInput{
		ClientName: aws.String(clientName),
		ClientType: aws.String("public"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register SSO client: %w", err)
	}

	client := models.RegisteredClient{
		ClientName:   clientName,
		ClientID:     aws.ToString(out.ClientId),
		ClientSecret: aws.ToString(out.ClientSecret),
		IssuedAt:     out.ClientIdIssuedAt,
		ExpiresAt:    out.ClientSecretExpiresAt,
	}
	if err := r.Store.SetSSOClient(client); err != nil {
		return nil, err
	}
	return &client, nil
}
