package sso

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BerryBytes/frost/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssooidc"
	ssooidctypes "github.com/aws/aws-sdk-go-v2/service/ssooidc/types"
	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

const (
	deviceGrantType = "urn:ietf:params:oauth:grant-type:device_code"

	// Fallbacks per RFC 8628 when the provider omits an interval.
	defaultPollInterval = 5 * time.Second
	slowDownDelay       = 5 * time.Second
)

// ErrLoginTimeout is returned when the device grant expires before the
// user completes the browser authorization.
var ErrLoginTimeout = errors.New("login timed out")

// ErrCancelled is returned when the user closes the verification surface
// before authorization completes.
var ErrCancelled = errors.New("login cancelled")

// Acquirer runs the device-authorization polling flow:
// Start -> AwaitingUserAuthorization -> {Success, Timeout, Cancelled, Failed}.
type Acquirer struct {
	Factory OIDCClientFactory
	Surface VerificationSurface
	Clock   clock.Clock
	Log     *zap.Logger
}

func NewAcquirer(factory OIDCClientFactory, surface VerificationSurface, clk clock.Clock, log *zap.Logger) *Acquirer {
	return &Acquirer{Factory: factory, Surface: surface, Clock: clk, Log: log}
}

// AcquireToken starts a device authorization, hands the verification URL
// to the surface and polls at the provider-declared interval until the
// token is issued, the grant expires, or the surface is closed.
func (a *Acquirer) AcquireToken(ctx context.Context, userConfig models.UserConfig, client *models.RegisteredClient) (*models.TokenState, error) {
	oidc, err := a.Factory.OIDCClient(ctx, userConfig.Region)
	if err != nil {
		return nil, err
	}

	auth, err := oidc.StartDeviceAuthorization(ctx, &ssooidc.StartDeviceAuthorizationInput{
		ClientId:     aws.String(client.ClientID),
		ClientSecret: aws.String(client.ClientSecret),
		StartUrl:     aws.String(userConfig.StartURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start device authorization: %w", err)
	}

	grantExpiry := a.Clock.Now().Add(time.Duration(auth.ExpiresIn) * time.Second)
	interval := defaultPollInterval
	if auth.Interval > 0 {
		interval = time.Duration(auth.Interval) * time.Second
	}

	verificationURL := aws.ToString(auth.VerificationUriComplete)
	a.Log.Debug("opening verification surface", zap.String("url", verificationURL))
	if err := a.Surface.Open(verificationURL); err != nil {
		return nil, fmt.Errorf("failed to open verification surface: %w", err)
	}
	defer a.Surface.Close()

	for a.Clock.Now().Before(grantExpiry) {
		a.Log.Debug("waiting before next poll", zap.Duration("interval", interval))
		if err := a.sleep(ctx, interval); err != nil {
			return nil, err
		}

		token, err := oidc.CreateToken(ctx, &ssooidc.CreateTokenInput{
			ClientId:     aws.String(client.ClientID),
			ClientSecret: aws.String(client.ClientSecret),
			DeviceCode:   auth.DeviceCode,
			GrantType:    aws.String(deviceGrantType),
		})
		if err == nil {
			return &models.TokenState{
				AccessToken: aws.ToString(token.AccessToken),
				ExpiresAt:   a.Clock.Now().Add(time.Duration(token.ExpiresIn) * time.Second),
			}, nil
		}

		var pending *ssooidctypes.AuthorizationPendingException
		if errors.As(err, &pending) {
			a.Log.Debug("authorization pending")
			continue
		}

		var slowDown *ssooidctypes.SlowDownException
		if errors.As(err, &slowDown) {
			interval += slowDownDelay
			a.Log.Debug("provider requested slow down", zap.Duration("interval", interval))
			continue
		}

		if a.Surface.Closed() {
			a.Log.Warn("user closed verification surface", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrCancelled, err)
		}
		a.Log.Warn("failed getting token, retrying", zap.Error(err))
	}

	return nil, ErrLoginTimeout
}

// sleep waits for the poll interval, aborting early on context
// cancellation.
func (a *Acquirer) sleep(ctx context.Context, d time.Duration) error {
	timer := a.Clock.Timer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
