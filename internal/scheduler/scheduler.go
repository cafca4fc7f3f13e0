package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/BerryBytes/frost/internal/config"
	"github.com/BerryBytes/frost/models"
	ssooidctypes "github.com/aws/aws-sdk-go-v2/service/ssooidc/types"
	"github.com/aws/smithy-go"
	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// DefaultMinimumDelay prevents a busy-loop when the persisted expiry is
// already in the past.
const DefaultMinimumDelay = 500 * time.Millisecond

// DefaultRecheckInterval caps how long the timer sleeps, so a
// configuration change or an externally invalidated token is picked up
// without waiting out the old expiry. A recheck that finds the token
// still valid just rearms.
const DefaultRecheckInterval = time.Minute

type Registrar interface {
	GetOrRegisterClient(ctx context.Context, userConfig models.UserConfig) (*models.RegisteredClient, error)
}

type TokenAcquirer interface {
	AcquireToken(ctx context.Context, userConfig models.UserConfig, client *models.RegisteredClient) (*models.TokenState, error)
}

type ProfileRefresher interface {
	RefreshProfiles(ctx context.Context, userConfig models.UserConfig, accessToken string) ([]models.Profile, error)
}

type ClusterDiscoverer interface {
	DiscoverClusters(ctx context.Context, profiles []models.Profile) ([]models.ClusterInfo, error)
}

type KubeconfigUpdater interface {
	Update(infos []models.ClusterInfo) error
}

type TokenCacheWriter interface {
	WriteSSOCache(userConfig models.UserConfig, accessToken string, expiresAt time.Time) error
}

// Scheduler owns the single pending refresh timer. Every failure path
// rearms it; the only way the loop stops is the daemon context ending.
type Scheduler struct {
	Store           config.Store
	Registrar       Registrar
	Acquirer        TokenAcquirer
	Profiles        ProfileRefresher
	Clusters        ClusterDiscoverer
	Kubeconfig      KubeconfigUpdater
	CacheWriter     TokenCacheWriter
	Clock           clock.Clock
	Log             *zap.Logger
	MinimumDelay    time.Duration
	RecheckInterval time.Duration

	mu       sync.Mutex
	timer    *clock.Timer
	ctx      context.Context
	inFlight atomic.Bool
}

// Run arms the schedule and blocks until the context ends.
func (s *Scheduler) Run(ctx context.Context) {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	s.ScheduleNext()
	<-ctx.Done()

	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()
}

// ScheduleNext cancels any pending timer and arms exactly one new timer
// for the persisted token expiry, capped at the recheck interval. A
// missing expiry refreshes immediately.
func (s *Scheduler) ScheduleNext() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.Log.Debug("clearing existing refresh timer")
		s.timer.Stop()
	}

	delay := s.nextDelay()
	ctx := s.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	s.timer = s.Clock.AfterFunc(delay, func() {
		s.RunRefreshCycle(ctx)
	})
	s.Log.Info("scheduled next refresh", zap.Duration("delay", delay))
}

func (s *Scheduler) nextDelay() time.Duration {
	token, err := s.Store.Token()
	if err != nil {
		s.Log.Warn("failed reading persisted token", zap.Error(err))
		return 0
	}
	if token == nil {
		return 0
	}

	minimum := s.minimumDelay()
	delay := token.ExpiresAt.Sub(s.Clock.Now())
	if delay < minimum {
		return minimum
	}
	if recheck := s.recheckInterval(); delay > recheck {
		return recheck
	}
	return delay
}

func (s *Scheduler) minimumDelay() time.Duration {
	if s.MinimumDelay > 0 {
		return s.MinimumDelay
	}
	return DefaultMinimumDelay
}

func (s *Scheduler) recheckInterval() time.Duration {
	if s.RecheckInterval > 0 {
		return s.RecheckInterval
	}
	return DefaultRecheckInterval
}

// refreshDue reports whether the persisted token actually needs
// replacing. A timer fired by the recheck cap lands here with a token
// that may still be valid for a while.
func (s *Scheduler) refreshDue() bool {
	token, err := s.Store.Token()
	if err != nil || token == nil {
		return true
	}
	return token.ExpiresAt.Sub(s.Clock.Now()) <= s.minimumDelay()
}

// RunRefreshCycle performs one full refresh: register or reuse the OIDC
// client, acquire a token, persist it, rearm the schedule, then rebuild
// the derived profiles and kubeconfig. Overlapping invocations are
// skipped to avoid duplicate registrations.
func (s *Scheduler) RunRefreshCycle(ctx context.Context) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.Log.Info("refresh already in progress, skipping")
		return
	}
	defer s.inFlight.Store(false)

	s.Log.Info("refreshing credentials")

	userConfig, err := s.Store.UserConfig()
	if err != nil {
		s.Log.Error("failed reading user config", zap.Error(err))
		if storeErr := s.Store.SetLastError(err.Error()); storeErr != nil {
			s.Log.Error("failed recording last error", zap.Error(storeErr))
		}
		s.ScheduleNext()
		return
	}
	if userConfig == nil {
		s.Log.Warn("missing user config, cannot refresh credentials")
		return
	}

	if !s.refreshDue() {
		s.Log.Debug("token still valid, rearming")
		s.ScheduleNext()
		return
	}

	s.setWorking(true)
	defer s.setWorking(false)

	if err := s.refresh(ctx, *userConfig); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			s.Log.Error("refresh failed", zap.String("code", apiErr.ErrorCode()), zap.Error(err))
		} else {
			s.Log.Error("refresh failed", zap.Error(err))
		}

		var invalidClient *ssooidctypes.InvalidClientException
		if errors.As(err, &invalidClient) {
			// A known-bad client would fail every retry; force a
			// re-registration next cycle.
			if deleteErr := s.Store.DeleteSSOClient(); deleteErr != nil {
				s.Log.Error("failed deleting invalid SSO client", zap.Error(deleteErr))
			} else {
				s.Log.Warn("deleted invalid SSO client registration")
			}
		}

		if storeErr := s.Store.SetLastError(err.Error()); storeErr != nil {
			s.Log.Error("failed recording last error", zap.Error(storeErr))
		}
		s.ScheduleNext()
	}
}

func (s *Scheduler) refresh(ctx context.Context, userConfig models.UserConfig) error {
	if err := s.Store.SetLastError(""); err != nil {
		return err
	}

	client, err := s.Registrar.GetOrRegisterClient(ctx, userConfig)
	if err != nil {
		return err
	}

	token, err := s.Acquirer.AcquireToken(ctx, userConfig, client)
	if err != nil {
		return err
	}
	s.Log.Info("successfully got new token", zap.Time("expiresAt", token.ExpiresAt))

	if err := s.Store.SetToken(*token); err != nil {
		return err
	}
	if err := s.CacheWriter.WriteSSOCache(userConfig, token.AccessToken, token.ExpiresAt); err != nil {
		return err
	}

	s.ScheduleNext()

	profiles, err := s.Profiles.RefreshProfiles(ctx, userConfig, token.AccessToken)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		return nil
	}

	infos, err := s.Clusters.DiscoverClusters(ctx, profiles)
	if err != nil {
		return err
	}

	summaries := make([]models.ClusterSummary, 0, len(infos))
	for _, info := range infos {
		summaries = append(summaries, models.ClusterSummary{
			Name:    info.Cluster.Name,
			Profile: info.Profile.Name,
			Region:  info.Region,
		})
	}
	if err := s.Store.SetClusters(summaries); err != nil {
		return err
	}

	return s.Kubeconfig.Update(infos)
}

func (s *Scheduler) setWorking(working bool) {
	if err := s.Store.SetWorking(working); err != nil {
		s.Log.Error("failed updating working flag", zap.Error(err))
	}
}
