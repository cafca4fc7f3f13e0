package root

import (
	"os"

	cmdConfigure "github.com/BerryBytes/frost/cmd/configure"
	cmdDaemon "github.com/BerryBytes/frost/cmd/daemon"
	cmdRefresh "github.com/BerryBytes/frost/cmd/refresh"
	cmdStatus "github.com/BerryBytes/frost/cmd/status"
	"github.com/BerryBytes/frost/internal/awsconfig"
	"github.com/BerryBytes/frost/internal/config"
	"github.com/BerryBytes/frost/internal/eks"
	"github.com/BerryBytes/frost/internal/profiles"
	"github.com/BerryBytes/frost/internal/scheduler"
	"github.com/BerryBytes/frost/internal/sso"
	promptutils "github.com/BerryBytes/frost/utils/prompt"
	"github.com/benbjohnson/clock"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Dependencies is the wired object graph shared by the subcommands.
type Dependencies struct {
	Store     config.Store
	Scheduler *scheduler.Scheduler
	Clock     clock.Clock
	Log       *zap.Logger
}

// DefaultDependencies builds the production wiring: OS filesystem,
// real AWS clients, browser verification surface, wall clock.
func DefaultDependencies(log *zap.Logger) (*Dependencies, error) {
	fs := afero.NewOsFs()
	clk := clock.New()

	storePath, err := config.DefaultStorePath()
	if err != nil {
		return nil, err
	}
	store := config.NewFileStore(fs, storePath)

	writer := awsconfig.NewWriter(fs, os.UserHomeDir, log)
	oidcFactory := &sso.RealOIDCClientFactory{}

	sched := &scheduler.Scheduler{
		Store:        store,
		Registrar:    sso.NewRegistrar(oidcFactory, store, clk, log),
		Acquirer:     sso.NewAcquirer(oidcFactory, &sso.BrowserSurface{}, clk, log),
		Profiles:     profiles.NewService(&profiles.RealSSOClientFactory{}, writer, log),
		Clusters:     eks.NewDiscoverer(&eks.RealClusterClientFactory{}, log),
		Kubeconfig:   eks.NewMerger(fs, os.UserHomeDir, eks.DefaultAuthenticatorPath(), log),
		CacheWriter:  writer,
		Clock:        clk,
		Log:          log,
		MinimumDelay: scheduler.DefaultMinimumDelay,
	}

	return &Dependencies{Store: store, Scheduler: sched, Clock: clk, Log: log}, nil
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frost",
		Short: "AWS SSO credential refresher",
		Long: `Keeps AWS SSO credentials fresh: runs the device-authorization
login flow, regenerates AWS CLI profiles for every account/role the user
can assume, and merges all reachable EKS clusters into the kubeconfig.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		cmdDaemon.NewDaemonCmd(cmdDaemon.Dependencies{Scheduler: deps.Scheduler, Log: deps.Log}),
		cmdRefresh.NewRefreshCmd(cmdRefresh.Dependencies{Scheduler: deps.Scheduler, Log: deps.Log}),
		cmdConfigure.NewConfigureCmd(cmdConfigure.Dependencies{
			Store:    deps.Store,
			Prompter: promptutils.NewPrompt(),
			Log:      deps.Log,
		}),
		cmdStatus.NewStatusCmd(cmdStatus.Dependencies{
			Store: deps.Store,
			Clock: deps.Clock,
			Out:   os.Stdout,
		}),
	)
	return cmd
}
