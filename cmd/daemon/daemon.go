package daemon

import (
	"github.com/BerryBytes/frost/internal/scheduler"
	generalutils "github.com/BerryBytes/frost/utils/general"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type Dependencies struct {
	Scheduler *scheduler.Scheduler
	Log       *zap.Logger
}

// NewDaemonCmd runs the refresh loop until SIGINT or SIGTERM.
func NewDaemonCmd(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:          "daemon",
		Short:        "Run the credential refresh loop",
		Long:         `Runs the self-rescheduling refresh loop until interrupted.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := generalutils.HandleSignals(deps.Log)
			deps.Log.Info("starting refresh daemon")
			deps.Scheduler.Run(ctx)
			deps.Log.Info("refresh daemon stopped")
			return nil
		},
	}
}
