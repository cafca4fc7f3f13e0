package refresh

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

// NewRefreshCmd runs exactly one refresh cycle and exits.
func NewRefreshCmd(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:          "refresh",
		Short:        "Refresh credentials now",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := generalutils.HandleSignals(deps.Log)
			deps.Scheduler.RunRefreshCycle(ctx)
			return nil
		},
	}
}
