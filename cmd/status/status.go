package status

import (
	"fmt"
	"io"
	"time"

	"github.com/BerryBytes/frost/internal/config"
	"github.com/benbjohnson/clock"
	"github.com/spf13/cobra"
)

type Dependencies struct {
	Store config.Store
	Clock clock.Clock
	Out   io.Writer
}

// NewStatusCmd prints the two health signals: the last refresh error and
// the time until the next scheduled refresh.
func NewStatusCmd(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:          "status",
		Short:        "Show refresh status",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			userConfig, err := deps.Store.UserConfig()
			if err != nil {
				return err
			}
			if userConfig == nil {
				fmt.Fprintln(deps.Out, "Not configured. Run 'frost configure' first.")
				return nil
			}
			fmt.Fprintf(deps.Out, "Start URL: %s\n", userConfig.StartURL)
			fmt.Fprintf(deps.Out, "Region:    %s\n", userConfig.Region)

			token, err := deps.Store.Token()
			if err != nil {
				return err
			}
			if token == nil {
				fmt.Fprintln(deps.Out, "Not logged in.")
			} else if remaining := token.ExpiresAt.Sub(deps.Clock.Now()); remaining > 0 {
				fmt.Fprintf(deps.Out, "Next refresh in %s\n", remaining.Round(time.Second))
			} else {
				fmt.Fprintln(deps.Out, "Token expired; refresh pending.")
			}

			working, err := deps.Store.Working()
			if err != nil {
				return err
			}
			if working {
				fmt.Fprintln(deps.Out, "Refresh in progress...")
			}

			lastError, err := deps.Store.LastError()
			if err != nil {
				return err
			}
			if lastError != "" {
				fmt.Fprintf(deps.Out, "Last error: %s\n", lastError)
			}

			clusters, err := deps.Store.Clusters()
			if err != nil {
				return err
			}
			if len(clusters) > 0 {
				fmt.Fprintf(deps.Out, "Clusters (%d):\n", len(clusters))
				for _, cluster := range clusters {
					fmt.Fprintf(deps.Out, "  %s (profile=%s region=%s)\n", cluster.Name, cluster.Profile, cluster.Region)
				}
			}
			return nil
		},
	}
}
