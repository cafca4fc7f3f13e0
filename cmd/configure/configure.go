package configure

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/BerryBytes/frost/internal/config"
	"github.com/BerryBytes/frost/models"
	promptutils "github.com/BerryBytes/frost/utils/prompt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var regionPattern = regexp.MustCompile(`^[a-z]+-[a-z]+-[0-9]+$`)

type Dependencies struct {
	Store    config.Store
	Prompter promptutils.Prompter
	Log      *zap.Logger
}

// NewConfigureCmd prompts for the SSO start URL and region. Saving a new
// configuration invalidates the cached token so the next cycle
// re-authenticates immediately.
func NewConfigureCmd(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:          "configure",
		Short:        "Set the SSO start URL and region",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := deps.Store.UserConfig()
			if err != nil {
				return err
			}

			defaultURL := ""
			defaultRegion := "us-east-1"
			if current != nil {
				defaultURL = current.StartURL
				defaultRegion = current.Region
			}

			startURL, err := deps.Prompter.PromptWithDefault("AWS SSO start URL", defaultURL, validateStartURL)
			if err != nil {
				if errors.Is(err, promptutils.ErrInterrupted) {
					deps.Log.Warn("configuration cancelled")
					return nil
				}
				return err
			}

			region, err := deps.Prompter.PromptWithDefault("AWS SSO region", defaultRegion, validateRegion)
			if err != nil {
				if errors.Is(err, promptutils.ErrInterrupted) {
					deps.Log.Warn("configuration cancelled")
					return nil
				}
				return err
			}

			// Saving drops the cached token, so replacing a live
			// configuration deserves an explicit yes.
			if current != nil && !deps.Prompter.PromptForConfirmation("Overwrite existing configuration") {
				deps.Log.Info("keeping existing configuration")
				return nil
			}

			if err := deps.Store.SetUserConfig(models.UserConfig{StartURL: startURL, Region: region}); err != nil {
				return err
			}
			// The old token belongs to the old configuration.
			if err := deps.Store.DeleteToken(); err != nil {
				return err
			}

			fmt.Printf("Configuration saved. Run 'frost refresh' to log in.\n")
			return nil
		},
	}
}

func validateStartURL(value string) error {
	parsed, err := url.Parse(value)
	if err != nil || (parsed.Scheme != "https" && parsed.Scheme != "http") || parsed.Host == "" {
		return errors.New("must be a valid http(s) URL")
	}
	return nil
}

func validateRegion(value string) error {
	if !regionPattern.MatchString(value) {
		return errors.New("must be a region like us-east-1")
	}
	return nil
}
