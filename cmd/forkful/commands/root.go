package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"forkful/internal/api"
	"forkful/internal/app"
	"forkful/pkg/logging"
)

var (
	apiURL string
	home   string

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:           "forkful",
		Short:         "Command-line client for the forkful recipe service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup()

			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if apiURL != "" {
				cfg.BaseURL = apiURL
			}
			if home != "" {
				cfg.Home = home
			}

			wire, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (default $FORKFUL_API_URL)")
	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.forkful)")

	root.AddCommand(
		registerCmd(), loginCmd(), logoutCmd(), whoamiCmd(),
		forgotPasswordCmd(), resetPasswordCmd(),
		recipesCmd(), ingredientsCmd(), profileCmd(), contactCmd(),
	)

	err := root.Execute()
	if err != nil {
		if errors.Is(err, api.ErrSessionExpired) {
			fmt.Fprintln(os.Stderr, "Your session has expired. Run `forkful login` to continue.")
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	return err
}
