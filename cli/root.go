package cli

import (
	"farmereats/config"
	"farmereats/gateway"
	"farmereats/services/auth"
	"farmereats/services/registration"
	"farmereats/utils"

	"github.com/spf13/cobra"
)

var (
	baseURL string

	gatewayClient *gateway.Client
	authService   *auth.DefaultAuthService
	wizard        *registration.Wizard
)

// Execute wires configuration, logging and the gateway client, then
// dispatches to the subcommands.
func Execute() error {
	root := &cobra.Command{
		Use:   "farmereats",
		Short: "FarmerEats onboarding client",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadConfig()
			utils.InitializeLogger()
			if baseURL == "" {
				baseURL = config.AppConfig.APIBaseURL
			}

			gatewayClient = gateway.NewClient(baseURL, config.RequestTimeout())
			authService = auth.NewAuthService(gatewayClient)

			store := registration.NewFormStore()
			submitter := &registration.GatewaySubmitter{Gateway: gatewayClient}
			wizard = registration.NewWizard(store, submitter)
		},
	}

	root.PersistentFlags().StringVar(&baseURL, "api", "", "gateway base URL (default from config)")

	root.AddCommand(signupCmd(), loginCmd(), forgotPasswordCmd(), mockGatewayCmd())
	return root.Execute()
}
