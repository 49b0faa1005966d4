package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAuthConfigCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "authconfig",
		Short: "Show the portal's sign-in configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.client.FetchAuthConfig(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, cfg)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "google client id: %s\n", cfg.IdentityProviderClientID)
			_, _ = fmt.Fprintf(out, "logoff: %t\n", cfg.Logoff)
			_, err = fmt.Fprintf(out, "timeout: %d\n", cfg.TimeoutSeconds)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
