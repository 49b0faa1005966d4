package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the TDMU session and cached data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.client.Logout(cmd.Context())

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return err
		},
	}
}
