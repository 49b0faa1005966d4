package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCacheCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage locally cached TDMU data",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove cached semesters, schedules and the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.client.ClearCache(cmd.Context())

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared. Run `ts login` to sign in again.")
			return err
		},
	})

	return cmd
}
