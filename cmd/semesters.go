package cmd

import (
	"context"

	"github.com/bnema/tschedule/internal/domain"
	"github.com/spf13/cobra"
)

func newSemestersCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "semesters",
		Short: "List semesters with a timetable (first is current)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd.Context(), app); err != nil {
				return err
			}

			var semesters []domain.Semester
			fetch := func(ctx context.Context, _ func(string)) error {
				var err error
				semesters, err = app.client.ListSemesters(ctx)
				return err
			}
			if err := runFetch(cmd, asJSON, "Loading semesters", fetch); err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, semesters)
			}
			return writeRendered(cmd, app.semestersRenderer(semesters))
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

// runFetch shows fetch progress on stderr for human output and runs quietly
// for JSON output.
func runFetch(cmd *cobra.Command, quiet bool, label string, fetch func(context.Context, func(string)) error) error {
	if quiet {
		return fetch(cmd.Context(), func(string) {})
	}
	return runFetchProgress(cmd.Context(), cmd.ErrOrStderr(), label, fetch)
}
