package cmd

import (
	"context"
	"strings"
	"time"

	schedulerender "github.com/bnema/tschedule/internal/adapters/render/schedule"
	"github.com/bnema/tschedule/internal/application"
	"github.com/bnema/tschedule/internal/domain"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *app) *cobra.Command {
	var (
		semesterID string
		userID     string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the weekly schedule of the current or a given semester",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd.Context(), app); err != nil {
				return err
			}

			var result domain.ScheduleResult
			fetch := func(ctx context.Context, report func(string)) error {
				var err error
				result, err = loadSchedule(ctx, app, strings.TrimSpace(semesterID), strings.TrimSpace(userID), report)
				return err
			}
			if err := runFetch(cmd, asJSON, "Fetching schedule", fetch); err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, result)
			}
			return writeRendered(cmd, app.scheduleRenderer(result, schedulerender.RenderOptions{Now: app.now()}))
		},
	}

	cmd.Flags().StringVar(&semesterID, "semester", "", "Semester ID (default: current semester)")
	cmd.Flags().StringVar(&userID, "user", "", "Student ID to look up (default: signed-in user)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func loadSchedule(ctx context.Context, app *app, semesterID string, userID string, report func(string)) (domain.ScheduleResult, error) {
	if semesterID == "" && userID == "" {
		return app.client.FetchCurrentScheduleWithProgress(ctx, func(stage application.FetchStage) {
			report(string(stage))
		})
	}

	semester := domain.Semester{ID: semesterID}
	report(string(application.StageLoadingSemesters))
	semesters, err := app.client.ListSemesters(ctx)
	if err != nil {
		return domain.ScheduleResult{}, err
	}
	if semesterID == "" {
		current, ok := domain.CurrentSemester(semesters)
		if !ok {
			return domain.ScheduleResult{}, domain.NewOpError("get schedule", domain.ErrFetch, domain.ErrNoSemester)
		}
		semester = current
	} else {
		for _, candidate := range semesters {
			if candidate.ID == semesterID {
				semester = candidate
				break
			}
		}
	}

	report(string(application.StageLoadingSchedule))
	items, err := app.client.GetSchedule(ctx, semester.ID, userID)
	if err != nil {
		return domain.ScheduleResult{}, err
	}

	return domain.ScheduleResult{
		Semester:  semester,
		Items:     items,
		FetchedAt: app.now().UTC().Format(time.RFC3339Nano),
	}, nil
}
