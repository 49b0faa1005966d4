package schedule

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/tschedule/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderScheduleGroupsByDayInAPIOrder(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 5, 0, 0, time.UTC)

	output := Render(domain.ScheduleResult{
		Semester: domain.Semester{ID: "1", DisplayName: "HK1"},
		Items: []domain.ScheduleItem{
			{CourseCode: "CS101", CourseName: "Intro to CS", DayOfWeek: "Mon", Period: "3", Room: "A1.101"},
			{CourseCode: "MA201", DayOfWeek: "Wed", Period: "1-2", Instructor: "Dr. Binh"},
			{CourseCode: "CS102", DayOfWeek: "Mon", Period: "5"},
		},
		FetchedAt: "2026-09-01T08:00:00Z",
	}, RenderOptions{Now: now})

	assert.Contains(t, output, "Semester: HK1 (1)")
	assert.Contains(t, output, "classes: 3")
	assert.Contains(t, output, "fetched 5 minutes ago")
	assert.Contains(t, output, "CS101 Intro to CS")
	assert.Contains(t, output, "room A1.101")
	assert.Contains(t, output, "Dr. Binh")

	mon := strings.Index(output, "Mon")
	wed := strings.Index(output, "Wed")
	cs102 := strings.Index(output, "CS102")
	require.True(t, mon >= 0 && wed >= 0 && cs102 >= 0)
	assert.Less(t, mon, wed)
	assert.Less(t, cs102, wed, "later items for an earlier day stay in that day's group")
}

func TestRenderScheduleEmptyState(t *testing.T) {
	output := Render(domain.ScheduleResult{Semester: domain.Semester{ID: "1"}}, RenderOptions{})

	assert.Contains(t, output, "classes: 0")
	assert.Contains(t, output, "No classes scheduled")
}

func TestRenderScheduleNumericWeekdays(t *testing.T) {
	output := Render(domain.ScheduleResult{
		Semester: domain.Semester{ID: "1"},
		Items:    []domain.ScheduleItem{{CourseCode: "CS101", DayOfWeek: "2"}, {CourseCode: "PE100"}},
	}, RenderOptions{})

	assert.Contains(t, output, "Monday")
	assert.Contains(t, output, unknownDay)
}

func TestRenderSemestersMarksFirstAsCurrent(t *testing.T) {
	output := RenderSemesters([]domain.Semester{
		{ID: "20242", DisplayName: "HK2 2024-2025"},
		{ID: "20241", DisplayName: "HK1 2024-2025"},
	})

	assert.Contains(t, output, "semesters: 2")
	lines := strings.Split(output, "\n")
	var currentLines []string
	for _, line := range lines {
		if strings.Contains(line, "[current]") {
			currentLines = append(currentLines, line)
		}
	}
	require.Len(t, currentLines, 1)
	assert.Contains(t, currentLines[0], "20242")
}

func TestRenderSemestersEmpty(t *testing.T) {
	output := RenderSemesters(nil)

	assert.Contains(t, output, "No semesters available.")
}

func TestFetchedLine(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 30, 0, time.UTC)

	assert.Empty(t, fetchedLine("", now))
	assert.Equal(t, "fetched: garbage", fetchedLine("garbage", now))
	assert.Contains(t, fetchedLine("2026-09-01T08:00:00Z", now), "fetched just now")
	assert.Contains(t, fetchedLine("2026-09-01T07:59:00Z", now), "fetched 1 minute ago")
	assert.Equal(t, "fetched: 2026-09-01T08:00:00Z", fetchedLine("2026-09-01T08:00:00Z", time.Time{}))
}
