package schedule

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/tschedule/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const unknownDay = "Unscheduled"

type RenderOptions struct {
	Now time.Time
}

func Render(result domain.ScheduleResult, opts RenderOptions) string {
	return renderSchedule(result, opts, newStyles())
}

// RenderSemesters lists semesters in server order, marking the first one as
// current.
func RenderSemesters(semesters []domain.Semester) string {
	return renderSemesters(semesters, newStyles())
}

func renderSchedule(result domain.ScheduleResult, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("TDMU Weekly Schedule"),
		s.semester.Render(semesterTitle(result.Semester)),
	}
	if fetched := fetchedLine(result.FetchedAt, opts.Now); fetched != "" {
		lines = append(lines, s.header.Render(fetched))
	}
	lines = append(lines, s.header.Render(fmt.Sprintf("classes: %d", len(result.Items))))

	if len(result.Items) == 0 {
		lines = append(lines, s.empty.Render("No classes scheduled for this semester."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, group := range groupByDay(result.Items) {
		lines = append(lines, s.section.Render(renderDay(group, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSemesters(semesters []domain.Semester, s styles) string {
	lines := []string{
		s.title.Render("TDMU Semesters"),
		s.header.Render(fmt.Sprintf("semesters: %d", len(semesters))),
	}

	if len(semesters) == 0 {
		lines = append(lines, s.empty.Render("No semesters available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, semester := range semesters {
		line := s.course.Render(semester.Label())
		if i == 0 {
			line = lipgloss.JoinHorizontal(lipgloss.Top, line, " ", s.current.Render("[current]"))
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

type dayGroup struct {
	day   string
	items []domain.ScheduleItem
}

// groupByDay keeps the order in which days first appear in the API response.
func groupByDay(items []domain.ScheduleItem) []dayGroup {
	groups := make([]dayGroup, 0)
	index := make(map[string]int)
	for _, item := range items {
		day := strings.TrimSpace(item.DayOfWeek)
		if day == "" {
			day = unknownDay
		}
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, dayGroup{day: day})
		}
		groups[i].items = append(groups[i].items, item)
	}
	return groups
}

func renderDay(group dayGroup, s styles) string {
	parts := []string{s.day.Render(dayLabel(group.day))}
	for _, item := range group.items {
		parts = append(parts, itemLine(item, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func itemLine(item domain.ScheduleItem, s styles) string {
	period := "-"
	if strings.TrimSpace(item.Period) != "" {
		period = "P" + strings.TrimSpace(item.Period)
	}

	course := strings.TrimSpace(item.CourseCode)
	if name := strings.TrimSpace(item.CourseName); name != "" {
		if course != "" {
			course += " "
		}
		course += name
	}
	if course == "" {
		course = "(untitled course)"
	}

	details := make([]string, 0, 2)
	if room := strings.TrimSpace(item.Room); room != "" {
		details = append(details, "room "+room)
	}
	if instructor := strings.TrimSpace(item.Instructor); instructor != "" {
		details = append(details, instructor)
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, "  ", s.period.Render(period), s.course.Render(course))
	if len(details) > 0 {
		line += " " + s.detail.Render("("+strings.Join(details, ", ")+")")
	}
	return line
}

// dayLabel spells out the numeric weekday codes the API uses, where 2 is
// Monday and 8 is Sunday.
func dayLabel(day string) string {
	switch day {
	case "2":
		return "Monday"
	case "3":
		return "Tuesday"
	case "4":
		return "Wednesday"
	case "5":
		return "Thursday"
	case "6":
		return "Friday"
	case "7":
		return "Saturday"
	case "8", "CN":
		return "Sunday"
	default:
		return day
	}
}

func semesterTitle(semester domain.Semester) string {
	label := semester.Label()
	if label == "" {
		label = "unknown"
	}
	return "Semester: " + label
}

func fetchedLine(fetchedAt string, now time.Time) string {
	if fetchedAt == "" {
		return ""
	}

	parsed, err := time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil {
		return "fetched: " + fetchedAt
	}
	if now.IsZero() {
		return "fetched: " + parsed.Format(time.RFC3339)
	}

	age := now.Sub(parsed)
	if age < time.Minute {
		return fmt.Sprintf("fetched just now (%s)", parsed.Local().Format("15:04"))
	}

	minutes := int(math.Floor(age.Minutes()))
	if minutes < 60 {
		suffix := "minutes"
		if minutes == 1 {
			suffix = "minute"
		}
		return fmt.Sprintf("fetched %d %s ago (%s)", minutes, suffix, parsed.Local().Format("15:04"))
	}

	return "fetched: " + parsed.Local().Format("15:04 on 02 Jan")
}
