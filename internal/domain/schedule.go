package domain

import "strings"

type Semester struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

func (s Semester) Label() string {
	name := strings.TrimSpace(s.DisplayName)
	switch {
	case name != "" && s.ID != "":
		return name + " (" + s.ID + ")"
	case name != "":
		return name
	default:
		return s.ID
	}
}

type ScheduleItem struct {
	ID         string `json:"id,omitempty"`
	CourseCode string `json:"courseCode,omitempty"`
	CourseName string `json:"courseName,omitempty"`
	DayOfWeek  string `json:"dayOfWeek,omitempty"`
	Period     string `json:"period,omitempty"`
	Room       string `json:"room,omitempty"`
	Instructor string `json:"instructor,omitempty"`
}

// ScheduleResult is the outcome of fetching the current semester's schedule.
// It is never persisted.
type ScheduleResult struct {
	Semester  Semester       `json:"semester"`
	Items     []ScheduleItem `json:"schedule"`
	FetchedAt string         `json:"fetchedAt"`
}

// CurrentSemester returns the first semester of the list as reported by the
// server. No date range check is made; the server ordering is trusted.
func CurrentSemester(semesters []Semester) (Semester, bool) {
	if len(semesters) == 0 {
		return Semester{}, false
	}
	return semesters[0], true
}
