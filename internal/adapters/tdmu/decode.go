package tdmu

import (
	"errors"
	"fmt"

	"github.com/bnema/tschedule/internal/domain"
	"github.com/tidwall/gjson"
)

// The server has shipped both Vietnamese and English field names over time;
// the first present alias wins.
var (
	semesterIDFields   = []string{"id", "hocKyId"}
	semesterNameFields = []string{"tenHocKy", "semesterName"}

	itemIDFields         = []string{"id"}
	itemCourseCodeFields = []string{"maMon", "courseCode"}
	itemCourseNameFields = []string{"tenMon", "courseName"}
	itemDayFields        = []string{"thu", "dayOfWeek"}
	itemPeriodFields     = []string{"tiet", "period"}
	itemRoomFields       = []string{"phong", "room"}
	itemInstructorFields = []string{"giangVien", "instructor"}
)

func decodeSemesters(body []byte) ([]domain.Semester, error) {
	records, err := parseArray("semesters", body)
	if err != nil {
		return nil, err
	}

	semesters := make([]domain.Semester, 0, len(records))
	for _, record := range records {
		semesters = append(semesters, domain.Semester{
			ID:          firstString(record, semesterIDFields),
			DisplayName: firstString(record, semesterNameFields),
		})
	}

	return semesters, nil
}

func decodeScheduleItems(body []byte) ([]domain.ScheduleItem, error) {
	records, err := parseArray("schedule", body)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ScheduleItem, 0, len(records))
	for _, record := range records {
		items = append(items, domain.ScheduleItem{
			ID:         firstString(record, itemIDFields),
			CourseCode: firstString(record, itemCourseCodeFields),
			CourseName: firstString(record, itemCourseNameFields),
			DayOfWeek:  firstString(record, itemDayFields),
			Period:     firstString(record, itemPeriodFields),
			Room:       firstString(record, itemRoomFields),
			Instructor: firstString(record, itemInstructorFields),
		})
	}

	return items, nil
}

func decodeAuthConfig(body []byte) (domain.AuthConfig, error) {
	if !gjson.ValidBytes(body) {
		return domain.AuthConfig{}, errors.New("decode auth config: invalid json")
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return domain.AuthConfig{}, errors.New("decode auth config: expected object")
	}

	return domain.AuthConfig{
		IdentityProviderClientID: root.Get("gg").String(),
		Logoff:                   root.Get("logoff").Bool(),
		TimeoutSeconds:           int(root.Get("timeout").Int()),
	}, nil
}

func parseArray(what string, body []byte) ([]gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("decode %s: invalid json", what)
	}

	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, fmt.Errorf("decode %s: expected array, got %s", what, root.Type)
	}

	records := root.Array()
	for i, record := range records {
		if !record.IsObject() {
			return nil, fmt.Errorf("decode %s: element %d is not an object", what, i)
		}
	}

	return records, nil
}

func firstString(record gjson.Result, fields []string) string {
	for _, field := range fields {
		value := record.Get(field)
		switch value.Type {
		case gjson.String:
			if value.Str != "" {
				return value.Str
			}
		case gjson.Number:
			return value.Raw
		case gjson.True, gjson.False:
			return value.String()
		}
	}
	return ""
}
