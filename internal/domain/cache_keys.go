package domain

import "strings"

const (
	NamespacePrefix   = "tdmu_"
	AccessTokenKey    = NamespacePrefix + "access_token"
	SemestersCacheKey = NamespacePrefix + "semesters"

	currentUserKeyPart = "current"
)

func ScheduleCacheKey(semesterID, userID string) string {
	user := strings.TrimSpace(userID)
	if user == "" {
		user = currentUserKeyPart
	}
	return NamespacePrefix + "schedule_" + semesterID + "_" + user
}
