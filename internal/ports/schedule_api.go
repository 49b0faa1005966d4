package ports

import (
	"context"
	"encoding/json"

	"github.com/bnema/tschedule/internal/domain"
)

type LoginRequest struct {
	Username  string
	Assertion string
}

// ScheduleAPI is the remote TDMU API. Implementations hold their own
// Authorization header so two clients never share credentials.
type ScheduleAPI interface {
	Login(ctx context.Context, req LoginRequest) (domain.Credential, error)
	AuthConfig(ctx context.Context) (domain.AuthConfig, error)
	CheckAccess(ctx context.Context) (json.RawMessage, error)
	Semesters(ctx context.Context) ([]domain.Semester, error)
	Schedule(ctx context.Context, semesterID string, userID string) ([]domain.ScheduleItem, error)
	SetAuthorization(value string)
	ClearAuthorization()
	Authorization() string
}
