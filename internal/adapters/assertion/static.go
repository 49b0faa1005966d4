package assertion

import (
	"context"
	"errors"
	"strings"

	"github.com/bnema/tschedule/internal/ports"
)

// Static hands out an assertion obtained elsewhere, such as a flag or
// environment variable.
type Static struct {
	Value string
}

var _ ports.AssertionProvider = Static{}

func (s Static) Assertion(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	value := strings.TrimSpace(s.Value)
	if value == "" {
		return "", errors.New("identity assertion is empty")
	}
	return value, nil
}
