package ports

import (
	"context"
	"errors"
)

var ErrAssertionCanceled = errors.New("identity assertion canceled")

// AssertionProvider produces an opaque identity assertion that the schedule
// API exchanges for a bearer token.
type AssertionProvider interface {
	Assertion(ctx context.Context) (string, error)
}
