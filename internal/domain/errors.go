package domain

import "errors"

var (
	ErrAuthentication   = errors.New("failed to authenticate with TDMU system")
	ErrAuthorization    = errors.New("access to TDMU functions was rejected")
	ErrFetch            = errors.New("failed to fetch data from TDMU system")
	ErrNoSemester       = errors.New("no semesters available")
	ErrCache            = errors.New("cache unavailable")
	ErrKeyNotFound      = errors.New("key not found")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionRejected  = errors.New("session rejected by server")
)

// OpError reports a failed client operation with a generic message. The
// underlying cause stays reachable through errors.Is and errors.As but is
// never part of Error(), so server internals do not leak to callers.
type OpError struct {
	Op   string
	Kind error
	Err  error
}

func (e *OpError) Error() string {
	if e.Op == "" {
		return e.Kind.Error()
	}
	return e.Op + ": " + e.Kind.Error()
}

func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func NewOpError(op string, kind error, err error) error {
	return &OpError{Op: op, Kind: kind, Err: err}
}
