package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/bnema/tschedule/internal/domain"
	"github.com/bnema/tschedule/internal/ports"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultIdentityUsername = "user@gw"
	DefaultCacheDuration    = time.Hour
)

type ClientOptions struct {
	IdentityUsername string
	// CacheEnabled defaults to true when nil.
	CacheEnabled  *bool
	CacheDuration time.Duration
	Clock         ports.Clock
	Logger        *zerolog.Logger
}

type ScheduleClient struct {
	api           ports.ScheduleAPI
	store         *SessionStore
	clock         ports.Clock
	logger        zerolog.Logger
	username      string
	cacheEnabled  bool
	cacheDuration time.Duration

	mu            sync.RWMutex
	authenticated bool

	flights singleflight.Group
}

func NewScheduleClient(api ports.ScheduleAPI, kv ports.KeyValueStore, opts ClientOptions) *ScheduleClient {
	clock := opts.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	username := strings.TrimSpace(opts.IdentityUsername)
	if username == "" {
		username = DefaultIdentityUsername
	}

	cacheEnabled := true
	if opts.CacheEnabled != nil {
		cacheEnabled = *opts.CacheEnabled
	}

	cacheDuration := opts.CacheDuration
	if cacheDuration <= 0 {
		cacheDuration = DefaultCacheDuration
	}

	return &ScheduleClient{
		api:           api,
		store:         NewSessionStore(kv, clock, logger),
		clock:         clock,
		logger:        logger,
		username:      username,
		cacheEnabled:  cacheEnabled,
		cacheDuration: cacheDuration,
	}
}

func (c *ScheduleClient) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authenticated
}

// AuthenticateWithAssertion exchanges an identity assertion for a bearer
// token. On success the token is persisted and attached to every later
// request made by this client.
func (c *ScheduleClient) AuthenticateWithAssertion(ctx context.Context, assertion string) (domain.Credential, error) {
	const op = "authenticate"

	if strings.TrimSpace(assertion) == "" {
		return domain.Credential{}, domain.NewOpError(op, domain.ErrAuthentication, errors.New("identity assertion is empty"))
	}

	credential, err := c.api.Login(ctx, ports.LoginRequest{Username: c.username, Assertion: assertion})
	if err != nil {
		c.logger.Debug().Err(err).Msg("login request failed")
		return domain.Credential{}, domain.NewOpError(op, domain.ErrAuthentication, err)
	}
	if strings.TrimSpace(credential.Token) == "" {
		return domain.Credential{}, domain.NewOpError(op, domain.ErrAuthentication, errors.New("login response missing access token"))
	}

	if err := c.store.SaveToken(ctx, credential.Token); err != nil {
		c.logger.Debug().Err(err).Msg("persist access token failed")
		return domain.Credential{}, domain.NewOpError(op, domain.ErrAuthentication, err)
	}

	c.api.SetAuthorization(credential.AuthorizationHeader())
	c.setAuthenticated(true)

	return credential, nil
}

// RestoreSession attaches a previously persisted token. The token type is
// not persisted, so the default scheme is used.
func (c *ScheduleClient) RestoreSession(ctx context.Context) bool {
	token, ok := c.store.LoadToken(ctx)
	if !ok {
		return false
	}

	c.api.SetAuthorization(domain.Credential{Token: token}.AuthorizationHeader())
	c.setAuthenticated(true)
	return true
}

func (c *ScheduleClient) FetchAuthConfig(ctx context.Context) (domain.AuthConfig, error) {
	cfg, err := c.api.AuthConfig(ctx)
	if err != nil {
		c.logger.Debug().Err(err).Msg("fetch auth config failed")
		return domain.AuthConfig{}, domain.NewOpError("fetch auth config", domain.ErrFetch, err)
	}
	return cfg, nil
}

func (c *ScheduleClient) ValidateAccess(ctx context.Context) (json.RawMessage, error) {
	const op = "validate access"

	payload, err := c.api.CheckAccess(ctx)
	if err != nil {
		c.logger.Debug().Err(err).Msg("validate access failed")
		if errors.Is(err, domain.ErrSessionRejected) {
			return nil, domain.NewOpError(op, domain.ErrAuthorization, err)
		}
		return nil, domain.NewOpError(op, domain.ErrFetch, err)
	}
	return payload, nil
}

func (c *ScheduleClient) ListSemesters(ctx context.Context) ([]domain.Semester, error) {
	semesters, err := cachedFetch(ctx, c, domain.SemestersCacheKey, c.api.Semesters)
	if err != nil {
		c.logger.Debug().Err(err).Msg("list semesters failed")
		return nil, domain.NewOpError("list semesters", domain.ErrFetch, err)
	}
	return semesters, nil
}

func (c *ScheduleClient) GetSchedule(ctx context.Context, semesterID string, userID string) ([]domain.ScheduleItem, error) {
	userID = strings.TrimSpace(userID)
	key := domain.ScheduleCacheKey(semesterID, userID)

	items, err := cachedFetch(ctx, c, key, func(ctx context.Context) ([]domain.ScheduleItem, error) {
		return c.api.Schedule(ctx, semesterID, userID)
	})
	if err != nil {
		c.logger.Debug().Err(err).Str("semester", semesterID).Msg("get schedule failed")
		return nil, domain.NewOpError("get schedule", domain.ErrFetch, err)
	}
	return items, nil
}

// FetchStage names a step of FetchCurrentSchedule.
type FetchStage string

const (
	StageCheckingAccess   FetchStage = "Checking access"
	StageLoadingSemesters FetchStage = "Loading semesters"
	StageLoadingSchedule  FetchStage = "Loading schedule"
)

// FetchCurrentSchedule validates the session, picks the first semester the
// server lists and returns its schedule. The first-element rule mirrors the
// server ordering and is not checked against semester dates.
func (c *ScheduleClient) FetchCurrentSchedule(ctx context.Context) (domain.ScheduleResult, error) {
	return c.FetchCurrentScheduleWithProgress(ctx, nil)
}

// FetchCurrentScheduleWithProgress is FetchCurrentSchedule calling report
// before each step. report may be nil.
func (c *ScheduleClient) FetchCurrentScheduleWithProgress(ctx context.Context, report func(FetchStage)) (domain.ScheduleResult, error) {
	const op = "fetch current schedule"

	if report == nil {
		report = func(FetchStage) {}
	}

	report(StageCheckingAccess)
	if _, err := c.ValidateAccess(ctx); err != nil {
		return domain.ScheduleResult{}, domain.NewOpError(op, domain.ErrFetch, err)
	}

	report(StageLoadingSemesters)
	semesters, err := c.ListSemesters(ctx)
	if err != nil {
		return domain.ScheduleResult{}, domain.NewOpError(op, domain.ErrFetch, err)
	}

	current, ok := domain.CurrentSemester(semesters)
	if !ok {
		return domain.ScheduleResult{}, domain.NewOpError(op, domain.ErrFetch, domain.ErrNoSemester)
	}

	report(StageLoadingSchedule)
	items, err := c.GetSchedule(ctx, current.ID, "")
	if err != nil {
		return domain.ScheduleResult{}, domain.NewOpError(op, domain.ErrFetch, err)
	}

	return domain.ScheduleResult{
		Semester:  current,
		Items:     items,
		FetchedAt: c.clock.Now().UTC().Format(time.RFC3339Nano),
	}, nil
}

func (c *ScheduleClient) ClearCache(ctx context.Context) {
	c.store.ClearNamespace(ctx, domain.NamespacePrefix)
}

// Logout forgets the credential and all cached data. It never fails; cleanup
// errors are logged and the client still ends unauthenticated.
func (c *ScheduleClient) Logout(ctx context.Context) {
	if err := c.store.DeleteToken(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("logout: remove access token")
	}
	c.ClearCache(ctx)
	c.api.ClearAuthorization()
	c.setAuthenticated(false)
}

func (c *ScheduleClient) setAuthenticated(value bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authenticated = value
}

// cachedFetch serves key from the session cache when enabled, otherwise runs
// fetch and caches its result. Concurrent misses on the same key share one
// fetch. The shared fetch does not inherit the first caller's cancellation or
// deadline; each caller stops waiting when its own context ends.
func cachedFetch[T any](ctx context.Context, c *ScheduleClient, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	if c.cacheEnabled {
		if cached, ok := ReadCache[T](ctx, c.store, key, c.cacheDuration); ok {
			c.logger.Debug().Str("key", key).Msg("cache hit")
			return cached, nil
		}
	}

	shared := context.WithoutCancel(ctx)
	results := c.flights.DoChan(key, func() (any, error) {
		fresh, err := fetch(shared)
		if err != nil {
			return nil, err
		}
		if c.cacheEnabled {
			WriteCache(shared, c.store, key, fresh)
		}
		return fresh, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			return zero, result.Err
		}
		return result.Val.(T), nil
	}
}
