package tdmu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/bnema/tschedule/internal/domain"
	"github.com/bnema/tschedule/internal/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultBaseEndpoint   = "https://dkmh.tdmu.edu.vn/public/api"
	DefaultRequestTimeout = 30 * time.Second
	UserAgent             = "Mozilla/5.0 (compatible; TDMUScheduleFetcher/1.0)"

	loginPath       = "auth/login"
	checkAccessPath = "dkmh/w-checkvalidallchucnang"
	semestersPath   = "sch/w-locdshockytkbuser"
	schedulePath    = "sch/w-locdstkbtuanusertheohocky"
	authConfigPath  = "authconfig"
	publicAPISuffix = "/public/api"

	maxResponseBytes = 1 << 20
)

// StatusError reports a non-2xx answer. The body is kept for debugging but
// stays out of Error().
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return domain.ErrSessionRejected
	}
	return nil
}

type Options struct {
	BaseEndpoint   string
	HTTPClient     ports.HTTPDoer
	RequestTimeout time.Duration
	Logger         *zerolog.Logger
}

// API talks to the TDMU REST endpoints. Each instance holds its own
// Authorization header.
type API struct {
	base           *url.URL
	hostRoot       string
	client         ports.HTTPDoer
	requestTimeout time.Duration
	logger         zerolog.Logger
	requestID      func() string

	mu            sync.RWMutex
	authorization string
}

var _ ports.ScheduleAPI = (*API)(nil)

func New(opts Options) (*API, error) {
	endpoint := strings.TrimSpace(opts.BaseEndpoint)
	if endpoint == "" {
		endpoint = DefaultBaseEndpoint
	}
	endpoint = strings.TrimRight(endpoint, "/")

	base, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse base endpoint: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, errors.New("base endpoint must use http or https")
	}
	if base.Host == "" {
		return nil, errors.New("base endpoint host is required")
	}

	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &API{
		base:           base,
		hostRoot:       strings.Replace(endpoint, publicAPISuffix, "", 1),
		client:         client,
		requestTimeout: timeout,
		logger:         logger,
		requestID:      uuid.NewString,
	}, nil
}

func (a *API) SetAuthorization(value string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.authorization = value
}

func (a *API) ClearAuthorization() {
	a.SetAuthorization("")
}

func (a *API) Authorization() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.authorization
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   *int64 `json:"expires_in"`
}

func (a *API) Login(ctx context.Context, req ports.LoginRequest) (domain.Credential, error) {
	values := url.Values{}
	values.Set("username", req.Username)
	values.Set("password", req.Assertion)
	values.Set("grant_type", "password")

	body, err := a.do(ctx, call{
		op:          "login",
		method:      http.MethodPost,
		url:         a.endpoint(loginPath, nil),
		body:        strings.NewReader(values.Encode()),
		contentType: "application/x-www-form-urlencoded",
	})
	if err != nil {
		return domain.Credential{}, err
	}

	var payload loginResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.Credential{}, fmt.Errorf("decode login response: %w", err)
	}
	if payload.AccessToken == "" {
		return domain.Credential{}, errors.New("login response missing access token")
	}

	return domain.Credential{
		Token:     payload.AccessToken,
		TokenType: payload.TokenType,
		ExpiresIn: payload.ExpiresIn,
	}, nil
}

func (a *API) AuthConfig(ctx context.Context) (domain.AuthConfig, error) {
	body, err := a.do(ctx, call{
		op:     "auth config",
		method: http.MethodGet,
		url:    a.hostRoot + "/" + authConfigPath,
	})
	if err != nil {
		return domain.AuthConfig{}, err
	}

	return decodeAuthConfig(body)
}

func (a *API) CheckAccess(ctx context.Context) (json.RawMessage, error) {
	body, err := a.do(ctx, call{
		op:            "check access",
		method:        http.MethodGet,
		url:           a.endpoint(checkAccessPath, nil),
		authenticated: true,
	})
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(body) {
		return nil, errors.New("decode access check response: invalid json")
	}

	return json.RawMessage(body), nil
}

func (a *API) Semesters(ctx context.Context) ([]domain.Semester, error) {
	body, err := a.do(ctx, call{
		op:            "list semesters",
		method:        http.MethodGet,
		url:           a.endpoint(semestersPath, nil),
		authenticated: true,
	})
	if err != nil {
		return nil, err
	}

	return decodeSemesters(body)
}

func (a *API) Schedule(ctx context.Context, semesterID string, userID string) ([]domain.ScheduleItem, error) {
	query := url.Values{}
	query.Set("hocky", semesterID)
	if userID != "" {
		query.Set("user", userID)
	}

	body, err := a.do(ctx, call{
		op:            "get schedule",
		method:        http.MethodGet,
		url:           a.endpoint(schedulePath, query),
		authenticated: true,
	})
	if err != nil {
		return nil, err
	}

	return decodeScheduleItems(body)
}

type call struct {
	op            string
	method        string
	url           string
	body          io.Reader
	contentType   string
	authenticated bool
}

func (a *API) do(ctx context.Context, c call) ([]byte, error) {
	requestCtx, cancel := a.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, c.method, c.url, c.body)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", c.op, err)
	}

	requestID := a.requestID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("X-Request-ID", requestID)
	if c.contentType != "" {
		req.Header.Set("Content-Type", c.contentType)
	}
	if c.authenticated {
		if authorization := a.Authorization(); authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
	}

	logger := a.logger.With().Str("op", c.op).Str("request_id", requestID).Logger()

	resp, err := a.client.Do(req)
	if err != nil {
		logger.Debug().Err(err).Msg("tdmu request failed")
		return nil, fmt.Errorf("%s request: %w", c.op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", c.op, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Debug().Int("status", resp.StatusCode).Msg("tdmu request rejected")
		return nil, &StatusError{Op: c.op, StatusCode: resp.StatusCode, Body: string(body)}
	}

	logger.Debug().Int("status", resp.StatusCode).Int("bytes", len(body)).Msg("tdmu request done")
	return body, nil
}

func (a *API) endpoint(path string, query url.Values) string {
	endpoint := a.base.JoinPath(path)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}
	return endpoint.String()
}

func (a *API) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, a.requestTimeout)
}
