package tdmu

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/tschedule/internal/adapters/kv/memory"
	"github.com/bnema/tschedule/internal/application"
	"github.com/bnema/tschedule/internal/domain"
	"github.com/bnema/tschedule/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, handler http.Handler) (*API, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	api, err := New(Options{BaseEndpoint: server.URL + "/public/api", HTTPClient: server.Client()})
	require.NoError(t, err)
	return api, server
}

func TestLoginPostsFormAndDecodesCredential(t *testing.T) {
	t.Parallel()

	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/public/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "user@gw", r.PostForm.Get("username"))
		assert.Equal(t, "tok123", r.PostForm.Get("password"))
		assert.Equal(t, "password", r.PostForm.Get("grant_type"))

		_, _ = io.WriteString(w, `{"access_token":"abc","token_type":"Bearer","expires_in":3600}`)
	}))

	credential, err := api.Login(context.Background(), ports.LoginRequest{Username: "user@gw", Assertion: "tok123"})
	require.NoError(t, err)
	assert.Equal(t, "abc", credential.Token)
	assert.Equal(t, "Bearer", credential.TokenType)
	require.NotNil(t, credential.ExpiresIn)
	assert.Equal(t, int64(3600), *credential.ExpiresIn)
}

func TestLoginRejectsMissingAccessToken(t *testing.T) {
	t.Parallel()

	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"token_type":"Bearer"}`)
	}))

	_, err := api.Login(context.Background(), ports.LoginRequest{Username: "user@gw", Assertion: "tok123"})
	require.ErrorContains(t, err, "missing access token")
}

func TestStatusErrorKeepsBodyOutOfMessage(t *testing.T) {
	t.Parallel()

	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"invalid_grant","trace":"System.Exception at Login()"}`)
	}))

	_, err := api.Login(context.Background(), ports.LoginRequest{Username: "user@gw", Assertion: "bad"})
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "invalid_grant")
	assert.NotContains(t, err.Error(), "System.Exception")
	assert.NotErrorIs(t, err, domain.ErrSessionRejected)
}

func TestRejectedSessionStatuses(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := api.CheckAccess(context.Background())
		assert.ErrorIs(t, err, domain.ErrSessionRejected, "status %d", status)
	}
}

func TestAuthenticatedRequestsCarryHeaders(t *testing.T) {
	t.Parallel()

	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/public/api/dkmh/w-checkvalidallchucnang", r.URL.Path)
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	api.SetAuthorization("Bearer abc")

	payload, err := api.CheckAccess(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(payload))
}

func TestAuthorizationIsPerInstance(t *testing.T) {
	t.Parallel()

	first, err := New(Options{BaseEndpoint: "https://example.test/public/api"})
	require.NoError(t, err)
	second, err := New(Options{BaseEndpoint: "https://example.test/public/api"})
	require.NoError(t, err)

	first.SetAuthorization("Bearer abc")
	assert.Equal(t, "Bearer abc", first.Authorization())
	assert.Empty(t, second.Authorization())

	first.ClearAuthorization()
	assert.Empty(t, first.Authorization())
}

func TestAuthConfigUsesHostRoot(t *testing.T) {
	t.Parallel()

	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/authconfig", r.URL.Path)
		_, _ = io.WriteString(w, `{"gg":"123.apps.googleusercontent.com","logoff":true,"timeout":30}`)
	}))

	cfg, err := api.AuthConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.AuthConfig{
		IdentityProviderClientID: "123.apps.googleusercontent.com",
		Logoff:                   true,
		TimeoutSeconds:           30,
	}, cfg)
}

func TestScheduleQueryOmitsEmptyUser(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var queries []url.Values
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/public/api/sch/w-locdstkbtuanusertheohocky", r.URL.Path)
		mu.Lock()
		queries = append(queries, r.URL.Query())
		mu.Unlock()
		_, _ = io.WriteString(w, `[]`)
	}))

	_, err := api.Schedule(context.Background(), "20241", "")
	require.NoError(t, err)
	_, err = api.Schedule(context.Background(), "20241", "2124802010001")
	require.NoError(t, err)

	require.Len(t, queries, 2)
	assert.Equal(t, url.Values{"hocky": {"20241"}}, queries[0])
	assert.Equal(t, url.Values{"hocky": {"20241"}, "user": {"2124802010001"}}, queries[1])
}

func TestRequestTimeoutAppliesWithoutDeadline(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	api, err := New(Options{
		BaseEndpoint:   server.URL + "/public/api",
		HTTPClient:     server.Client(),
		RequestTimeout: 50 * time.Millisecond,
	})
	require.NoError(t, err)

	_, err = api.Semesters(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewRejectsInvalidEndpoint(t *testing.T) {
	t.Parallel()

	_, err := New(Options{BaseEndpoint: "ftp://example.test/public/api"})
	require.Error(t, err)

	_, err = New(Options{BaseEndpoint: "https:///public/api"})
	require.Error(t, err)

	api, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, "https://dkmh.tdmu.edu.vn", api.hostRoot)
}

func TestScheduleClientAgainstServer(t *testing.T) {
	t.Parallel()

	var scheduleCalls int
	var mu sync.Mutex
	mux := http.NewServeMux()
	mux.HandleFunc("/public/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		if r.PostForm.Get("password") != "tok123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `{"access_token":"abc","token_type":"Bearer"}`)
	})
	mux.HandleFunc("/public/api/dkmh/w-checkvalidallchucnang", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer abc" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `{"valid":true}`)
	})
	mux.HandleFunc("/public/api/sch/w-locdshockytkbuser", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[{"id":"1","tenHocKy":"HK1"}]`)
	})
	mux.HandleFunc("/public/api/sch/w-locdstkbtuanusertheohocky", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("hocky"))
		assert.False(t, r.URL.Query().Has("user"))
		mu.Lock()
		scheduleCalls++
		mu.Unlock()
		_, _ = io.WriteString(w, `[{"maMon":"CS101","thu":"Mon","tiet":"3"}]`)
	})

	api, _ := newTestAPI(t, mux)
	client := application.NewScheduleClient(api, memory.NewStore(0), application.ClientOptions{})
	ctx := context.Background()

	_, err := client.AuthenticateWithAssertion(ctx, "tok123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", api.Authorization())

	result, err := client.FetchCurrentSchedule(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Semester{ID: "1", DisplayName: "HK1"}, result.Semester)
	assert.Equal(t, []domain.ScheduleItem{{CourseCode: "CS101", DayOfWeek: "Mon", Period: "3"}}, result.Items)

	fetchedAt, err := time.Parse(time.RFC3339Nano, result.FetchedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), fetchedAt, time.Minute)

	_, err = client.GetSchedule(ctx, "1", "")
	require.NoError(t, err)
	assert.Equal(t, 1, scheduleCalls, "second read is served from cache")
}

func TestScheduleClientRejectedLogin(t *testing.T) {
	t.Parallel()

	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, "invalid google token: "+strings.Repeat("x", 10))
	}))
	client := application.NewScheduleClient(api, memory.NewStore(0), application.ClientOptions{})

	_, err := client.AuthenticateWithAssertion(context.Background(), "bad")
	require.ErrorIs(t, err, domain.ErrAuthentication)
	assert.NotContains(t, err.Error(), "invalid google token")
	assert.Empty(t, api.Authorization())
	assert.False(t, client.IsAuthenticated())
}
