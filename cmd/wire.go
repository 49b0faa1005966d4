package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	chainstore "github.com/bnema/tschedule/internal/adapters/kv/chain"
	filestore "github.com/bnema/tschedule/internal/adapters/kv/file"
	memorystore "github.com/bnema/tschedule/internal/adapters/kv/memory"
	passstore "github.com/bnema/tschedule/internal/adapters/kv/pass"
	tomlstore "github.com/bnema/tschedule/internal/adapters/kv/toml"
	schedulerender "github.com/bnema/tschedule/internal/adapters/render/schedule"
	"github.com/bnema/tschedule/internal/adapters/tdmu"
	"github.com/bnema/tschedule/internal/application"
	"github.com/bnema/tschedule/internal/config"
	"github.com/bnema/tschedule/internal/domain"
	"github.com/bnema/tschedule/internal/logging"
	"github.com/bnema/tschedule/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var errNotSignedIn = fmt.Errorf("%w: run `ts login` first", domain.ErrNotAuthenticated)

type app struct {
	cfg               config.Config
	logger            zerolog.Logger
	client            *application.ScheduleClient
	httpClient        *http.Client
	scheduleRenderer  func(domain.ScheduleResult, schedulerender.RenderOptions) string
	semestersRenderer func([]domain.Semester) string
	openURL           func(string) error
	now               func() time.Time
}

func wireApp(opts rootOptions, logOutput io.Writer) (*app, error) {
	cfg, err := config.Load(flagOverrides(opts), "", opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logOutput, logging.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})
	if err != nil {
		return nil, err
	}

	store, err := newKeyValueStore(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("wire %s store: %w", cfg.Store.Backend, err)
	}

	httpClient := &http.Client{Timeout: cfg.API.Timeout}
	api, err := tdmu.New(tdmu.Options{
		BaseEndpoint:   cfg.API.BaseEndpoint,
		HTTPClient:     httpClient,
		RequestTimeout: cfg.API.Timeout,
		Logger:         &logger,
	})
	if err != nil {
		return nil, fmt.Errorf("wire tdmu api: %w", err)
	}

	cacheEnabled := cfg.Cache.Enabled
	client := application.NewScheduleClient(api, store, application.ClientOptions{
		IdentityUsername: cfg.API.IdentityUsername,
		CacheEnabled:     &cacheEnabled,
		CacheDuration:    cfg.Cache.Duration,
		Clock:            ports.SystemClock{},
		Logger:           &logger,
	})

	return &app{
		cfg:               cfg,
		logger:            logger,
		client:            client,
		httpClient:        httpClient,
		scheduleRenderer:  schedulerender.Render,
		semestersRenderer: schedulerender.RenderSemesters,
		openURL:           openBrowser,
		now:               time.Now,
	}, nil
}

// flagOverrides seeds viper with persistent flag values so they win over the
// config file and environment.
func flagOverrides(opts rootOptions) *viper.Viper {
	v := viper.New()
	if opts.logLevel != "" {
		v.Set("log.level", opts.logLevel)
	}
	if opts.logJSON {
		v.Set("log.json", true)
	}
	if opts.storeBackend != "" {
		v.Set("store.backend", opts.storeBackend)
	}
	return v
}

func newKeyValueStore(cfg config.StoreConfig) (ports.KeyValueStore, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return memorystore.NewStoreChecked(memorystore.DefaultSize)
	case config.BackendFile:
		return filestore.NewStore(cfg.Path), nil
	case config.BackendTOML:
		return tomlstore.NewStore(cfg.Path)
	case config.BackendPass:
		return passstore.NewStore(cfg.PassPrefix), nil
	case config.BackendChain:
		return chainstore.NewPassFirstWithFileFallback(cfg.PassPrefix, cfg.Path)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// requireSession restores the persisted token for commands that talk to the
// authenticated endpoints.
func requireSession(ctx context.Context, app *app) error {
	if app.client.RestoreSession(ctx) {
		return nil
	}
	return errNotSignedIn
}

func openBrowser(url string) error {
	var name string
	var args []string
	switch runtime.GOOS {
	case "darwin":
		name = "open"
	case "windows":
		name, args = "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		name = "xdg-open"
	}

	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("no browser opener found: %w", err)
	}

	cmd := exec.Command(name, append(args, url)...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
