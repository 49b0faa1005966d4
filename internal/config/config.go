package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/tschedule/internal/adapters/tdmu"
	"github.com/bnema/tschedule/internal/application"
	"github.com/bnema/tschedule/internal/logging"
	"github.com/spf13/viper"
)

const (
	configDir  = ".config/tschedule"
	configName = "config"
	configType = "toml"
	dataDir    = ".local/share/tschedule"
	envPrefix  = "TS"

	BackendFile   = "file"
	BackendTOML   = "toml"
	BackendPass   = "pass"
	BackendChain  = "chain"
	BackendMemory = "memory"
)

type Config struct {
	API   APIConfig   `mapstructure:"api"`
	Cache CacheConfig `mapstructure:"cache"`
	Store StoreConfig `mapstructure:"store"`
	OAuth OAuthConfig `mapstructure:"oauth"`
	Log   LogConfig   `mapstructure:"log"`
}

type APIConfig struct {
	BaseEndpoint     string        `mapstructure:"base_endpoint"`
	IdentityUsername string        `mapstructure:"identity_username"`
	Timeout          time.Duration `mapstructure:"timeout"`
}

type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Duration time.Duration `mapstructure:"duration"`
}

type StoreConfig struct {
	Backend    string `mapstructure:"backend"`
	Path       string `mapstructure:"path"`
	PassPrefix string `mapstructure:"pass_prefix"`
}

type OAuthConfig struct {
	Issuer       string        `mapstructure:"issuer"`
	ClientID     string        `mapstructure:"client_id"`
	ClientSecret string        `mapstructure:"client_secret"`
	ListenAddr   string        `mapstructure:"listen_addr"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// Load reads ~/.config/tschedule/config.toml (or configFile when set) and
// TS_* environment variables on top of the defaults. A missing config file
// is not an error.
func Load(v *viper.Viper, home string, configFile string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
	}

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(filepath.Join(home, configDir))
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.Store.Path = defaultStorePath(home, cfg.Store)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_endpoint", tdmu.DefaultBaseEndpoint)
	v.SetDefault("api.identity_username", application.DefaultIdentityUsername)
	v.SetDefault("api.timeout", tdmu.DefaultRequestTimeout)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.duration", application.DefaultCacheDuration)
	v.SetDefault("store.backend", BackendChain)
	v.SetDefault("store.path", "")
	v.SetDefault("store.pass_prefix", "tschedule")
	v.SetDefault("oauth.issuer", "https://accounts.google.com")
	v.SetDefault("oauth.client_id", "")
	v.SetDefault("oauth.client_secret", "")
	v.SetDefault("oauth.listen_addr", "127.0.0.1:0")
	v.SetDefault("oauth.timeout", 5*time.Minute)
	v.SetDefault("log.level", logging.DefaultLevel)
	v.SetDefault("log.json", false)
}

func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendFile, BackendTOML, BackendPass, BackendChain, BackendMemory:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	if strings.TrimSpace(c.API.BaseEndpoint) == "" {
		return errors.New("api.base_endpoint is empty")
	}
	if c.API.Timeout <= 0 {
		return errors.New("api.timeout must be positive")
	}
	if c.Cache.Duration <= 0 {
		return errors.New("cache.duration must be positive")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

// defaultStorePath picks a per-backend location under the data directory
// when store.path is not set.
func defaultStorePath(home string, store StoreConfig) string {
	if path := strings.TrimSpace(store.Path); path != "" {
		if strings.HasPrefix(path, "~/") {
			return filepath.Join(home, path[2:])
		}
		return path
	}

	switch store.Backend {
	case BackendTOML:
		return filepath.Join(home, dataDir, "store.toml")
	default:
		return filepath.Join(home, dataDir, "store")
	}
}
