package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Storage    StorageConfig
	Log        LogConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig
	Onboarding OnboardingConfig
}

type ServerConfig struct {
	Port        int
	MaxConns    int // 0 means unlimited
	Environment string
}

type StorageConfig struct {
	DataDir string
}

type LogConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string // comma separated
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type OnboardingConfig struct {
	WelcomeDwell time.Duration
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:        3000,
			Environment: "development",
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir(),
		},
		Log: LogConfig{
			Level: "info",
		},
		CORS: CORSConfig{
			AllowedOrigins: "http://localhost:3000",
		},
		RateLimit: RateLimitConfig{
			Requests: 10,
			Window:   60 * time.Second,
		},
		Onboarding: OnboardingConfig{
			WelcomeDwell: 3 * time.Second,
		},
	}
}

// Load reads configuration from the JSON file at
// $XDG_CONFIG_HOME/olis/config.json, then applies OLIS_* environment
// overrides. A .env file in the working directory is loaded first; variables
// already set in the environment win over it.
func Load() (Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}
	return loadWith(newPlatformBackend())
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", path, err)
}

func loadWith(b ConfigBackend) (Config, error) {
	cfg := defaults()

	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid config: server.port %d out of range", cfg.Server.Port)
	}
	if cfg.Server.MaxConns < 0 {
		return fmt.Errorf("invalid config: server.max_conns must not be negative")
	}
	if cfg.RateLimit.Requests <= 0 || cfg.RateLimit.Window <= 0 {
		return fmt.Errorf("invalid config: ratelimit.requests and ratelimit.window must be positive")
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid config: log.level %q (want debug, info, warn or error)", cfg.Log.Level)
	}
	return nil
}

func defaultDataDir() string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".local", "share")
		} else {
			return "olis-data"
		}
	}
	return filepath.Join(dir, "olis")
}
