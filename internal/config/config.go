package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// durationSeconds parses env as time.Duration: "10s", "5m" or bare number = seconds (e.g. "10" -> 10s).
type durationSeconds time.Duration

func (d *durationSeconds) SetValue(data string) error {
	v, err := parseDuration(data)
	if err != nil {
		return err
	}
	*d = durationSeconds(v)
	return nil
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	// Strip optional surrounding quotes: "10s" or '10s'
	if len(s) >= 2 && ((s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'')) {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	// Bare number first, so "10s" never goes to ParseInt
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("duration must be like 10s, 5m or a number of seconds: %w", err)
	}
	return d, nil
}

func (d durationSeconds) Duration() time.Duration { return time.Duration(d) }

type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	PG   PGConfig
	Log  LogConfig
}

type AppConfig struct {
	Env     string `env:"APP_ENV" env-default:"dev"`
	Version string `env:"VERSION" env-default:"dev"`
}

type HTTPConfig struct {
	Port string `env:"HTTP_PORT" env-default:"8080"`

	// Value: "10s", "5m" or a number of seconds without suffix (e.g. 10).
	ReadTimeout     durationSeconds `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    durationSeconds `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout     durationSeconds `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout durationSeconds `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// Comma separated; "*" allows any origin.
	CORSAllowOrigins string `env:"CORS_ALLOW_ORIGINS" env-default:"*"`
}

// AllowOrigins splits CORSAllowOrigins into trimmed, non-empty entries.
func (c HTTPConfig) AllowOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

type PGConfig struct {
	DSN string `env:"PG_DSN"`
	// DatabaseURL is used when PG_DSN is unset (e.g. Railway/Heroku DATABASE_URL).
	DatabaseURL string `env:"DATABASE_URL"`

	MaxConns    int32 `env:"PG_MAX_CONNS" env-default:"10"`
	MinConns    int32 `env:"PG_MIN_CONNS" env-default:"2"`
	AutoMigrate bool  `env:"DB_AUTO_MIGRATE" env-default:"true"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"` // text, json or logfmt
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	if cfg.PG.DSN == "" {
		cfg.PG.DSN = strings.TrimSpace(cfg.PG.DatabaseURL)
	}
	if cfg.PG.DSN == "" {
		return Config{}, fmt.Errorf("PG_DSN or DATABASE_URL is required")
	}
	if cfg.PG.MinConns > cfg.PG.MaxConns {
		return Config{}, fmt.Errorf("PG_MIN_CONNS (%d) exceeds PG_MAX_CONNS (%d)", cfg.PG.MinConns, cfg.PG.MaxConns)
	}
	switch cfg.Log.Format {
	case "text", "json", "logfmt":
	default:
		return Config{}, fmt.Errorf("LOG_FORMAT must be text, json or logfmt, got %q", cfg.Log.Format)
	}
	return cfg, nil
}
