// Package config resolves settings from flags, environment, an optional
// config file, and defaults, in that order of precedence.
//
// Environment variables use the WORDLE_ prefix with dashes mapped to
// underscores (WORDLE_SOURCE_URL). JWT_SECRET and LOG_LEVEL are also read
// without the prefix.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle/apps/infinite/internal/game"
	"github.com/robalobadob/wordle/apps/infinite/internal/puzzle"
)

// Keys. Flags with the same name bind to them.
const (
	KeyConfig      = "config"
	KeyGuesses     = "guesses"
	KeyDebug       = "debug"
	KeyRules       = "rules"
	KeyOffline     = "offline"
	KeyDB          = "db"
	KeySourceURL   = "source-url"
	KeyHTTPTimeout = "http-timeout"
	KeyRPS         = "fetch-rps"
	KeyAddr        = "addr"
	KeyDailySalt   = "daily-salt"
	KeySessionTTL  = "session-ttl"
	KeyJWTSecret   = "jwt-secret"
	KeyLogLevel    = "log-level"
)

const devSecret = "dev_secret_change_me"

// Config is the resolved configuration.
type Config struct {
	Guesses     int
	Debug       bool
	Rules       game.Rules
	Offline     bool
	DB          string
	SourceURL   string
	HTTPTimeout time.Duration
	FetchRPS    float64
	Addr        string
	DailySalt   string
	SessionTTL  time.Duration
	JWTSecret   string
	LogLevel    string
}

func defaults(v *viper.Viper) {
	v.SetDefault(KeyGuesses, game.DefaultMaxAttempts)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyRules, game.RulesClassic.String())
	v.SetDefault(KeyOffline, false)
	v.SetDefault(KeyDB, "")
	v.SetDefault(KeySourceURL, puzzle.DefaultBaseURL)
	v.SetDefault(KeyHTTPTimeout, 10*time.Second)
	v.SetDefault(KeyRPS, 2.0)
	v.SetDefault(KeyAddr, ":5175")
	v.SetDefault(KeyDailySalt, "local_dev_salt")
	v.SetDefault(KeySessionTTL, 6*time.Hour)
	v.SetDefault(KeyJWTSecret, devSecret)
	v.SetDefault(KeyLogLevel, "info")
}

// Load resolves configuration. fs may be nil; its flags override everything
// else only when explicitly set on the command line.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix("WORDLE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv(KeyJWTSecret, "WORDLE_JWT_SECRET", "JWT_SECRET")
	_ = v.BindEnv(KeyLogLevel, "WORDLE_LOG_LEVEL", "LOG_LEVEL")

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	rules, err := game.ParseRules(v.GetString(KeyRules))
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg := Config{
		Guesses:     v.GetInt(KeyGuesses),
		Debug:       v.GetBool(KeyDebug),
		Rules:       rules,
		Offline:     v.GetBool(KeyOffline),
		DB:          v.GetString(KeyDB),
		SourceURL:   v.GetString(KeySourceURL),
		HTTPTimeout: v.GetDuration(KeyHTTPTimeout),
		FetchRPS:    v.GetFloat64(KeyRPS),
		Addr:        v.GetString(KeyAddr),
		DailySalt:   v.GetString(KeyDailySalt),
		SessionTTL:  v.GetDuration(KeySessionTTL),
		JWTSecret:   v.GetString(KeyJWTSecret),
		LogLevel:    v.GetString(KeyLogLevel),
	}
	if cfg.Guesses < 1 {
		return Config{}, fmt.Errorf("config: %s must be at least 1, got %d", KeyGuesses, cfg.Guesses)
	}
	return cfg, nil
}

// DevSecret reports whether the JWT secret is the built-in development value.
func (c Config) DevSecret() bool { return c.JWTSecret == devSecret }
