// Package config loads application configuration from config files and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/asifr/shikkhok/internal/llm"
	"github.com/asifr/shikkhok/internal/ocr"
	"github.com/asifr/shikkhok/internal/solver"
	"github.com/asifr/shikkhok/internal/speech"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds the full application configuration.
type Config struct {
	Env  string `mapstructure:"env"`  // current environment (local, production)
	Addr string `mapstructure:"addr"` // HTTP listen address

	DB   DB   `mapstructure:"database"`
	Auth Auth `mapstructure:"auth"`

	LLM    llm.Config    `mapstructure:"-"`
	OCR    ocr.Config    `mapstructure:"-"`
	Speech speech.Config `mapstructure:"-"`
	Solver solver.Config `mapstructure:"-"`
}

// DB contains database-related configuration.
type DB struct {
	URL             string        `mapstructure:"-"` // connection string, from DATABASE_URL
	MaxConnections  int32         `mapstructure:"max_connections"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// Auth contains token issuance configuration.
type Auth struct {
	JWTSecret string        `mapstructure:"-"` // signing secret, from JWT_SECRET
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// Load reads configuration from .env, config files and environment
// variables. API keys and secrets come from the environment only.
func Load() (*Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("addr", ":8000")
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("auth.token_ttl", "30m")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("jwt_secret", "JWT_SECRET")
	_ = v.BindEnv("llm_provider", "LLM_PROVIDER")
	_ = v.BindEnv("openai_api_key", "OPENAI_API_KEY")
	_ = v.BindEnv("anthropic_api_key", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("gemini_api_key", "GEMINI_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.DB.URL = v.GetString("database_url")
	if cfg.DB.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.Auth.JWTSecret = v.GetString("jwt_secret")
	if cfg.Auth.JWTSecret == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.LLM = llm.DefaultConfig()
	if p := v.GetString("llm_provider"); p != "" {
		cfg.LLM.Provider = p
	}
	cfg.LLM.OpenAI.APIKey = v.GetString("openai_api_key")
	cfg.LLM.Anthropic.APIKey = v.GetString("anthropic_api_key")
	cfg.LLM.Gemini.APIKey = v.GetString("gemini_api_key")
	if err := cfg.LLM.Validate(); err != nil {
		return nil, err
	}

	cfg.OCR = ocr.DefaultConfig()
	cfg.OCR.APIKey = v.GetString("gemini_api_key")

	cfg.Speech = speech.DefaultConfig()
	cfg.Speech.APIKey = v.GetString("openai_api_key")

	cfg.Solver = solver.DefaultConfig()

	return &cfg, nil
}
