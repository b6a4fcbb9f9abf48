// Package config handles configuration for the server component:
// defaults overlaid with environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/tonesculpt/tonesculpt/internal/gemini"
)

// Environment variable names
const (
	addressEnvVar       = "ADDRESS"
	databasePathEnvVar  = "DATABASE_PATH"
	authSecretEnvVar    = "AUTH_SECRET"
	tokenTTLEnvVar      = "ACCESS_TOKEN_TTL_MINUTES"
	geminiAPIKeyEnvVar  = "GEMINI_API_KEY"
	geminiModelEnvVar   = "GEMINI_MODEL"
	geminiBaseURLEnvVar = "GEMINI_BASE_URL"
)

// Config holds runtime settings for the ToneSculpt server.
//
// Fields:
//   - Address: bind address for the HTTP endpoint.
//   - DatabasePath: path to the SQLite database file.
//   - AuthSecret: HMAC secret for signing JWTs (HS256). No default:
//     startup fails closed when it is absent.
//   - AccessTokenTTL: session token lifetime.
//   - GeminiAPIKey: generative language API key. No default either.
//   - GeminiModel: model name for generateContent calls.
//   - GeminiTimeout: bound on a single outbound provider call.
type Config struct {
	Address        string
	DatabasePath   string
	AuthSecret     string
	AccessTokenTTL time.Duration
	GeminiAPIKey   string
	GeminiModel    string
	GeminiBaseURL  string
	GeminiTimeout  time.Duration
}

// LoadDefaults populates Config with development defaults.
// Секреты умышленно без дефолтов: см. Validate.
func (c *Config) LoadDefaults() {
	c.Address = ":5000"
	c.DatabasePath = "users.db"
	c.AccessTokenTTL = 120 * time.Minute
	c.GeminiModel = gemini.DefaultModel
	c.GeminiBaseURL = gemini.DefaultBaseURL
	c.GeminiTimeout = gemini.DefaultTimeout
}

// Load builds a Config by applying defaults and overlaying values from
// environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overlays environment variables onto the config
func (c *Config) applyEnv() {
	c.Address = getEnv(addressEnvVar, c.Address)
	c.DatabasePath = getEnv(databasePathEnvVar, c.DatabasePath)
	c.AuthSecret = getEnv(authSecretEnvVar, c.AuthSecret)
	c.GeminiAPIKey = getEnv(geminiAPIKeyEnvVar, c.GeminiAPIKey)
	c.GeminiModel = getEnv(geminiModelEnvVar, c.GeminiModel)
	c.GeminiBaseURL = getEnv(geminiBaseURLEnvVar, c.GeminiBaseURL)

	if ttl := os.Getenv(tokenTTLEnvVar); ttl != "" {
		if minutes, err := strconv.Atoi(ttl); err == nil && minutes > 0 {
			c.AccessTokenTTL = time.Duration(minutes) * time.Minute
		}
	}
}

// Validate fails closed on missing secrets: the server must not start
// with a compiled-in signing secret or API key.
func (c *Config) Validate() error {
	if c.AuthSecret == "" {
		return fmt.Errorf("%s is required", authSecretEnvVar)
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("%s is required", geminiAPIKeyEnvVar)
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("access token TTL must be positive")
	}
	return nil
}

// getEnv возвращает значение переменной окружения или fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
