package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port            int
	Env             string // development, production
	ShutdownTimeout time.Duration

	// LLM (OpenAI-compatible completion endpoint)
	LLMAPIKey          string
	LLMBaseURL         string
	LLMModel           string
	LLMReasoningEffort string
	LLMMaxTokens       int

	// Reply post-processing
	ReplyTerminators string

	// Overpass
	OverpassURL       string
	OverpassTimeout   time.Duration
	OverpassUserAgent string

	// Nearby places
	NearbyRadiusMeters   int
	NearbySortByDistance bool

	// Logging
	LogLevel string
}

var defaults = map[string]any{
	"PORT":                    8000,
	"ENVIRONMENT":             "development",
	"SHUTDOWN_TIMEOUT_MS":     10000,
	"LLM_BASE_URL":            "https://api.sarvam.ai/v1",
	"LLM_MODEL":               "sarvam-m",
	"LLM_REASONING_EFFORT":    "high",
	"LLM_MAX_TOKENS":          4096,
	"REPLY_TERMINATORS":       "।.?!",
	"OVERPASS_URL":            "https://overpass-api.de/api/interpreter",
	"OVERPASS_TIMEOUT_MS":     30000,
	"OVERPASS_USER_AGENT":     "gramin-health-assistant/1.0",
	"NEARBY_RADIUS_M":         10000,
	"NEARBY_SORT_BY_DISTANCE": false,
	"LOG_LEVEL":               "info",
}

// Load loads configuration from a .env file, an optional config file named by
// CONFIG_FILE, and environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		Port:                 v.GetInt("PORT"),
		Env:                  v.GetString("ENVIRONMENT"),
		ShutdownTimeout:      time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_MS")) * time.Millisecond,
		LLMAPIKey:            v.GetString("SARVAM_API_KEY"),
		LLMBaseURL:           v.GetString("LLM_BASE_URL"),
		LLMModel:             v.GetString("LLM_MODEL"),
		LLMReasoningEffort:   v.GetString("LLM_REASONING_EFFORT"),
		LLMMaxTokens:         v.GetInt("LLM_MAX_TOKENS"),
		ReplyTerminators:     v.GetString("REPLY_TERMINATORS"),
		OverpassURL:          v.GetString("OVERPASS_URL"),
		OverpassTimeout:      time.Duration(v.GetInt("OVERPASS_TIMEOUT_MS")) * time.Millisecond,
		OverpassUserAgent:    v.GetString("OVERPASS_USER_AGENT"),
		NearbyRadiusMeters:   v.GetInt("NEARBY_RADIUS_M"),
		NearbySortByDistance: v.GetBool("NEARBY_SORT_BY_DISTANCE"),
		LogLevel:             v.GetString("LOG_LEVEL"),
	}

	// Validate required fields
	if cfg.LLMAPIKey == "" {
		return nil, fmt.Errorf("SARVAM_API_KEY environment variable is required")
	}
	if cfg.NearbyRadiusMeters <= 0 {
		return nil, fmt.Errorf("NEARBY_RADIUS_M must be positive, got %d", cfg.NearbyRadiusMeters)
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
