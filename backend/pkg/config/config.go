package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	apperrors "stylize-engine/backend/pkg/errors"
)

// Config holds all application configuration
type Config struct {
	// App
	Port     string
	Env      string
	LogLevel string

	// Models
	EditModelID       string
	DiffusionModelID  string
	NumInferenceSteps int
	MaxVariations     int

	// Presets
	CatalogFile         string        // Optional YAML overlay merged into the built-in catalogs
	RotationResetWindow time.Duration // Idle window after which fragment rotation starts over

	// Generation backend
	GenerationEndpoint string
	GenerationAPIKey   string
	DispatchMaxRetries int
	DispatchTimeout    time.Duration

	// Prompt enhancement (free-text prompts only)
	LiteLLMURL       string
	OpenRouterAPIKey string
	EnhanceModelID   string

	// Discord
	DiscordBotToken string

	// HTTP
	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("ENV", "development"),
		LogLevel:            getEnv("LOG_LEVEL", ""),
		EditModelID:         getEnv("EDIT_MODEL_ID", "flux-kontext-edit"),
		DiffusionModelID:    getEnv("DIFFUSION_MODEL_ID", "sdxl-img2img"),
		NumInferenceSteps:   getEnvInt("NUM_INFERENCE_STEPS", 30),
		MaxVariations:       getEnvInt("MAX_VARIATIONS", 4),
		CatalogFile:         getEnv("CATALOG_FILE", ""),
		RotationResetWindow: getEnvDuration("ROTATION_RESET_WINDOW", 5*time.Minute),
		GenerationEndpoint:  getEnv("GENERATION_ENDPOINT", ""),
		GenerationAPIKey:    getEnv("GENERATION_API_KEY", ""),
		DispatchMaxRetries:  getEnvInt("DISPATCH_MAX_RETRIES", 3),
		DispatchTimeout:     getEnvDuration("DISPATCH_TIMEOUT", 30*time.Second),
		LiteLLMURL:          getEnv("LITELLM_URL", ""),
		OpenRouterAPIKey:    getEnv("OPENROUTER_API_KEY", ""),
		EnhanceModelID:      getEnv("ENHANCE_MODEL_ID", "openrouter/anthropic/claude-3.5-sonnet"),
		DiscordBotToken:     getEnv("DISCORD_BOT_TOKEN", ""),
		CORSAllowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.EditModelID == "" {
		return apperrors.NewConfigMissingRequired("EDIT_MODEL_ID")
	}
	if c.DiffusionModelID == "" {
		return apperrors.NewConfigMissingRequired("DIFFUSION_MODEL_ID")
	}
	if c.NumInferenceSteps <= 0 {
		return fmt.Errorf("NUM_INFERENCE_STEPS must be positive")
	}
	if c.MaxVariations < 1 {
		return fmt.Errorf("MAX_VARIATIONS must be at least 1")
	}
	if c.RotationResetWindow <= 0 {
		return fmt.Errorf("ROTATION_RESET_WINDOW must be positive")
	}
	if c.DispatchMaxRetries < 0 {
		return fmt.Errorf("DISPATCH_MAX_RETRIES cannot be negative")
	}
	// Generation endpoint, LLM and Discord settings are optional for development
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DispatchEnabled reports whether payloads can be sent to a generation backend
func (c *Config) DispatchEnabled() bool {
	return c.GenerationEndpoint != ""
}

// EnhanceEnabled reports whether free-text prompts can be rewritten by an LLM
func (c *Config) EnhanceEnabled() bool {
	return c.LiteLLMURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
