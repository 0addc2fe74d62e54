package config

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	keyPort        = "port"
	keyCSVPath     = "tech_radar_csv"
	keyAPIKey      = "openai_api_key"
	keyBaseURL     = "openai_api_base_url"
	keyModel       = "openai_model"
	keyMaxTokens   = "openai_max_tokens"
	keyLogLevel    = "log_level"
	keyGinMode     = "gin_mode"
	DefaultCSVPath = "./tech-radar/tech-radar.csv"
)

type Config struct {
	Port     int
	CSVPath  string
	LogLevel string
	GinMode  string
	OpenAI   OpenAIConfig
}

type OpenAIConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

// Load reads configuration from the environment and, when path is non-empty,
// from the config file at path. Environment variables win over the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault(keyPort, 3000)
	v.SetDefault(keyCSVPath, DefaultCSVPath)
	v.SetDefault(keyAPIKey, "")
	v.SetDefault(keyBaseURL, "")
	v.SetDefault(keyModel, "gpt-4o")
	v.SetDefault(keyMaxTokens, 1024)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyGinMode, "release")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:     v.GetInt(keyPort),
		CSVPath:  v.GetString(keyCSVPath),
		LogLevel: v.GetString(keyLogLevel),
		GinMode:  v.GetString(keyGinMode),
		OpenAI: OpenAIConfig{
			APIKey:    v.GetString(keyAPIKey),
			BaseURL:   v.GetString(keyBaseURL),
			Model:     v.GetString(keyModel),
			MaxTokens: v.GetInt(keyMaxTokens),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// RequireAPIKey fails when no OpenAI key is configured.
func (c *Config) RequireAPIKey() error {
	if c.OpenAI.APIKey == "" {
		return errors.New("OPENAI_API_KEY is required")
	}
	return nil
}

func validate(cfg *Config) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.CSVPath == "" {
		return fmt.Errorf("tech_radar_csv must not be empty")
	}
	if cfg.OpenAI.MaxTokens <= 0 {
		return fmt.Errorf("openai_max_tokens must be positive, got %d", cfg.OpenAI.MaxTokens)
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("gin_mode must be debug, release or test, got %q", cfg.GinMode)
	}
	return nil
}
