// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, search service, logging and responses

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Search contains the remote search service location
	Search SearchConfig

	// Responses contains result limits and assistant copy
	Responses ResponsesConfig

	// Logging contains logger backend configuration
	Logging LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of webhook calls allowed per client per minute
	RateLimit int
}

// SearchConfig locates the blog search API
type SearchConfig struct {
	// Scheme is http or https
	Scheme string

	// Hostname is the search API host
	Hostname string

	// Port is the search API port
	Port string

	// Endpoint is the base path, e.g. blog/api/v1/elastic
	Endpoint string

	// Timeout bounds a single search call; zero leaves the transport default in place
	Timeout time.Duration
}

// ResponsesConfig controls what the assistant says and how much it lists
type ResponsesConfig struct {
	// SinglePostLimit is the size requested for the single post intent
	SinglePostLimit int

	// MultiPostLimit is the number of posts listed for the multiple posts intent
	MultiPostLimit int

	// TitleMaxLength is the character budget for list titles
	TitleMaxLength int

	// File is an optional YAML file overriding the assistant copy
	File string

	// Copy is the assistant copy, defaults merged with File
	Copy Copy
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	// Backend is logrus or zap
	Backend string

	// Level is debug, info, warn or error
	Level string

	// Format is json or text
	Format string

	// File is an optional log file path; rotated when set
	File string
}

// LoadFromEnv loads configuration from environment variables.
// A .env file in the working directory is read first when present.
func LoadFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 100),
		},
		Search: SearchConfig{
			Scheme:   getEnvOrDefault("SEARCH_API_SCHEME", "http"),
			Hostname: getEnvOrDefault("SEARCH_API_HOSTNAME", "api.chatbotzlabs.com"),
			Port:     getEnvOrDefault("SEARCH_API_PORT", "80"),
			Endpoint: getEnvOrDefault("SEARCH_API_ENDPOINT", "blog/api/v1/elastic"),
			Timeout:  time.Duration(getEnvAsIntOrDefault("SEARCH_API_TIMEOUT", 0)) * time.Second,
		},
		Responses: ResponsesConfig{
			SinglePostLimit: getEnvAsIntOrDefault("SINGLE_POST_LIMIT", 1),
			MultiPostLimit:  getEnvAsIntOrDefault("MULTI_POST_LIMIT", 6),
			TitleMaxLength:  getEnvAsIntOrDefault("TITLE_MAX_LENGTH", 80),
			File:            getEnvOrDefault("RESPONSES_FILE", ""),
			Copy:            DefaultCopy(),
		},
		Logging: LoggingConfig{
			Backend: strings.ToLower(getEnvOrDefault("LOG_BACKEND", "logrus")),
			Level:   strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format:  strings.ToLower(getEnvOrDefault("LOG_FORMAT", "json")),
			File:    getEnvOrDefault("LOG_FILE", ""),
		},
	}

	if cfg.Responses.File != "" {
		assistantCopy, err := LoadCopyFile(cfg.Responses.File)
		if err != nil {
			return nil, err
		}
		cfg.Responses.Copy = assistantCopy
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid and reports every problem found
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Server.Port == "" {
		result = multierror.Append(result, errors.New("port cannot be empty"))
	}

	if c.Server.RateLimit < 0 {
		result = multierror.Append(result, errors.New("rate limit cannot be negative"))
	}

	if c.Search.Scheme != "http" && c.Search.Scheme != "https" {
		result = multierror.Append(result, errors.New("search API scheme must be 'http' or 'https'"))
	}

	if c.Search.Hostname == "" {
		result = multierror.Append(result, errors.New("search API hostname cannot be empty"))
	}

	if port, err := strconv.Atoi(c.Search.Port); err != nil || port < 1 || port > 65535 {
		result = multierror.Append(result, fmt.Errorf("search API port %q is not a valid port", c.Search.Port))
	}

	if c.Search.Timeout < 0 {
		result = multierror.Append(result, errors.New("search API timeout cannot be negative"))
	}

	if c.Responses.SinglePostLimit < 1 {
		result = multierror.Append(result, errors.New("single post limit must be at least 1"))
	}

	if c.Responses.MultiPostLimit < 1 {
		result = multierror.Append(result, errors.New("multiple post limit must be at least 1"))
	}

	if c.Responses.TitleMaxLength < 1 {
		result = multierror.Append(result, errors.New("title max length must be at least 1"))
	}

	if c.Logging.Backend != "logrus" && c.Logging.Backend != "zap" {
		result = multierror.Append(result, errors.New("log backend must be 'logrus' or 'zap'"))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		result = multierror.Append(result, fmt.Errorf("unknown log level %q", c.Logging.Level))
	}

	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		result = multierror.Append(result, errors.New("log format must be 'json' or 'text'"))
	}

	return result.ErrorOrNil()
}
