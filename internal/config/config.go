// Package config provides centralized configuration management for the seed tools.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
//
// File paths are not configured here; every command takes its input and output
// paths as flags or arguments.
package config

import (
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Logging LoggingConfig
	Parser  ParserConfig
	Input   InputConfig
	Server  ServerConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// ParserConfig holds ingredient parsing settings.
type ParserConfig struct {
	// Mode is lenient or strict. Strict mode disables the last-resort rule that
	// turns any leftover text into an ingredient name (default: lenient)
	Mode string `env:"PARSER_MODE" default:"lenient"`

	// VocabularyFile is an optional YAML file overriding connector words,
	// canonical spellings and the inference keyword tables
	VocabularyFile string `env:"PARSER_VOCABULARY_FILE"`

	// DescriptionMaxLength caps drink descriptions, in characters (default: 200)
	DescriptionMaxLength int `env:"DESCRIPTION_MAX_LENGTH" default:"200"`
}

// InputConfig holds CSV and SQL input file settings.
type InputConfig struct {
	// MaxFileSize is the maximum allowed input file size in bytes (default: 100MB)
	MaxFileSize int64 `env:"INPUT_MAX_FILE_SIZE" default:"104857600"`
}

// ServerConfig holds settings for the ingredient preview server.
type ServerConfig struct {
	// Host is the interface to bind to (default: 127.0.0.1)
	Host string `env:"PREVIEW_HOST" default:"127.0.0.1"`

	// Port is the port to listen on (default: 8085)
	Port int `env:"PREVIEW_PORT" envAlt:"PORT" default:"8085"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"PREVIEW_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 15s)
	WriteTimeout time.Duration `env:"PREVIEW_WRITE_TIMEOUT" default:"15s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"PREVIEW_IDLE_TIMEOUT" default:"60s"`

	// RequestTimeout is the middleware timeout for requests (default: 30s)
	RequestTimeout time.Duration `env:"PREVIEW_REQUEST_TIMEOUT" default:"30s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 10s)
	ShutdownTimeout time.Duration `env:"PREVIEW_SHUTDOWN_TIMEOUT" default:"10s"`

	// MaxBodySize limits request bodies in bytes (default: 1MB)
	MaxBodySize int64 `env:"PREVIEW_MAX_BODY_SIZE" default:"1048576"`

	// RateLimit is the number of requests per minute allowed per client IP.
	// Zero disables rate limiting (default: 100)
	RateLimit int `env:"PREVIEW_RATE_LIMIT" default:"100"`

	// TrustedProxies is a comma-separated list of proxy CIDRs whose
	// X-Real-IP / X-Forwarded-For headers are believed
	TrustedProxies string `env:"PREVIEW_TRUSTED_PROXIES"`

	// APIKeys is a comma-separated list of keys accepted in X-API-Key.
	// Empty disables authentication.
	APIKeys string `env:"PREVIEW_API_KEYS"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// TrustedProxyList returns TrustedProxies split on commas.
func (c *ServerConfig) TrustedProxyList() []string {
	return splitList(c.TrustedProxies)
}

// APIKeyList returns APIKeys split on commas.
func (c *ServerConfig) APIKeyList() []string {
	return splitList(c.APIKeys)
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Strict reports whether the parser runs without its last-resort rule.
func (c *ParserConfig) Strict() bool {
	return c.Mode == "strict"
}
