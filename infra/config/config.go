package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	defaultBaseURL   = "https://www.reddit.com"
	defaultUserAgent = "reddit-to-llm/1.0 (+https://github.com/Jervi-sir/reddit-to-llm)"
	defaultLogFile   = "reddit-to-llm.log"
)

// Config holds application-level configuration.
type Config struct {
	BaseURL   string        `validate:"required,url"` // e.g. "https://www.reddit.com"
	UserAgent string        `validate:"required"`     // sent with every request; Reddit throttles blank agents hard
	Timeout   time.Duration `validate:"gte=0"`        // 0 leaves the transport's default behavior in place
	Debug     bool
	LogFile   string `validate:"required"` // debug log destination, only opened when Debug is set
}

// Load reads configuration from environment variables.
//
//	REDDIT2LLM_BASE_URL    — API base URL (default: https://www.reddit.com)
//	REDDIT2LLM_USER_AGENT  — User-Agent header for API requests
//	REDDIT2LLM_TIMEOUT     — HTTP timeout as a duration, e.g. "15s" (default: none)
//	REDDIT2LLM_DEBUG       — "1" or "true" enables diagnostic logging
//	REDDIT2LLM_LOG_FILE    — diagnostic log path (default: reddit-to-llm.log)
func Load() (Config, error) {
	cfg := Config{
		BaseURL:   defaultBaseURL,
		UserAgent: defaultUserAgent,
		LogFile:   defaultLogFile,
	}

	if v := os.Getenv("REDDIT2LLM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if v := os.Getenv("REDDIT2LLM_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}

	if v := os.Getenv("REDDIT2LLM_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REDDIT2LLM_TIMEOUT: %w", err)
		}
		cfg.Timeout = timeout
	}

	if v := os.Getenv("REDDIT2LLM_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REDDIT2LLM_DEBUG: %w", err)
		}
		cfg.Debug = debug
	}

	if v := os.Getenv("REDDIT2LLM_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
