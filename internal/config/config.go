package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

// Config holds runtime settings for the dashboard.
type Config struct {
	BaseURL        string
	APIKey         string
	AccountID      int64
	RequestTimeout time.Duration
	LogPath        string
}

// LoadFromEnv reads the three required CHATWOOT_* variables. Settings from the
// YAML file are layered on afterwards with WithSettings.
func LoadFromEnv() (Config, error) {
	baseURL := strings.TrimSpace(os.Getenv("CHATWOOT_BASE_URL"))
	if baseURL == "" {
		return Config{}, errors.New("CHATWOOT_BASE_URL is required")
	}
	apiKey := strings.TrimSpace(os.Getenv("CHATWOOT_API_KEY"))
	if apiKey == "" {
		return Config{}, errors.New("CHATWOOT_API_KEY is required")
	}
	rawAccount := strings.TrimSpace(os.Getenv("CHATWOOT_ACCOUNT_ID"))
	if rawAccount == "" {
		return Config{}, errors.New("CHATWOOT_ACCOUNT_ID is required")
	}
	accountID, err := strconv.ParseInt(rawAccount, 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("CHATWOOT_ACCOUNT_ID must be an integer: %s", rawAccount)
	}

	cfg := Config{
		BaseURL:        strings.TrimRight(baseURL, "/"),
		APIKey:         apiKey,
		AccountID:      accountID,
		RequestTimeout: defaultRequestTimeout,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithSettings overlays non-zero settings onto the config.
func (c Config) WithSettings(s Settings) Config {
	if s.RequestTimeout > 0 {
		c.RequestTimeout = s.RequestTimeout
	}
	if s.LogFile != "" {
		c.LogPath = s.LogFile
	}
	return c
}

func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("BaseURL is required")
	}
	if err := validateBaseURL(c.BaseURL); err != nil {
		return err
	}
	if strings.HasSuffix(c.BaseURL, "/") {
		return fmt.Errorf("BaseURL must not end with '/': %s", c.BaseURL)
	}
	if c.APIKey == "" {
		return errors.New("APIKey is required")
	}
	if c.AccountID <= 0 {
		return fmt.Errorf("AccountID must be positive: %d", c.AccountID)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("RequestTimeout must be positive: %s", c.RequestTimeout)
	}
	return nil
}

func validateBaseURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("BaseURL is not a valid URL: %s", raw)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("BaseURL must use http or https: %s", raw)
	}
	if parsed.Host == "" {
		return fmt.Errorf("BaseURL has no host: %s", raw)
	}
	return nil
}
