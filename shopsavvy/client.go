package shopsavvy

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

var apiKeyPattern = regexp.MustCompile(`^ss_(live|test)_[a-zA-Z0-9]+$`)

// Client wraps the ShopSavvy Data API. It is safe for concurrent use; all
// configuration is fixed at construction time.
type Client struct {
	config     Config
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

// New creates a client with default configuration for the given API key.
func New(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	return NewWithConfig(NewConfig(apiKey), logger, opts...)
}

// NewWithConfig creates a client from an explicit configuration. The API key
// is validated here; no network call is made.
func NewWithConfig(cfg Config, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, missingKeyError()
	}
	if !apiKeyPattern.MatchString(cfg.APIKey) {
		return nil, invalidKeyError()
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	options := clientOptions{
		userAgent: fmt.Sprintf("ShopSavvy-Go-SDK/%s", Version),
	}
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		config:     cfg,
		httpClient: httpClient,
		userAgent:  options.userAgent,
		logger:     logger,
	}, nil
}

// BaseURL returns the base URL the client sends requests to.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}
