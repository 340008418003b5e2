package shopsavvy

import "time"

// Version is the SDK version reported in the User-Agent header.
const Version = "1.0.1"

const (
	// DefaultBaseURL is the production Data API endpoint.
	DefaultBaseURL = "https://api.shopsavvy.com/v1"

	// DefaultTimeout applies to every request issued by a client.
	DefaultTimeout = 30 * time.Second
)

// Config holds client configuration. Constructing a Config never fails; the
// API key is validated when the client is built.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// NewConfig returns a Config for the given API key with the default base URL
// and timeout.
func NewConfig(apiKey string) Config {
	return Config{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// WithBaseURL returns a copy of the config pointing at a different base URL.
func (c Config) WithBaseURL(baseURL string) Config {
	c.BaseURL = baseURL
	return c
}

// WithTimeout returns a copy of the config with a different request timeout.
func (c Config) WithTimeout(timeout time.Duration) Config {
	c.Timeout = timeout
	return c
}
