package shopsavvy

import "net/http"

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds construction-time options for the Client.
type clientOptions struct {
	httpClient *http.Client
	userAgent  string
}

// WithHTTPClient supplies a custom HTTP client. The configured timeout is not
// applied to a caller-provided client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithUserAgent sets a custom User-Agent header value.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}
