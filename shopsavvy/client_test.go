package shopsavvy

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name     string
		apiKey   string
		wantErr  bool
		wantKind ErrorKind
	}{
		{
			name:   "valid live key",
			apiKey: "ss_live_abc123",
		},
		{
			name:   "valid test key",
			apiKey: "ss_test_ABC123xyz",
		},
		{
			name:     "empty key",
			apiKey:   "",
			wantErr:  true,
			wantKind: KindMissingAPIKey,
		},
		{
			name:     "wrong prefix",
			apiKey:   "invalid_key",
			wantErr:  true,
			wantKind: KindInvalidAPIKey,
		},
		{
			name:     "unknown environment",
			apiKey:   "ss_prod_abc123",
			wantErr:  true,
			wantKind: KindInvalidAPIKey,
		},
		{
			name:     "missing suffix",
			apiKey:   "ss_live_",
			wantErr:  true,
			wantKind: KindInvalidAPIKey,
		},
		{
			name:     "disallowed characters",
			apiKey:   "ss_live_abc-123",
			wantErr:  true,
			wantKind: KindInvalidAPIKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.apiKey, logger)
			if tt.wantErr {
				require.Error(t, err)
				var apiErr *Error
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tt.wantKind, apiErr.Kind)
				assert.Zero(t, apiErr.StatusCode)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
			assert.Equal(t, DefaultBaseURL, client.config.BaseURL)
			assert.Equal(t, DefaultTimeout, client.config.Timeout)
		})
	}
}

func TestConfigBuilders(t *testing.T) {
	cfg := NewConfig("ss_live_abc123").
		WithBaseURL("http://localhost:9999/v1").
		WithTimeout(5 * time.Second)

	assert.Equal(t, "ss_live_abc123", cfg.APIKey)
	assert.Equal(t, "http://localhost:9999/v1", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)

	// The original config value is untouched.
	base := NewConfig("ss_live_abc123")
	_ = base.WithTimeout(time.Second)
	assert.Equal(t, DefaultTimeout, base.Timeout)
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("config timeout applied", func(t *testing.T) {
		cfg := NewConfig("ss_live_abc123").WithTimeout(5 * time.Second)
		client, err := NewWithConfig(cfg, logger)
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := New("ss_live_abc123", logger, WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("with user agent", func(t *testing.T) {
		client, err := New("ss_live_abc123", logger, WithUserAgent("custom-agent/2.0"))
		require.NoError(t, err)
		assert.Equal(t, "custom-agent/2.0", client.userAgent)
	})

	t.Run("trailing slash trimmed from base URL", func(t *testing.T) {
		cfg := NewConfig("ss_live_abc123").WithBaseURL("http://localhost:9999/v1/")
		client, err := NewWithConfig(cfg, logger)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9999/v1", client.BaseURL())
	})
}

func TestRequestHeaders(t *testing.T) {
	logger := zerolog.Nop()

	var gotAuth, gotContentType, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotUserAgent = r.Header.Get("User-Agent")
		json.NewEncoder(w).Encode(Response[Usage]{Success: true})
	}))
	defer server.Close()

	cfg := NewConfig("ss_live_abc123").WithBaseURL(server.URL)
	client, err := NewWithConfig(cfg, logger)
	require.NoError(t, err)

	_, err = client.GetUsage(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer ss_live_abc123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "ShopSavvy-Go-SDK/"+Version, gotUserAgent)
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		check func(*Error) bool
	}{
		{"authentication", apiError(401, ""), (*Error).IsAuthentication},
		{"not found", apiError(404, ""), (*Error).IsNotFound},
		{"validation", apiError(422, ""), (*Error).IsValidation},
		{"rate limit", apiError(429, ""), (*Error).IsRateLimit},
		{"network", networkError(errors.New("refused")), (*Error).IsNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
		})
	}

	generic := apiError(500, "boom")
	assert.False(t, generic.IsAuthentication())
	assert.False(t, generic.IsRateLimit())
	assert.Equal(t, KindAPI, generic.Kind)
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := networkError(cause)
	assert.ErrorIs(t, err, cause)
}
