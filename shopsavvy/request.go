package shopsavvy

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// endpoint describes one API operation. Endpoint methods are thin wrappers
// that feed a descriptor plus parameters into do.
type endpoint struct {
	method string
	path   string
}

var (
	epSearch       = endpoint{http.MethodGet, "/products/search"}
	epDetails      = endpoint{http.MethodGet, "/products"}
	epOffers       = endpoint{http.MethodGet, "/products/offers"}
	epPriceHistory = endpoint{http.MethodGet, "/products/offers/history"}
	epSchedule     = endpoint{http.MethodPost, "/products/schedule"}
	epScheduled    = endpoint{http.MethodGet, "/products/scheduled"}
	epUnschedule   = endpoint{http.MethodDelete, "/products/schedule"}
	epUsage        = endpoint{http.MethodGet, "/usage"}
)

// param is a single query parameter. A slice of params keeps the order the
// caller supplied, unlike url.Values.
type param struct {
	key   string
	value string
}

type params []param

func (p params) add(key, value string) params {
	return append(p, param{key: key, value: value})
}

// addOpt appends a parameter only when the value is non-empty; optional
// parameters are omitted entirely, never sent blank.
func (p params) addOpt(key, value string) params {
	if value == "" {
		return p
	}
	return append(p, param{key: key, value: value})
}

func (p params) encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}
	return b.String()
}

// do performs a single request/response exchange and decodes the body into
// out. Every API call flows through here: header injection, parameter
// encoding, status classification and envelope decoding all happen in one
// place. No retries, no redirect handling beyond the transport's defaults.
func (c *Client) do(ctx context.Context, ep endpoint, qp params, body, out any) error {
	requestURL := c.config.BaseURL + ep.path
	if len(qp) > 0 {
		requestURL += "?" + qp.encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return jsonError(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, ep.method, requestURL, reader)
	if err != nil {
		return networkError(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().
		Str("method", ep.method).
		Str("url", requestURL).
		Msg("Making ShopSavvy API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug().
			Int("status", resp.StatusCode).
			Str("url", requestURL).
			Msg("ShopSavvy API request failed")
		return apiError(resp.StatusCode, errorMessage(payload))
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return jsonError(err)
	}
	return nil
}

// errorMessage extracts the upstream error field from a failure body, falling
// back to the raw text when the body is not JSON or the field is absent.
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return string(body)
}

// call dispatches through do and decodes the standard response envelope.
// Search bypasses it and decodes its pagination envelope through do directly.
func call[T any](ctx context.Context, c *Client, ep endpoint, qp params, body any) (*Response[T], error) {
	var r Response[T]
	if err := c.do(ctx, ep, qp, body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
