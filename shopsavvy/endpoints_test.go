package shopsavvy

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturedRequest records what the mock server received.
type capturedRequest struct {
	method string
	path   string
	query  map[string][]string
	body   []byte
}

// newCaptureServer returns a server that records each request and replies
// with the given JSON body.
func newCaptureServer(t *testing.T, response string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.query = r.URL.Query()
		captured.body, _ = io.ReadAll(r.Body)
		w.Write([]byte(response))
	}))
	return server, captured
}

func TestSearchProducts(t *testing.T) {
	const response = `{
		"success": true,
		"data": [{"title": "iPhone 15 Pro", "shopsavvy": "prod_1", "brand": "Apple"}],
		"pagination": {"total": 120, "limit": 10, "offset": 0, "returned": 1},
		"meta": {"credits_used": 1, "credits_remaining": 999}
	}`

	t.Run("with limit", func(t *testing.T) {
		server, captured := newCaptureServer(t, response)
		defer server.Close()
		client := newTestClient(t, server)

		result, err := client.SearchProducts(context.Background(), "iphone 15 pro", 10, 0)
		require.NoError(t, err)

		assert.Equal(t, http.MethodGet, captured.method)
		assert.Equal(t, "/products/search", captured.path)
		assert.Equal(t, []string{"iphone 15 pro"}, captured.query["q"])
		assert.Equal(t, []string{"10"}, captured.query["limit"])
		assert.NotContains(t, captured.query, "offset")

		require.Len(t, result.Data, 1)
		assert.Equal(t, "iPhone 15 Pro", result.Data[0].Title)
		require.NotNil(t, result.Pagination)
		assert.Equal(t, 120, result.Pagination.Total)
		assert.Equal(t, 1, result.CreditsUsed())
	})

	t.Run("limit and offset omitted when zero", func(t *testing.T) {
		server, captured := newCaptureServer(t, response)
		defer server.Close()
		client := newTestClient(t, server)

		_, err := client.SearchProducts(context.Background(), "iphone", 0, 0)
		require.NoError(t, err)
		assert.NotContains(t, captured.query, "limit")
		assert.NotContains(t, captured.query, "offset")
	})
}

func TestGetProductDetails(t *testing.T) {
	const response = `{"success": true, "data": [{"title": "Widget", "shopsavvy": "prod_2"}]}`

	t.Run("no format param when unset", func(t *testing.T) {
		server, captured := newCaptureServer(t, response)
		defer server.Close()
		client := newTestClient(t, server)

		result, err := client.GetProductDetails(context.Background(), "012345678901", "")
		require.NoError(t, err)

		assert.Equal(t, "/products", captured.path)
		assert.Equal(t, []string{"012345678901"}, captured.query["ids"])
		assert.NotContains(t, captured.query, "format")
		require.Len(t, result.Data, 1)
		assert.Equal(t, "Widget", result.Data[0].Title)
	})

	t.Run("format forwarded when set", func(t *testing.T) {
		server, captured := newCaptureServer(t, response)
		defer server.Close()
		client := newTestClient(t, server)

		_, err := client.GetProductDetails(context.Background(), "012345678901", FormatCSV)
		require.NoError(t, err)
		assert.Equal(t, []string{"csv"}, captured.query["format"])
	})

	t.Run("batch identifiers comma joined", func(t *testing.T) {
		server, captured := newCaptureServer(t, response)
		defer server.Close()
		client := newTestClient(t, server)

		_, err := client.GetProductDetailsBatch(context.Background(), []string{"A", "B", "C"}, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"A,B,C"}, captured.query["ids"])
	})
}

func TestGetCurrentOffers(t *testing.T) {
	const response = `{
		"success": true,
		"data": [{
			"title": "Widget", "shopsavvy": "prod_2",
			"offers": [{"id": "off_1", "retailer": "amazon", "price": 19.99, "currency": "USD"}]
		}]
	}`

	server, captured := newCaptureServer(t, response)
	defer server.Close()
	client := newTestClient(t, server)

	result, err := client.GetCurrentOffers(context.Background(), "012345678901", "amazon", "")
	require.NoError(t, err)

	assert.Equal(t, "/products/offers", captured.path)
	assert.Equal(t, []string{"amazon"}, captured.query["retailer"])
	require.Len(t, result.Data, 1)
	require.Len(t, result.Data[0].Offers, 1)
	offer := result.Data[0].Offers[0]
	assert.Equal(t, "off_1", offer.ID)
	require.NotNil(t, offer.Price)
	assert.Equal(t, 19.99, *offer.Price)
}

func TestGetCurrentOffersRetailerOmitted(t *testing.T) {
	server, captured := newCaptureServer(t, `{"success": true, "data": []}`)
	defer server.Close()
	client := newTestClient(t, server)

	_, err := client.GetCurrentOffers(context.Background(), "012345678901", "", "")
	require.NoError(t, err)
	assert.NotContains(t, captured.query, "retailer")
}

func TestGetPriceHistory(t *testing.T) {
	const response = `{
		"success": true,
		"data": [{
			"id": "off_1", "retailer": "amazon",
			"price_history": [
				{"date": "2024-01-01", "price": 24.99, "availability": "in_stock"},
				{"date": "2024-01-02", "price": 19.99, "availability": "in_stock"}
			]
		}]
	}`

	server, captured := newCaptureServer(t, response)
	defer server.Close()
	client := newTestClient(t, server)

	result, err := client.GetPriceHistory(context.Background(), "012345678901", "2024-01-01", "2024-01-31", "", "")
	require.NoError(t, err)

	assert.Equal(t, "/products/offers/history", captured.path)
	assert.Equal(t, []string{"2024-01-01"}, captured.query["start_date"])
	assert.Equal(t, []string{"2024-01-31"}, captured.query["end_date"])
	assert.NotContains(t, captured.query, "retailer")

	require.Len(t, result.Data, 1)
	require.Len(t, result.Data[0].PriceHistory, 2)
	assert.Equal(t, 19.99, result.Data[0].PriceHistory[1].Price)
}

func TestScheduleProductMonitoring(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		server, captured := newCaptureServer(t, `{"success": true, "data": {"scheduled": true, "product_id": "prod_2"}}`)
		defer server.Close()
		client := newTestClient(t, server)

		result, err := client.ScheduleProductMonitoring(context.Background(), "012345678901", FrequencyDaily, "")
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, captured.method)
		assert.Equal(t, "/products/schedule", captured.path)

		var body map[string]string
		require.NoError(t, json.Unmarshal(captured.body, &body))
		assert.Equal(t, "012345678901", body["identifier"])
		assert.Equal(t, "daily", body["frequency"])
		assert.NotContains(t, body, "retailer")

		assert.True(t, result.Data.Scheduled)
		assert.Equal(t, "prod_2", result.Data.ProductID)
	})

	t.Run("batch with retailer", func(t *testing.T) {
		server, captured := newCaptureServer(t, `{"success": true, "data": [{"identifier": "A", "scheduled": true, "product_id": "p1"}]}`)
		defer server.Close()
		client := newTestClient(t, server)

		_, err := client.ScheduleProductMonitoringBatch(context.Background(), []string{"A", "B"}, FrequencyHourly, "amazon")
		require.NoError(t, err)

		var body map[string]string
		require.NoError(t, json.Unmarshal(captured.body, &body))
		assert.Equal(t, "A,B", body["identifiers"])
		assert.Equal(t, "hourly", body["frequency"])
		assert.Equal(t, "amazon", body["retailer"])
		assert.NotContains(t, body, "identifier")
	})
}

func TestGetScheduledProducts(t *testing.T) {
	const response = `{
		"success": true,
		"data": [{"product_id": "prod_2", "identifier": "012345678901", "frequency": "daily", "created_at": "2024-01-01T00:00:00Z"}]
	}`

	server, captured := newCaptureServer(t, response)
	defer server.Close()
	client := newTestClient(t, server)

	result, err := client.GetScheduledProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, captured.method)
	assert.Equal(t, "/products/scheduled", captured.path)
	assert.Empty(t, captured.query)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "daily", result.Data[0].Frequency)
}

func TestRemoveProductFromSchedule(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		server, captured := newCaptureServer(t, `{"success": true, "data": {"removed": true}}`)
		defer server.Close()
		client := newTestClient(t, server)

		result, err := client.RemoveProductFromSchedule(context.Background(), "012345678901")
		require.NoError(t, err)

		assert.Equal(t, http.MethodDelete, captured.method)
		assert.Equal(t, "/products/schedule", captured.path)

		var body map[string]string
		require.NoError(t, json.Unmarshal(captured.body, &body))
		assert.Equal(t, "012345678901", body["identifier"])
		assert.True(t, result.Data.Removed)
	})

	t.Run("batch", func(t *testing.T) {
		server, captured := newCaptureServer(t, `{"success": true, "data": [{"identifier": "A", "removed": true}, {"identifier": "B", "removed": false}]}`)
		defer server.Close()
		client := newTestClient(t, server)

		result, err := client.RemoveProductsFromSchedule(context.Background(), []string{"A", "B"})
		require.NoError(t, err)

		var body map[string]string
		require.NoError(t, json.Unmarshal(captured.body, &body))
		assert.Equal(t, "A,B", body["identifiers"])
		require.Len(t, result.Data, 2)
		assert.False(t, result.Data[1].Removed)
	})
}

func TestGetUsage(t *testing.T) {
	const response = `{
		"success": true,
		"data": {
			"current_period": {
				"start_date": "2024-01-01", "end_date": "2024-01-31",
				"credits_used": 250, "credits_limit": 1000, "credits_remaining": 750,
				"requests_made": 300
			},
			"usage_percentage": 25.0
		},
		"meta": {"credits_used": 0, "credits_remaining": 750}
	}`

	server, captured := newCaptureServer(t, response)
	defer server.Close()
	client := newTestClient(t, server)

	result, err := client.GetUsage(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/usage", captured.path)
	assert.Equal(t, 250, result.Data.CurrentPeriod.CreditsUsed)
	assert.Equal(t, 25.0, result.Data.UsagePercentage)
	assert.Equal(t, 750, result.CreditsRemaining())
}

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		input   string
		want    Frequency
		wantErr bool
	}{
		{"hourly", FrequencyHourly, false},
		{"daily", FrequencyDaily, false},
		{"weekly", FrequencyWeekly, false},
		{"monthly", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFrequency(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
