package shopsavvy

import "fmt"

// Meta carries the credit accounting returned with most responses.
type Meta struct {
	CreditsUsed        int  `json:"credits_used"`
	CreditsRemaining   int  `json:"credits_remaining"`
	RateLimitRemaining *int `json:"rate_limit_remaining,omitempty"`
}

// Response is the standard envelope wrapping API payloads.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

// CreditsUsed returns the credits consumed by the call, or 0 when the
// response carried no metadata.
func (r *Response[T]) CreditsUsed() int {
	if r.Meta == nil {
		return 0
	}
	return r.Meta.CreditsUsed
}

// CreditsRemaining returns the credits left on the account, or 0 when the
// response carried no metadata.
func (r *Response[T]) CreditsRemaining() int {
	if r.Meta == nil {
		return 0
	}
	return r.Meta.CreditsRemaining
}

// Pagination describes the slice of search results returned.
type Pagination struct {
	Total    int `json:"total"`
	Limit    int `json:"limit"`
	Offset   int `json:"offset"`
	Returned int `json:"returned"`
}

// SearchResult is the envelope returned by product search. Unlike the
// standard envelope it carries pagination info; the upstream API ships two
// distinct response shapes and this one is kept as-is.
type SearchResult struct {
	Success    bool        `json:"success"`
	Data       []Product   `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Meta       *Meta       `json:"meta,omitempty"`
}

// CreditsUsed returns the credits consumed by the search, or 0 when the
// response carried no metadata.
func (r *SearchResult) CreditsUsed() int {
	if r.Meta == nil {
		return 0
	}
	return r.Meta.CreditsUsed
}

// Product is a catalog entry. ShopSavvy is the internal product id and
// Amazon the marketplace ASIN; all fields other than Title and ShopSavvy may
// be empty.
type Product struct {
	Title     string   `json:"title"`
	ShopSavvy string   `json:"shopsavvy"`
	Brand     string   `json:"brand,omitempty"`
	Category  string   `json:"category,omitempty"`
	Images    []string `json:"images,omitempty"`
	Barcode   string   `json:"barcode,omitempty"`
	Amazon    string   `json:"amazon,omitempty"`
	Model     string   `json:"model,omitempty"`
	MPN       string   `json:"mpn,omitempty"`
	Color     string   `json:"color,omitempty"`
}

// PricePoint is a single entry in a price history.
type PricePoint struct {
	Date         string  `json:"date"`
	Price        float64 `json:"price"`
	Availability string  `json:"availability"`
}

// Offer is a retailer listing for a product. Price is nil when the retailer
// did not report one.
type Offer struct {
	ID           string       `json:"id"`
	Retailer     string       `json:"retailer,omitempty"`
	Price        *float64     `json:"price,omitempty"`
	Currency     string       `json:"currency,omitempty"`
	Availability string       `json:"availability,omitempty"`
	Condition    string       `json:"condition,omitempty"`
	URL          string       `json:"URL,omitempty"`
	Seller       string       `json:"seller,omitempty"`
	Timestamp    string       `json:"timestamp,omitempty"`
	History      []PricePoint `json:"history,omitempty"`
}

// ProductWithOffers pairs a product with its current retailer offers.
type ProductWithOffers struct {
	Product
	Offers []Offer `json:"offers"`
}

// OfferWithHistory is an offer annotated with its price history, as returned
// by the history endpoint.
type OfferWithHistory struct {
	ID           string       `json:"id"`
	Retailer     string       `json:"retailer,omitempty"`
	Price        *float64     `json:"price,omitempty"`
	Currency     string       `json:"currency,omitempty"`
	Availability string       `json:"availability,omitempty"`
	Condition    string       `json:"condition,omitempty"`
	URL          string       `json:"URL,omitempty"`
	Seller       string       `json:"seller,omitempty"`
	Timestamp    string       `json:"timestamp,omitempty"`
	PriceHistory []PricePoint `json:"price_history"`
}

// ScheduledProduct describes one entry on the monitoring schedule.
type ScheduledProduct struct {
	ProductID     string `json:"product_id"`
	Identifier    string `json:"identifier"`
	Frequency     string `json:"frequency"`
	Retailer      string `json:"retailer,omitempty"`
	CreatedAt     string `json:"created_at"`
	LastRefreshed string `json:"last_refreshed,omitempty"`
}

// ScheduleResult is the outcome of scheduling a single product.
type ScheduleResult struct {
	Scheduled bool   `json:"scheduled"`
	ProductID string `json:"product_id"`
}

// ScheduleBatchResult pairs one input identifier with its scheduling outcome.
type ScheduleBatchResult struct {
	Identifier string `json:"identifier"`
	Scheduled  bool   `json:"scheduled"`
	ProductID  string `json:"product_id"`
}

// RemoveResult is the outcome of removing a single product from the schedule.
type RemoveResult struct {
	Removed bool `json:"removed"`
}

// RemoveBatchResult pairs one input identifier with its removal outcome.
type RemoveBatchResult struct {
	Identifier string `json:"identifier"`
	Removed    bool   `json:"removed"`
}

// UsagePeriod is the current billing period.
type UsagePeriod struct {
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	CreditsUsed      int    `json:"credits_used"`
	CreditsLimit     int    `json:"credits_limit"`
	CreditsRemaining int    `json:"credits_remaining"`
	RequestsMade     int    `json:"requests_made"`
}

// Usage reports account credit consumption for the current billing period.
type Usage struct {
	CurrentPeriod   UsagePeriod `json:"current_period"`
	UsagePercentage float64     `json:"usage_percentage"`
}

// Format selects the response encoding for lookup endpoints. The zero value
// omits the parameter and the API defaults to JSON.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Frequency is the monitoring refresh cadence for a scheduled product.
type Frequency string

const (
	FrequencyHourly Frequency = "hourly"
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// ParseFrequency converts a string into a Frequency, rejecting anything the
// API would not accept.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyHourly, FrequencyDaily, FrequencyWeekly:
		return Frequency(s), nil
	}
	return "", fmt.Errorf("invalid frequency %q (must be hourly, daily or weekly)", s)
}
