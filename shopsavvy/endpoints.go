package shopsavvy

import (
	"context"
	"strconv"
	"strings"
)

// SearchProducts searches the catalog by keyword. A limit or offset of zero
// is omitted from the request.
func (c *Client) SearchProducts(ctx context.Context, query string, limit, offset int) (*SearchResult, error) {
	qp := params{}.add("q", query)
	if limit > 0 {
		qp = qp.add("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		qp = qp.add("offset", strconv.Itoa(offset))
	}

	var r SearchResult
	if err := c.do(ctx, epSearch, qp, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// GetProductDetails looks up a product by identifier (barcode, ASIN, URL,
// model number or ShopSavvy product id).
func (c *Client) GetProductDetails(ctx context.Context, identifier string, format Format) (*Response[[]Product], error) {
	return c.GetProductDetailsBatch(ctx, []string{identifier}, format)
}

// GetProductDetailsBatch looks up several products at once. Identifiers are
// joined into a single comma-separated parameter.
func (c *Client) GetProductDetailsBatch(ctx context.Context, identifiers []string, format Format) (*Response[[]Product], error) {
	qp := params{}.
		add("ids", strings.Join(identifiers, ",")).
		addOpt("format", string(format))
	return call[[]Product](ctx, c, epDetails, qp, nil)
}

// GetCurrentOffers returns the current retailer offers for a product,
// optionally restricted to one retailer.
func (c *Client) GetCurrentOffers(ctx context.Context, identifier, retailer string, format Format) (*Response[[]ProductWithOffers], error) {
	return c.GetCurrentOffersBatch(ctx, []string{identifier}, retailer, format)
}

// GetCurrentOffersBatch returns current offers for several products at once.
func (c *Client) GetCurrentOffersBatch(ctx context.Context, identifiers []string, retailer string, format Format) (*Response[[]ProductWithOffers], error) {
	qp := params{}.
		add("ids", strings.Join(identifiers, ",")).
		addOpt("retailer", retailer).
		addOpt("format", string(format))
	return call[[]ProductWithOffers](ctx, c, epOffers, qp, nil)
}

// GetPriceHistory returns offers with price history for a product between two
// dates (YYYY-MM-DD).
func (c *Client) GetPriceHistory(ctx context.Context, identifier, startDate, endDate, retailer string, format Format) (*Response[[]OfferWithHistory], error) {
	return c.GetPriceHistoryBatch(ctx, []string{identifier}, startDate, endDate, retailer, format)
}

// GetPriceHistoryBatch returns price history for several products at once.
func (c *Client) GetPriceHistoryBatch(ctx context.Context, identifiers []string, startDate, endDate, retailer string, format Format) (*Response[[]OfferWithHistory], error) {
	qp := params{}.
		add("ids", strings.Join(identifiers, ",")).
		add("start_date", startDate).
		add("end_date", endDate).
		addOpt("retailer", retailer).
		addOpt("format", string(format))
	return call[[]OfferWithHistory](ctx, c, epPriceHistory, qp, nil)
}

// scheduleRequest is the JSON body for schedule and unschedule calls. The
// single and batch variants use mutually exclusive identifier fields.
type scheduleRequest struct {
	Identifier  string `json:"identifier,omitempty"`
	Identifiers string `json:"identifiers,omitempty"`
	Frequency   string `json:"frequency,omitempty"`
	Retailer    string `json:"retailer,omitempty"`
}

// ScheduleProductMonitoring adds a product to the monitoring schedule.
func (c *Client) ScheduleProductMonitoring(ctx context.Context, identifier string, frequency Frequency, retailer string) (*Response[ScheduleResult], error) {
	body := scheduleRequest{
		Identifier: identifier,
		Frequency:  string(frequency),
		Retailer:   retailer,
	}
	return call[ScheduleResult](ctx, c, epSchedule, nil, body)
}

// ScheduleProductMonitoringBatch schedules several products at once; the
// response pairs each identifier with its own outcome.
func (c *Client) ScheduleProductMonitoringBatch(ctx context.Context, identifiers []string, frequency Frequency, retailer string) (*Response[[]ScheduleBatchResult], error) {
	body := scheduleRequest{
		Identifiers: strings.Join(identifiers, ","),
		Frequency:   string(frequency),
		Retailer:    retailer,
	}
	return call[[]ScheduleBatchResult](ctx, c, epSchedule, nil, body)
}

// GetScheduledProducts returns every product on the monitoring schedule.
func (c *Client) GetScheduledProducts(ctx context.Context) (*Response[[]ScheduledProduct], error) {
	return call[[]ScheduledProduct](ctx, c, epScheduled, nil, nil)
}

// RemoveProductFromSchedule removes a product from the monitoring schedule.
func (c *Client) RemoveProductFromSchedule(ctx context.Context, identifier string) (*Response[RemoveResult], error) {
	body := scheduleRequest{Identifier: identifier}
	return call[RemoveResult](ctx, c, epUnschedule, nil, body)
}

// RemoveProductsFromSchedule removes several products from the schedule at
// once.
func (c *Client) RemoveProductsFromSchedule(ctx context.Context, identifiers []string) (*Response[[]RemoveBatchResult], error) {
	body := scheduleRequest{Identifiers: strings.Join(identifiers, ",")}
	return call[[]RemoveBatchResult](ctx, c, epUnschedule, nil, body)
}

// GetUsage returns credit usage for the current billing period.
func (c *Client) GetUsage(ctx context.Context) (*Response[Usage], error) {
	return call[Usage](ctx, c, epUsage, nil, nil)
}
