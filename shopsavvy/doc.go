// Package shopsavvy provides a client for the ShopSavvy Data API.
//
// The Data API exposes product search, product detail lookup, current offers,
// price history, monitoring schedules and account usage under a single REST
// surface. This package implements a clean, idiomatic Go client for it.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the API client; every call flows through one request pipeline
//   - Types: domain models for products, offers, schedules and usage
//   - Errors: structured error types with status classification
//
// # Usage
//
// Create a client with your ShopSavvy API key:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := shopsavvy.New("ss_live_your_api_key", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	result, err := client.SearchProducts(ctx, "iphone 15 pro", 10, 0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, product := range result.Data {
//		fmt.Println(product.Title)
//	}
//
// Custom configuration goes through Config:
//
//	cfg := shopsavvy.NewConfig("ss_live_your_api_key").
//		WithTimeout(60 * time.Second)
//	client, err := shopsavvy.NewWithConfig(cfg, logger)
//
// # Error Handling
//
// Every failure is returned as a *Error carrying a Kind and, for HTTP
// failures, the originating status code:
//
//	var apiErr *shopsavvy.Error
//	if errors.As(err, &apiErr) && apiErr.IsRateLimit() {
//		// back off
//	}
//
// The client performs no retries; callers decide how to react to each error.
package shopsavvy
