package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopsavvy/savvyctl/shopsavvy"
)

// jsonOutput reports whether results should be printed as JSON.
func jsonOutput() bool {
	return cfg.Output.Format == "json"
}

// printJSON writes the value to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printCredits prints the credit accounting footer when the response carried
// metadata.
func printCredits(meta *shopsavvy.Meta) {
	if meta == nil {
		return
	}
	fmt.Printf("\nCredits used: %d | remaining: %d\n", meta.CreditsUsed, meta.CreditsRemaining)
}

// formatPrice renders an optional price for table output.
func formatPrice(price *float64, currency string) string {
	if price == nil {
		return "-"
	}
	if currency == "" {
		currency = "USD"
	}
	return fmt.Sprintf("%.2f %s", *price, currency)
}

// orDash substitutes a dash for empty table cells.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncate shortens a string for fixed-width table columns.
func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}
