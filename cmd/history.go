package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shopsavvy/savvyctl/shopsavvy"
)

var (
	historyStart    string
	historyEnd      string
	historyRetailer string
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history <identifier>...",
	Short: "Show price history for products",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVar(&historyStart, "start", "", "start date (YYYY-MM-DD)")
	historyCmd.Flags().StringVar(&historyEnd, "end", "", "end date (YYYY-MM-DD)")
	historyCmd.Flags().StringVar(&historyRetailer, "retailer", "", "only include offers from this retailer")
	historyCmd.MarkFlagRequired("start")
	historyCmd.MarkFlagRequired("end")
}

func runHistory(cmd *cobra.Command, args []string) error {
	for _, date := range []string{historyStart, historyEnd} {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
		}
	}

	ctx := context.Background()
	var result *shopsavvy.Response[[]shopsavvy.OfferWithHistory]
	var err error
	if len(args) == 1 {
		result, err = client.GetPriceHistory(ctx, args[0], historyStart, historyEnd, historyRetailer, "")
	} else {
		result, err = client.GetPriceHistoryBatch(ctx, args, historyStart, historyEnd, historyRetailer, "")
	}
	if err != nil {
		return err
	}

	if jsonOutput() {
		return printJSON(result)
	}

	if len(result.Data) == 0 {
		fmt.Println("No price history found.")
		return nil
	}

	for i, offer := range result.Data {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s (current: %s)\n", orDash(offer.Retailer), formatPrice(offer.Price, offer.Currency))
		fmt.Println(strings.Repeat("━", 48))
		fmt.Printf("%-14s %-12s %s\n", "DATE", "PRICE", "AVAILABILITY")
		fmt.Println(strings.Repeat("━", 48))
		for _, point := range offer.PriceHistory {
			fmt.Printf("%-14s %-12.2f %s\n", point.Date, point.Price, point.Availability)
		}
		fmt.Println(strings.Repeat("━", 48))
	}

	printCredits(result.Meta)
	return nil
}
